package main

import (
	"bytes"
	"testing"

	"github.com/poiesic/therapymatch/core"
	"github.com/poiesic/therapymatch/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoProfiles(t *testing.T) {
	profiles, err := importer.ParseDocument(bytes.NewReader(demoProfiles))
	require.NoError(t, err)
	require.NotEmpty(t, profiles)

	slugs := make(map[string]bool)
	covered := make(map[core.Specialty]bool)
	for _, p := range profiles {
		assert.NoError(t, core.ValidateProfile(p), p.Slug)
		assert.False(t, slugs[p.Slug], "duplicate slug %s", p.Slug)
		slugs[p.Slug] = true
		for _, s := range p.Specialties {
			covered[s] = true
		}
	}
	for _, s := range core.Specialties {
		assert.True(t, covered[s], "no demo profile for %s", s)
	}
}
