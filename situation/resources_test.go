package situation

import (
	"testing"

	"github.com/poiesic/therapymatch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrisisResources(t *testing.T) {
	de := CrisisResources(core.LanguageGerman)
	require.NotEmpty(t, de)
	assert.Equal(t, "Telefonseelsorge", de[0].Name)
	assert.Equal(t, "0800 111 0 111", de[0].Phone)

	en := CrisisResources(core.LanguageEnglish)
	require.NotEmpty(t, en)
	assert.Equal(t, "Telefonseelsorge (Germany)", en[0].Name)
	assert.Equal(t, en, CrisisResources(""))

	for _, r := range append(de, en...) {
		switch r.Kind {
		case ResourcePhone:
			assert.NotEmpty(t, r.Phone, r.Name)
		case ResourceWeb:
			assert.NotEmpty(t, r.URL, r.Name)
		default:
			t.Errorf("%s: unknown kind %q", r.Name, r.Kind)
		}
	}

	de[0].Name = "changed"
	assert.Equal(t, "Telefonseelsorge", CrisisResources(core.LanguageGerman)[0].Name)
}
