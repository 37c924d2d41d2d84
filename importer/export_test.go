package importer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poiesic/therapymatch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, doc string) []*core.Profile {
	t.Helper()
	profiles, err := ParseDocument(strings.NewReader(doc))
	require.NoError(t, err)
	return profiles
}

func TestExportFile_RoundTrip(t *testing.T) {
	ctx := context.Background()
	source := newTestRepo(t)
	_, err := NewImporter(source, testConfig(), nil).Import(ctx, mustParse(t, sampleDocument))
	require.NoError(t, err)

	for _, name := range []string{"profiles.yaml", "profiles.yaml.gz", "profiles.yaml.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			n, err := ExportFile(ctx, source, path)
			require.NoError(t, err)
			assert.Equal(t, 2, n)

			target := newTestRepo(t)
			summary, err := NewImporter(target, testConfig(), nil).ImportFile(ctx, path)
			require.NoError(t, err)
			assert.Equal(t, 2, summary.Imported)

			want, err := source.ListProfiles(ctx)
			require.NoError(t, err)
			got, err := target.ListProfiles(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestExportFile_Compresses(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	_, err := NewImporter(repo, testConfig(), nil).Import(ctx, mustParse(t, sampleDocument))
	require.NoError(t, err)

	dir := t.TempDir()
	gz := filepath.Join(dir, "p.yaml.gz")
	_, err = ExportFile(ctx, repo, gz)
	require.NoError(t, err)

	data, err := os.ReadFile(gz)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0x1f, 0x8b}), "gzip magic")

	zst := filepath.Join(dir, "p.yaml.zst")
	_, err = ExportFile(ctx, repo, zst)
	require.NoError(t, err)
	data, err = os.ReadFile(zst)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0x28, 0xb5, 0x2f, 0xfd}), "zstd magic")
}

func TestImportFile_CorruptArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml.gz")
	require.NoError(t, os.WriteFile(path, []byte("not gzip"), 0o600))

	_, err := NewImporter(newTestRepo(t), testConfig(), nil).ImportFile(context.Background(), path)
	assert.Error(t, err)
}

func TestWriteDocument_Empty(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteDocument(context.Background(), newTestRepo(t), &buf)
	require.NoError(t, err)
	assert.Zero(t, n)

	profiles, err := ParseDocument(&buf)
	require.NoError(t, err)
	assert.Empty(t, profiles)
}
