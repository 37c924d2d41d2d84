package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	repo := NewMetadataRepository(backend)
	ctx := context.Background()

	_, found, err := repo.GetMetadata(ctx, "taxonomy")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.SetMetadata(ctx, "taxonomy", "abc"))
	require.NoError(t, repo.SetMetadata(ctx, "taxonomy", "def"))

	value, found, err := repo.GetMetadata(ctx, "taxonomy")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "def", value)
}
