package sqlite

import (
	"context"
	"math"
	"testing"

	"github.com/poiesic/therapymatch/core"
	"github.com/poiesic/therapymatch/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepository_AddAndGet(t *testing.T) {
	repo := newTestStore(t).Profiles()
	ctx := context.Background()

	added, err := repo.AddProfiles(ctx, therapist(" clara-wolf ", core.SpecialtyTrauma))
	require.NoError(t, err)
	p := added[0]
	assert.Equal(t, "clara-wolf", p.Slug)
	assert.Equal(t, core.IDFromContent("clara-wolf"), p.Id)

	got, err := repo.GetProfile(ctx, p.Id)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	bySlug, err := repo.GetProfileBySlug(ctx, "clara-wolf")
	require.NoError(t, err)
	assert.Equal(t, p, bySlug)

	_, err = repo.GetProfile(ctx, 12345)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repo.GetProfileBySlug(ctx, "nobody")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repo.GetProfileBySlug(ctx, "")
	assert.ErrorIs(t, err, storage.ErrInvalidQuery)
}

func TestProfileRepository_AddRejects(t *testing.T) {
	repo := newTestStore(t).Profiles()
	ctx := context.Background()

	_, err := repo.AddProfiles(ctx, &core.Profile{Slug: "x"})
	assert.ErrorIs(t, err, core.ErrInvalidProfile)

	_, err = repo.AddProfiles(ctx, therapist("dora"))
	require.NoError(t, err)
	_, err = repo.AddProfiles(ctx, therapist("dora"))
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	clash := therapist("erik")
	clash.Id = core.IDFromContent("dora")
	_, err = repo.AddProfiles(ctx, clash)
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	// A failing batch leaves nothing behind.
	_, err = repo.AddProfiles(ctx, therapist("finn"), therapist("finn"))
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)
	count, err := repo.CountProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestProfileRepository_Update(t *testing.T) {
	repo := newTestStore(t).Profiles()
	ctx := context.Background()

	added, err := repo.AddProfiles(ctx, therapist("greta", core.SpecialtyADHD), therapist("hanna"))
	require.NoError(t, err)
	id := added[0].Id

	renamed := therapist("greta-lang", core.SpecialtyBurnout)
	renamed.Id = id
	_, err = repo.UpdateProfiles(ctx, renamed)
	require.NoError(t, err)

	_, err = repo.GetProfileBySlug(ctx, "greta")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	ids, err := repo.GetProfileIDsBySpecialty(ctx, core.SpecialtyADHD)
	require.NoError(t, err)
	assert.Empty(t, ids)
	ids, err = repo.GetProfileIDsBySpecialty(ctx, core.SpecialtyBurnout)
	require.NoError(t, err)
	assert.Equal(t, []core.ID{id}, ids)

	steal := therapist("hanna")
	steal.Id = id
	_, err = repo.UpdateProfiles(ctx, steal)
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	ghost := therapist("ghost")
	ghost.Id = 4
	_, err = repo.UpdateProfiles(ctx, ghost)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestProfileRepository_Save(t *testing.T) {
	repo := newTestStore(t).Profiles()
	ctx := context.Background()

	_, err := repo.SaveProfiles(ctx, therapist("ida", core.SpecialtyDepression))
	require.NoError(t, err)

	again := therapist("ida", core.SpecialtyRelationships)
	again.Id = 9
	saved, err := repo.SaveProfiles(ctx, again)
	require.NoError(t, err)
	assert.Equal(t, core.IDFromContent("ida"), saved[0].Id)

	count, err := repo.CountProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := repo.GetProfileBySlug(ctx, "ida")
	require.NoError(t, err)
	assert.Equal(t, []core.Specialty{core.SpecialtyRelationships}, got.Specialties)
}

func TestProfileRepository_Delete(t *testing.T) {
	repo := newTestStore(t).Profiles()
	ctx := context.Background()

	added, err := repo.AddProfiles(ctx, therapist("jan", core.SpecialtyAddiction))
	require.NoError(t, err)
	id := added[0].Id

	require.NoError(t, repo.DeleteProfiles(ctx, id))
	_, err = repo.GetProfile(ctx, id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	ids, err := repo.GetProfileIDsBySpecialty(ctx, core.SpecialtyAddiction)
	require.NoError(t, err)
	assert.Empty(t, ids)

	assert.ErrorIs(t, repo.DeleteProfiles(ctx, id), storage.ErrNotFound)
}

func TestProfileRepository_DeleteOnSecondConnection(t *testing.T) {
	s := newTestStore(t)
	repo := s.Profiles()
	ctx := context.Background()

	added, err := repo.AddProfiles(ctx, therapist("mara", core.SpecialtyTrauma))
	require.NoError(t, err)

	// Keep one pooled connection busy so the delete runs on a fresh one.
	held, err := s.db.Conn(ctx)
	require.NoError(t, err)
	defer held.Close()

	require.NoError(t, repo.DeleteProfiles(ctx, added[0].Id))
	ids, err := repo.GetProfileIDsBySpecialty(ctx, core.SpecialtyTrauma)
	require.NoError(t, err)
	assert.Empty(t, ids)

	var fk int
	require.NoError(t, held.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestProfileRepository_Ordering(t *testing.T) {
	repo := newTestStore(t).Profiles()
	ctx := context.Background()

	ids := []core.ID{math.MaxUint64, 300, 2, 1 << 63}
	for i, id := range ids {
		p := therapist(string(rune('k'+i)), core.SpecialtyAnxiety)
		p.Id = id
		_, err := repo.AddProfiles(ctx, p)
		require.NoError(t, err)
	}
	want := []core.ID{2, 300, 1 << 63, math.MaxUint64}

	all, err := repo.ListProfiles(ctx)
	require.NoError(t, err)
	got := make([]core.ID, len(all))
	for i, p := range all {
		got[i] = p.Id
	}
	assert.Equal(t, want, got)

	bySpecialty, err := repo.GetProfileIDsBySpecialty(ctx, core.SpecialtyAnxiety)
	require.NoError(t, err)
	assert.Equal(t, want, bySpecialty)

	found, err := repo.GetProfiles(ctx, 300, 77, 2)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, core.ID(300), found[0].Id)
	assert.Equal(t, core.ID(2), found[1].Id)
}

func TestIDKey(t *testing.T) {
	for _, id := range []core.ID{0, 1, 1 << 40, math.MaxUint64} {
		got, err := idFromKey(idKey(id))
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
	_, err := idFromKey([]byte{1, 2})
	assert.ErrorIs(t, err, storage.ErrSerializationFailed)
}
