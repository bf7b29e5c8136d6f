package sqlite

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption-agency/internal/domain/pets"
)

func setupTestRepo(t *testing.T) *PetsRepo {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// :memory: es por conexión; una sola conexión mantiene la misma base.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return NewPetsRepo(db)
}

func TestPetsRepo_RoundTrip(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	p := pets.Pet{Name: "Fido", Species: pets.SpeciesDog, PhotoURL: "http://x.com/a.jpg", Age: 3, Notes: "friendly", Available: true}
	require.NoError(t, repo.Create(ctx, &p))
	assert.Equal(t, int64(1), p.ID)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestPetsRepo_ListOrderedAndOptionalFields(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	first := pets.Pet{Name: "Spike", Species: pets.SpeciesPorcupine, Age: 0, Available: true}
	second := pets.Pet{Name: "Tom", Species: pets.SpeciesCat, Age: 30, Notes: "shy", Available: true}
	require.NoError(t, repo.Create(ctx, &first))
	require.NoError(t, repo.Create(ctx, &second))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first, all[0])
	assert.Equal(t, second, all[1])
	assert.Empty(t, all[0].PhotoURL)
	assert.Empty(t, all[0].Notes)
}

func TestPetsRepo_CreateKeepsAvailableFalse(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	p := pets.Pet{Name: "Rex", Species: pets.SpeciesDog, Age: 2, Available: false}
	require.NoError(t, repo.Create(ctx, &p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, got.Available)
}

func TestPetsRepo_CheckConstraints(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	bad := pets.Pet{Name: "Liz", Species: "lizard", Age: 3}
	require.Error(t, repo.Create(ctx, &bad))

	old := pets.Pet{Name: "Old", Species: pets.SpeciesCat, Age: 31}
	require.Error(t, repo.Create(ctx, &old))

	blank := pets.Pet{Name: "   ", Species: pets.SpeciesCat, Age: 1}
	require.Error(t, repo.Create(ctx, &blank))

	chatty := pets.Pet{Name: "Chatty", Species: pets.SpeciesCat, Age: 1, Notes: strings.Repeat("x", pets.MaxNotesChars+1)}
	require.Error(t, repo.Create(ctx, &chatty))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPetsRepo_Update(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	p := pets.Pet{Name: "Fido", Species: pets.SpeciesDog, PhotoURL: "http://x.com/a.jpg", Age: 3, Notes: "friendly", Available: true}
	require.NoError(t, repo.Create(ctx, &p))

	updated, err := repo.Update(ctx, p.ID, pets.UpdateFields{Notes: "adopted", Available: false})
	require.NoError(t, err)

	assert.Equal(t, pets.Pet{ID: p.ID, Name: "Fido", Species: pets.SpeciesDog, Age: 3, Notes: "adopted", Available: false}, updated)

	_, err = repo.Update(ctx, p.ID, pets.UpdateFields{Notes: strings.Repeat("ñ", pets.MaxNotesChars+1)})
	require.Error(t, err)
}

func TestPetsRepo_NotFound(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 99)
	require.ErrorIs(t, err, pets.ErrNotFound)

	_, err = repo.Update(ctx, 99, pets.UpdateFields{Available: true})
	require.ErrorIs(t, err, pets.ErrNotFound)
}
