package pets_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "pet-adoption-agency/internal/adapters/storage/memory"
	"pet-adoption-agency/internal/domain/pets"
	"pet-adoption-agency/internal/forms"
)

func newService(t *testing.T) *pets.Service {
	t.Helper()
	return pets.NewService(mem.NewPetRepo())
}

func fido() pets.CreateInput {
	return pets.CreateInput{
		Name:     "Fido",
		Species:  pets.SpeciesDog,
		PhotoURL: "http://x.com/a.jpg",
		Age:      3,
		Notes:    "friendly",
	}
}

func requireFieldError(t *testing.T, err error, field string) *forms.ValidationError {
	t.Helper()
	var verr *forms.ValidationError
	require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
	assert.True(t, verr.Has(field), "expected error on %q, got %v", field, verr.Fields)
	return verr
}

func TestService_Create_SetsAvailableAndKeepsFields(t *testing.T) {
	svc := newService(t)

	p, err := svc.Create(context.Background(), fido())

	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.True(t, p.Available)
	assert.Equal(t, "Fido", p.Name)
	assert.Equal(t, pets.SpeciesDog, p.Species)
	assert.Equal(t, "http://x.com/a.jpg", p.PhotoURL)
	assert.Equal(t, 3, p.Age)
	assert.Equal(t, "friendly", p.Notes)
}

func TestService_CreateThenGet_RoundTrip(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, fido())
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestService_CreateThenGet_KeepsPaddedText(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	in := fido()
	in.Name = " Fido "
	in.Notes = "  friendly  "

	created, err := svc.Create(ctx, in)
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, " Fido ", got.Name)
	assert.Equal(t, "  friendly  ", got.Notes)
	assert.Equal(t, in.PhotoURL, got.PhotoURL)

	updated, err := svc.Update(ctx, created.ID, pets.UpdateInput{Notes: " adopted ", Available: true})
	require.NoError(t, err)
	assert.Equal(t, " adopted ", updated.Notes)
}

func TestService_Create_NotesLimitCountsSpaces(t *testing.T) {
	svc := newService(t)

	in := fido()
	in.Notes = " " + strings.Repeat("x", 50)
	_, err := svc.Create(context.Background(), in)

	requireFieldError(t, err, "notes")
}

func TestService_Create_RejectsInvalidInput_StoreUnchanged(t *testing.T) {
	tests := []struct {
		name  string
		field string
		mod   func(in *pets.CreateInput)
	}{
		{"species not in set", "species", func(in *pets.CreateInput) { in.Species = "lizard" }},
		{"species empty", "species", func(in *pets.CreateInput) { in.Species = "" }},
		{"age below range", "age", func(in *pets.CreateInput) { in.Age = -1 }},
		{"age above range", "age", func(in *pets.CreateInput) { in.Age = 31 }},
		{"name blank", "name", func(in *pets.CreateInput) { in.Name = "   " }},
		{"bad photo url", "photo_url", func(in *pets.CreateInput) { in.PhotoURL = "not-a-url" }},
		{"notes too long", "notes", func(in *pets.CreateInput) { in.Notes = strings.Repeat("x", 51) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t)
			ctx := context.Background()

			in := fido()
			tt.mod(&in)
			_, err := svc.Create(ctx, in)
			requireFieldError(t, err, tt.field)

			all, err := svc.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestService_Create_AgeBoundaries(t *testing.T) {
	svc := newService(t)

	for _, age := range []int{0, 30} {
		in := fido()
		in.Age = age
		p, err := svc.Create(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, age, p.Age)
	}
}

func TestService_Update_OnlyMutableFieldsChange(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, fido())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, pets.UpdateInput{
		PhotoURL:  "https://img.example.com/new.png",
		Notes:     "adopted",
		Available: false,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Species, updated.Species)
	assert.Equal(t, created.Age, updated.Age)
	assert.Equal(t, "https://img.example.com/new.png", updated.PhotoURL)
	assert.Equal(t, "adopted", updated.Notes)
	assert.False(t, updated.Available)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestService_Update_Validation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, fido())
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, pets.UpdateInput{PhotoURL: "ftp://x.com/a.jpg"})
	requireFieldError(t, err, "photo_url")

	_, err = svc.Update(ctx, created.ID, pets.UpdateInput{Notes: strings.Repeat("n", 51)})
	requireFieldError(t, err, "notes")

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestService_NotFound(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, 1)
	require.ErrorIs(t, err, pets.ErrNotFound)

	_, err = svc.Get(ctx, 0)
	require.ErrorIs(t, err, pets.ErrNotFound)

	_, err = svc.Update(ctx, 7, pets.UpdateInput{Available: true})
	require.ErrorIs(t, err, pets.ErrNotFound)
}

func TestService_Scenario_FidoAdopted(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, fido())
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].Available)
	assert.Equal(t, created, all[0])

	_, err = svc.Update(ctx, created.ID, pets.UpdateInput{
		PhotoURL:  created.PhotoURL,
		Notes:     "adopted",
		Available: false,
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.Available)
	assert.Equal(t, "adopted", got.Notes)
	assert.Equal(t, pets.SpeciesDog, got.Species)
}
