package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"pet-adoption-agency/internal/domain/pets"
)

var ErrInvalidPet = errors.New("invalid pet")

type petRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]pets.Pet
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[int64]pets.Pet),
	}
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

// Create replica las restricciones NOT NULL / CHECK de la tabla en postgres.
func (r *petRepo) Create(ctx context.Context, p *pets.Pet) error {
	if p == nil || strings.TrimSpace(p.Name) == "" || !p.Species.Valid() ||
		p.Age < pets.MinAge || p.Age > pets.MaxAge || notesTooLong(p.Notes) {
		return ErrInvalidPet
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = *p
	return nil
}

func (r *petRepo) Update(ctx context.Context, id int64, f pets.UpdateFields) (pets.Pet, error) {
	if notesTooLong(f.Notes) {
		return pets.Pet{}, ErrInvalidPet
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	p.PhotoURL = f.PhotoURL
	p.Notes = f.Notes
	p.Available = f.Available
	r.byID[id] = p
	return p, nil
}

func notesTooLong(notes string) bool {
	return utf8.RuneCountInString(notes) > pets.MaxNotesChars
}
