package pets

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Pet, error) {
	if id <= 0 {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Create vuelve a pasar el input por AddPetForm: ninguna fila inválida llega al repo,
// aunque el caller no haya validado antes.
func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	clean, err := AddPetForm.Validate(in.Values())
	if err != nil {
		return Pet{}, err
	}
	in = CreateInputFromClean(clean)

	p := Pet{
		Name:      in.Name,
		Species:   in.Species,
		PhotoURL:  in.PhotoURL,
		Age:       in.Age,
		Notes:     in.Notes,
		Available: true,
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return Pet{}, fmt.Errorf("creating pet: %w", err)
	}
	return p, nil
}

// Update cambia solo photo_url, notes y available.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Pet, error) {
	clean, err := EditPetForm.Validate(in.Values())
	if err != nil {
		return Pet{}, err
	}
	in = UpdateInputFromClean(clean)

	if id <= 0 {
		return Pet{}, ErrNotFound
	}
	return s.repo.Update(ctx, id, UpdateFields{
		PhotoURL:  in.PhotoURL,
		Notes:     in.Notes,
		Available: in.Available,
	})
}
