package pets

import (
	"context"
	"errors"
)

// ErrNotFound lo devuelven los adapters cuando no existe una mascota con ese id.
var ErrNotFound = errors.New("pet not found")

// Repository es dueño exclusivo de la tabla pets.
type Repository interface {
	// List devuelve todas las mascotas ordenadas por id.
	List(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)

	// Create asigna p.ID y persiste. Available ya viene seteado por el Service.
	Create(ctx context.Context, p *Pet) error

	// Update sobreescribe solo photo_url, notes y available.
	Update(ctx context.Context, id int64, fields UpdateFields) (Pet, error)
}
