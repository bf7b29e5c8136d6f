// Package sqlite guarda las mascotas en un archivo SQLite vía gorm.
// Pensado para desarrollo local sin Postgres.
package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pet-adoption-agency/internal/domain/pets"
)

// petRow es la fila de la tabla pets. photo_url y notes aceptan NULL.
// available no lleva default:true: gorm reemplaza el zero value por el default
// y un false nunca llegaría a la base.
type petRow struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"not null;check:trim(name) <> ''"`
	Species   string  `gorm:"not null;check:species IN ('cat','dog','porcupine')"`
	PhotoURL  *string `gorm:"column:photo_url"`
	Age       int     `gorm:"not null;check:age BETWEEN 0 AND 30"`
	Notes     *string `gorm:"check:length(notes) <= 50"`
	Available bool    `gorm:"not null"`
}

func (petRow) TableName() string { return "pets" }

func (r petRow) toPet() pets.Pet {
	p := pets.Pet{
		ID:        r.ID,
		Name:      r.Name,
		Species:   pets.Species(r.Species),
		Age:       r.Age,
		Available: r.Available,
	}
	if r.PhotoURL != nil {
		p.PhotoURL = *r.PhotoURL
	}
	if r.Notes != nil {
		p.Notes = *r.Notes
	}
	return p
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Open abre (o crea) la base y migra la tabla pets.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %q: %w", path, err)
	}
	if err := db.AutoMigrate(&petRow{}); err != nil {
		return nil, fmt.Errorf("migrating pets table: %w", err)
	}
	return db, nil
}

type PetsRepo struct {
	db *gorm.DB
}

func NewPetsRepo(db *gorm.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

var _ pets.Repository = (*PetsRepo)(nil)

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	var rows []petRow
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing pets: %w", err)
	}
	out := make([]pets.Pet, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toPet())
	}
	return out, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	var row petRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("getting pet %d: %w", id, err)
	}
	return row.toPet(), nil
}

func (r *PetsRepo) Create(ctx context.Context, p *pets.Pet) error {
	row := petRow{
		Name:      p.Name,
		Species:   string(p.Species),
		PhotoURL:  optional(p.PhotoURL),
		Age:       p.Age,
		Notes:     optional(p.Notes),
		Available: p.Available,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("inserting pet: %w", err)
	}
	p.ID = row.ID
	return nil
}

func (r *PetsRepo) Update(ctx context.Context, id int64, f pets.UpdateFields) (pets.Pet, error) {
	res := r.db.WithContext(ctx).Model(&petRow{}).Where("id = ?", id).Updates(map[string]any{
		"photo_url": optional(f.PhotoURL),
		"notes":     optional(f.Notes),
		"available": f.Available,
	})
	if res.Error != nil {
		return pets.Pet{}, fmt.Errorf("updating pet %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return pets.Pet{}, pets.ErrNotFound
	}
	return r.GetByID(ctx, id)
}
