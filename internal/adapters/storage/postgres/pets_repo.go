package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-adoption-agency/internal/domain/pets"
)

const petColumns = `id, name, species, photo_url, age, notes, available`

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

var _ pets.Repository = (*PetsRepo)(nil)

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(row scanner) (pets.Pet, error) {
	var (
		p        pets.Pet
		species  string
		photoURL sql.NullString
		notes    sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Name, &species, &photoURL, &p.Age, &notes, &p.Available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("scanning pet row: %w", err)
	}
	p.Species = pets.Species(species)
	p.PhotoURL = photoURL.String
	p.Notes = notes.String
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+petColumns+` FROM pets ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing pets: %w", err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)
	return scanPet(row)
}

func (r *PetsRepo) Create(ctx context.Context, p *pets.Pet) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (name, species, photo_url, age, notes, available)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		p.Name,
		string(p.Species),
		nullString(p.PhotoURL),
		p.Age,
		nullString(p.Notes),
		p.Available,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("inserting pet: %w", err)
	}
	return nil
}

func (r *PetsRepo) Update(ctx context.Context, id int64, f pets.UpdateFields) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE pets
		SET photo_url = $2, notes = $3, available = $4
		WHERE id = $1
		RETURNING `+petColumns,
		id,
		nullString(f.PhotoURL),
		nullString(f.Notes),
		f.Available,
	)
	return scanPet(row)
}

// photo_url y notes vacíos se guardan como NULL.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
