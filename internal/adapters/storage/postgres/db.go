package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre el pool de conexiones a Postgres vía pgx (database/sql) y hace ping.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	return db, nil
}

// schema replica el invariante del dominio con CHECKs.
const schema = `
CREATE TABLE IF NOT EXISTS pets (
	id        SERIAL PRIMARY KEY,
	name      TEXT    NOT NULL CHECK (btrim(name) <> ''),
	species   TEXT    NOT NULL CHECK (species IN ('cat', 'dog', 'porcupine')),
	photo_url TEXT,
	age       INTEGER NOT NULL CHECK (age BETWEEN 0 AND 30),
	notes     TEXT    CHECK (char_length(notes) <= 50),
	available BOOLEAN NOT NULL DEFAULT TRUE
)`

// EnsureSchema crea la tabla pets si no existe. Se llama al arrancar.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating pets table: %w", err)
	}
	return nil
}
