package config

import (
	"errors"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var (
	ErrMissingAPIKey = errors.New("PETFINDER_API_KEY is required when enrichment is enabled")
	ErrMissingDSN    = errors.New("DB_DSN is required when STORE_DRIVER=postgres")
	ErrUnknownDriver = errors.New("STORE_DRIVER must be one of: memory, postgres, sqlite")
)

// Config se lee una sola vez al arrancar el proceso.
type Config struct {
	Port      int    `envconfig:"PORT" default:"8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	AppName   string `envconfig:"APP_NAME" default:"pet-adoption-agency"`

	StoreDriver string `envconfig:"STORE_DRIVER" default:"memory"`
	DBDSN       string `envconfig:"DB_DSN" default:""`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"pets.db"`

	EnrichmentEnabled bool          `envconfig:"ENRICHMENT_ENABLED" default:"true"`
	PetfinderAPIKey   string        `envconfig:"PETFINDER_API_KEY" default:""`
	PetfinderBaseURL  string        `envconfig:"PETFINDER_BASE_URL" default:"https://api.petfinder.com/v2"`
	PetfinderTimeout  time.Duration `envconfig:"PETFINDER_TIMEOUT" default:"5s"`
	PetfinderCacheTTL time.Duration `envconfig:"PETFINDER_CACHE_TTL" default:"10m"`

	// Imagen que se muestra cuando la mascota no tiene photo_url.
	DefaultPhotoURL string `envconfig:"DEFAULT_PHOTO_URL" default:""`
}

// Load lee la config desde env y valida los requisitos condicionales.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate cubre lo que envconfig no puede expresar con tags
// (requeridos que dependen de otros valores).
func (c *Config) Validate() error {
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))

	switch c.StoreDriver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if strings.TrimSpace(c.DBDSN) == "" {
			return ErrMissingDSN
		}
	default:
		return ErrUnknownDriver
	}

	if c.EnrichmentEnabled && strings.TrimSpace(c.PetfinderAPIKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}
