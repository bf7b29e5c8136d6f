package router

import (
	"errors"
	"net/http"
	"time"

	_ "pet-adoption-agency/docs"
	"pet-adoption-agency/internal/domain/pets"
	"pet-adoption-agency/internal/middleware"
	"pet-adoption-agency/internal/platform/logger"
	"pet-adoption-agency/internal/ports/lookup"
	"pet-adoption-agency/internal/web"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

var ErrNoStore = errors.New("router: pet repository is required")

type Options struct {
	// PetRepo es el store ya construido (memory, postgres o sqlite).
	PetRepo pets.Repository

	// Lookup puede ser nil: el listado se muestra sin mascota destacada.
	Lookup        lookup.RandomPetLookup
	LookupTimeout time.Duration

	Logger          logger.Logger
	DefaultPhotoURL string
}

func NewRouter(opts Options) (http.Handler, error) {
	if opts.PetRepo == nil {
		return nil, ErrNoStore
	}

	pages, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	petsSvc := pets.NewService(opts.PetRepo)

	pets.RegisterAPIRoutes(r, petsSvc)
	pets.RegisterRoutes(r, pets.Deps{
		Service:         petsSvc,
		Pages:           pages,
		Lookup:          opts.Lookup,
		LookupTimeout:   opts.LookupTimeout,
		DefaultPhotoURL: opts.DefaultPhotoURL,
	})

	return r, nil
}
