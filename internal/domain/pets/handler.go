package pets

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"pet-adoption-agency/internal/forms"
	"pet-adoption-agency/internal/platform/logger"
	"pet-adoption-agency/internal/ports/lookup"
	"pet-adoption-agency/internal/web"

	"github.com/go-chi/chi/v5"
)

const defaultLookupTimeout = 3 * time.Second

// Deps son las dependencias de los handlers; se construyen en el router.
type Deps struct {
	Service *Service
	Pages   *web.Renderer

	// Lookup es opcional: nil => el listado no muestra mascota destacada.
	Lookup        lookup.RandomPetLookup
	LookupTimeout time.Duration

	DefaultPhotoURL string
}

// RegisterRoutes monta las páginas HTML en "/" y en "/pets" (mismas rutas con y sin prefijo).
func RegisterRoutes(r chi.Router, d Deps) {
	r.Get("/", listPetsPage(d))
	mountPetPages(r, d)

	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsPage(d))
		mountPetPages(pr, d)
	})
}

func mountPetPages(r chi.Router, d Deps) {
	r.Get("/add", addPetPage(d))
	r.Post("/add", addPetSubmit(d))

	r.Get("/{petID}", editPetPage(d))
	r.Post("/{petID}", editPetSubmit(d))
}

type listItem struct {
	ID        int64
	Name      string
	Photo     string
	Available bool
}

type listView struct {
	Pets     []listItem
	Featured *lookup.Featured
}

type speciesOption struct {
	Value   string
	Label   string
	Checked bool
}

type addView struct {
	Values  map[string]string
	Errors  map[string]string
	Species []speciesOption
}

type editView struct {
	Pet       Pet
	Photo     string
	Values    map[string]string
	Errors    map[string]string
	Available bool
}

type notFoundView struct {
	Message string
}

func listPetsPage(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := d.Service.List(r.Context())
		if err != nil {
			internalError(w, r, "listing pets", err)
			return
		}

		view := listView{Pets: make([]listItem, 0, len(items))}
		for _, p := range items {
			view.Pets = append(view.Pets, listItem{
				ID:        p.ID,
				Name:      p.Name,
				Photo:     p.PhotoOrDefault(d.DefaultPhotoURL),
				Available: p.Available,
			})
		}
		view.Featured = featuredPet(r.Context(), d)

		render(w, r, d, http.StatusOK, web.PageList, view)
	}
}

// featuredPet nunca hace fallar la página: cualquier error se loguea y se omite.
func featuredPet(ctx context.Context, d Deps) *lookup.Featured {
	if d.Lookup == nil {
		return nil
	}

	timeout := d.LookupTimeout
	if timeout <= 0 {
		timeout = defaultLookupTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	f, err := d.Lookup.RandomPet(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn("random pet lookup failed", logger.Fields{"error": err})
		return nil
	}
	return &f
}

func addPetPage(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, r, d, http.StatusOK, web.PageAdd, newAddView(nil, nil))
	}
}

func addPetSubmit(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, ok := formValues(w, r, AddPetForm)
		if !ok {
			return
		}

		clean, err := AddPetForm.Validate(values)
		if err == nil {
			var p Pet
			p, err = d.Service.Create(r.Context(), CreateInputFromClean(clean))
			if err == nil {
				logger.FromContext(r.Context()).Info("pet created", logger.Fields{"pet_id": p.ID, "species": p.Species})
				http.Redirect(w, r, "/pets", http.StatusSeeOther)
				return
			}
		}

		var verr *forms.ValidationError
		if errors.As(err, &verr) {
			render(w, r, d, http.StatusOK, web.PageAdd, newAddView(values, verr.Fields))
			return
		}
		internalError(w, r, "creating pet", err)
	}
}

func editPetPage(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := loadPet(w, r, d)
		if !ok {
			return
		}

		render(w, r, d, http.StatusOK, web.PageEdit, editView{
			Pet:   p,
			Photo: p.PhotoOrDefault(d.DefaultPhotoURL),
			Values: map[string]string{
				"photo_url": p.PhotoURL,
				"notes":     p.Notes,
			},
			Available: p.Available,
		})
	}
}

func editPetSubmit(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := loadPet(w, r, d)
		if !ok {
			return
		}

		values, ok := formValues(w, r, EditPetForm)
		if !ok {
			return
		}

		clean, err := EditPetForm.Validate(values)
		if err == nil {
			_, err = d.Service.Update(r.Context(), p.ID, UpdateInputFromClean(clean))
			if err == nil {
				logger.FromContext(r.Context()).Info("pet updated", logger.Fields{"pet_id": p.ID})
				http.Redirect(w, r, "/pets", http.StatusSeeOther)
				return
			}
		}

		var verr *forms.ValidationError
		switch {
		case errors.As(err, &verr):
			render(w, r, d, http.StatusOK, web.PageEdit, editView{
				Pet:       p,
				Photo:     p.PhotoOrDefault(d.DefaultPhotoURL),
				Values:    values,
				Errors:    verr.Fields,
				Available: forms.ToBool(values["available"]).(bool),
			})
		case errors.Is(err, ErrNotFound):
			notFound(w, r, d)
		default:
			internalError(w, r, "updating pet", err)
		}
	}
}

// loadPet resuelve {petID}; escribe 404 si no es un entero o no existe.
func loadPet(w http.ResponseWriter, r *http.Request, d Deps) (Pet, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
	if err != nil {
		notFound(w, r, d)
		return Pet{}, false
	}

	p, err := d.Service.Get(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		notFound(w, r, d)
		return Pet{}, false
	}
	if err != nil {
		internalError(w, r, "getting pet", err)
		return Pet{}, false
	}
	return p, true
}

// formValues toma del body solo los campos que conoce el perfil.
func formValues(w http.ResponseWriter, r *http.Request, profile forms.Profile) (map[string]string, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return nil, false
	}
	out := make(map[string]string, len(profile.Fields))
	for _, f := range profile.Fields {
		out[f.Name] = r.PostForm.Get(f.Name)
	}
	return out, true
}

func newAddView(values, errs map[string]string) addView {
	if values == nil {
		values = map[string]string{}
	}
	opts := make([]speciesOption, 0, len(AllSpecies))
	for _, s := range AllSpecies {
		opts = append(opts, speciesOption{
			Value:   string(s),
			Label:   s.Label(),
			Checked: values["species"] == string(s),
		})
	}
	return addView{Values: values, Errors: errs, Species: opts}
}

func notFound(w http.ResponseWriter, r *http.Request, d Deps) {
	render(w, r, d, http.StatusNotFound, web.PageNotFound, notFoundView{
		Message: "No pet with id " + chi.URLParam(r, "petID") + ".",
	})
}

func render(w http.ResponseWriter, r *http.Request, d Deps, status int, page string, data any) {
	if err := d.Pages.Render(w, status, page, data); err != nil {
		internalError(w, r, "rendering "+page, err)
	}
}

func internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	logger.FromContext(r.Context()).Error(op, logger.Fields{"error": err})
	http.Error(w, "internal error", http.StatusInternalServerError)
}
