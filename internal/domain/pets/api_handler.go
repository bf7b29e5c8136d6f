package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"pet-adoption-agency/internal/forms"
	"pet-adoption-agency/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes monta la API JSON bajo /api/pets. Usa el mismo Service y los
// mismos perfiles de validación que los formularios.
func RegisterAPIRoutes(r chi.Router, svc *Service) {
	r.Route("/api/pets", func(pr chi.Router) {
		pr.Get("/", listPetsAPI(svc))
		pr.Post("/", createPetAPI(svc))
		pr.Get("/{petID}", getPetAPI(svc))
		pr.Patch("/{petID}", updatePetAPI(svc))
	})
}

type createPetRequest struct {
	Name     string `json:"name" example:"Fido"`
	Species  string `json:"species" example:"dog" enums:"cat,dog,porcupine"`
	PhotoURL string `json:"photo_url" example:"http://x.com/a.jpg"`
	Age      *int   `json:"age" example:"3"`
	Notes    string `json:"notes" example:"friendly"`
}

// updatePetRequest: punteros para PATCH real, nil = no tocar.
type updatePetRequest struct {
	PhotoURL  *string `json:"photo_url"`
	Notes     *string `json:"notes"`
	Available *bool   `json:"available"`
}

type petResponse struct {
	ID        int64   `json:"id" example:"1"`
	Name      string  `json:"name" example:"Fido"`
	Species   Species `json:"species" example:"dog"`
	PhotoURL  string  `json:"photo_url" example:"http://x.com/a.jpg"`
	Age       int     `json:"age" example:"3"`
	Notes     string  `json:"notes" example:"friendly"`
	Available bool    `json:"available" example:"true"`
}

type validationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// listPetsAPI godoc
// @Summary  List pets
// @Tags     pets
// @Produce  json
// @Success  200  {array}   petResponse
// @Router   /api/pets [get]
func listPetsAPI(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			apiInternalError(w, r, "listing pets", err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getPetAPI godoc
// @Summary  Get a pet
// @Tags     pets
// @Produce  json
// @Param    petID  path      int  true  "Pet ID"
// @Success  200    {object}  petResponse
// @Failure  404    {object}  errorResponse
// @Router   /api/pets/{petID} [get]
func getPetAPI(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := apiPetID(w, r)
		if !ok {
			return
		}

		p, err := svc.Get(r.Context(), id)
		if err != nil {
			apiStoreError(w, r, "getting pet", err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// createPetAPI godoc
// @Summary  Add a pet
// @Tags     pets
// @Accept   json
// @Produce  json
// @Param    pet  body      createPetRequest  true  "New pet"
// @Success  201  {object}  petResponse
// @Failure  400  {object}  validationErrorResponse
// @Router   /api/pets [post]
func createPetAPI(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		values := map[string]string{
			"name":      req.Name,
			"species":   req.Species,
			"photo_url": req.PhotoURL,
			"notes":     req.Notes,
		}
		if req.Age != nil {
			values["age"] = strconv.Itoa(*req.Age)
		}

		clean, err := AddPetForm.Validate(values)
		if err != nil {
			apiStoreError(w, r, "validating pet", err)
			return
		}

		p, err := svc.Create(r.Context(), CreateInputFromClean(clean))
		if err != nil {
			apiStoreError(w, r, "creating pet", err)
			return
		}
		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// updatePetAPI godoc
// @Summary      Edit a pet
// @Description  Only photo_url, notes and available can change. Omitted fields keep their value.
// @Tags         pets
// @Accept       json
// @Produce      json
// @Param        petID  path      int               true  "Pet ID"
// @Param        pet    body      updatePetRequest  true  "Fields to change"
// @Success      200    {object}  petResponse
// @Failure      400    {object}  validationErrorResponse
// @Failure      404    {object}  errorResponse
// @Router       /api/pets/{petID} [patch]
func updatePetAPI(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := apiPetID(w, r)
		if !ok {
			return
		}

		var req updatePetRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		current, err := svc.Get(r.Context(), id)
		if err != nil {
			apiStoreError(w, r, "getting pet", err)
			return
		}

		in := UpdateInput{
			PhotoURL:  current.PhotoURL,
			Notes:     current.Notes,
			Available: current.Available,
		}
		if req.PhotoURL != nil {
			in.PhotoURL = *req.PhotoURL
		}
		if req.Notes != nil {
			in.Notes = *req.Notes
		}
		if req.Available != nil {
			in.Available = *req.Available
		}

		updated, err := svc.Update(r.Context(), id, in)
		if err != nil {
			apiStoreError(w, r, "updating pet", err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(updated))
	}
}

func apiPetID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "pet not found"})
		return 0, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
		return false
	}
	return true
}

// apiStoreError traduce la taxonomía de errores a status HTTP.
func apiStoreError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var verr *forms.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, validationErrorResponse{Errors: verr.Fields})
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "pet not found"})
	default:
		apiInternalError(w, r, op, err)
	}
}

func apiInternalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	logger.FromContext(r.Context()).Error(op, logger.Fields{"error": err})
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		Name:      p.Name,
		Species:   p.Species,
		PhotoURL:  p.PhotoURL,
		Age:       p.Age,
		Notes:     p.Notes,
		Available: p.Available,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
