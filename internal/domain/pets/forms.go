package pets

import (
	"strconv"

	"pet-adoption-agency/internal/forms"
)

func speciesChoices() []string {
	out := make([]string, 0, len(AllSpecies))
	for _, s := range AllSpecies {
		out = append(out, string(s))
	}
	return out
}

// AddPetForm valida el alta de una mascota.
var AddPetForm = forms.Profile{
	Name: "add_pet",
	Fields: []forms.Field{
		{Name: "name", Rules: []forms.Rule{forms.Required()}},
		{Name: "species", Rules: []forms.Rule{forms.Required(), forms.OneOf(speciesChoices()...)}},
		{Name: "photo_url", Optional: true, Rules: []forms.Rule{forms.URL()}},
		{
			Name:    "age",
			Rules:   []forms.Rule{forms.Required(), forms.Integer(), forms.IntRange(MinAge, MaxAge)},
			Convert: forms.ToInt,
		},
		{Name: "notes", Optional: true, Rules: []forms.Rule{forms.MaxLength(MaxNotesChars)}},
	},
}

// EditPetForm valida la edición. available ausente => false (checkbox).
var EditPetForm = forms.Profile{
	Name: "edit_pet",
	Fields: []forms.Field{
		{Name: "photo_url", Optional: true, Rules: []forms.Rule{forms.URL()}},
		{Name: "notes", Optional: true, Rules: []forms.Rule{forms.MaxLength(MaxNotesChars)}},
		{Name: "available", Convert: forms.ToBool},
	},
}

type CreateInput struct {
	Name     string
	Species  Species
	PhotoURL string
	Age      int
	Notes    string
}

// Values devuelve el input como lo mandaría el formulario.
func (in CreateInput) Values() map[string]string {
	return map[string]string{
		"name":      in.Name,
		"species":   string(in.Species),
		"photo_url": in.PhotoURL,
		"age":       strconv.Itoa(in.Age),
		"notes":     in.Notes,
	}
}

func CreateInputFromClean(c forms.Clean) CreateInput {
	return CreateInput{
		Name:     c.String("name"),
		Species:  Species(c.String("species")),
		PhotoURL: c.String("photo_url"),
		Age:      c.Int("age"),
		Notes:    c.String("notes"),
	}
}

type UpdateInput struct {
	PhotoURL  string
	Notes     string
	Available bool
}

func (in UpdateInput) Values() map[string]string {
	return map[string]string{
		"photo_url": in.PhotoURL,
		"notes":     in.Notes,
		"available": strconv.FormatBool(in.Available),
	}
}

func UpdateInputFromClean(c forms.Clean) UpdateInput {
	return UpdateInput{
		PhotoURL:  c.String("photo_url"),
		Notes:     c.String("notes"),
		Available: c.Bool("available"),
	}
}
