package pets

import "strings"

// Species define las especies que acepta la agencia.
// @Enum cat, dog, porcupine
type Species string

const (
	SpeciesCat       Species = "cat"
	SpeciesDog       Species = "dog"
	SpeciesPorcupine Species = "porcupine"
)

// AllSpecies en el orden en que se muestran en el formulario.
var AllSpecies = []Species{SpeciesCat, SpeciesDog, SpeciesPorcupine}

func (s Species) Valid() bool {
	for _, v := range AllSpecies {
		if s == v {
			return true
		}
	}
	return false
}

// Label es el texto que ve el usuario (Cat, Dog, Porcupine).
func (s Species) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

const (
	MinAge        = 0
	MaxAge        = 30
	MaxNotesChars = 50

	// DefaultPhotoURL se muestra cuando la mascota no tiene foto. No se persiste.
	DefaultPhotoURL = "https://media.gettyimages.com/photos/portrait-of-otter-on-grassy-field-picture-id590287239?s=612x612"
)

// Pet es un registro de mascota en adopción.
// Name, Species y Age no cambian después del alta.
type Pet struct {
	ID int64

	Name    string
	Species Species
	Age     int

	PhotoURL  string
	Notes     string
	Available bool
}

// PhotoOrDefault devuelve la foto o fallback si no hay.
func (p Pet) PhotoOrDefault(fallback string) string {
	if strings.TrimSpace(p.PhotoURL) != "" {
		return p.PhotoURL
	}
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return DefaultPhotoURL
}

// UpdateFields son los únicos campos que se pueden editar.
type UpdateFields struct {
	PhotoURL  string
	Notes     string
	Available bool
}
