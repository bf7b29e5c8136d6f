package lookup

import (
	"context"
	"errors"
)

// ErrExternalService cubre cualquier falla del servicio externo (red, status,
// JSON mal formado o respuesta vacía). Quien llama debe degradar, no fallar.
var ErrExternalService = errors.New("external pet lookup failed")

// Featured es lo único que usamos de la respuesta externa.
type Featured struct {
	Name     string
	PhotoURL string // primera foto, puede venir vacío
	Age      string // el servicio devuelve categorías (Baby, Young, Adult, Senior)
}

// RandomPetLookup devuelve una mascota al azar para mostrar. Solo display.
type RandomPetLookup interface {
	RandomPet(ctx context.Context) (Featured, error)
}
