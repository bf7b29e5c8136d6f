// Package forms valida conjuntos de campos de formularios con reglas declarativas:
// cada campo tiene una lista ordenada de (predicado, mensaje) que se evalúa igual
// para cualquier perfil.
package forms

import (
	"fmt"
	"sort"
	"strings"
)

// Rule es un predicado sobre el valor crudo del campo y el mensaje a mostrar si falla.
type Rule struct {
	Check   func(value string) bool
	Message string
}

// Field describe un campo de un perfil.
type Field struct {
	Name string

	// Optional: si el valor (trim) está vacío, no se evalúan reglas
	// y el valor limpio es el zero value de Convert("").
	Optional bool

	Rules []Rule

	// Convert pasa el valor crudo a su forma limpia (string/int/bool).
	// Nil => el string tal cual llegó.
	Convert func(value string) any
}

// Profile es el conjunto de campos de un formulario (add, edit, ...).
type Profile struct {
	Name   string
	Fields []Field
}

// Clean es el mapa de valores aceptados, ya convertidos.
type Clean map[string]any

func (c Clean) String(field string) string {
	s, _ := c[field].(string)
	return s
}

func (c Clean) Int(field string) int {
	n, _ := c[field].(int)
	return n
}

func (c Clean) Bool(field string) bool {
	b, _ := c[field].(bool)
	return b
}

// ValidationError agrupa un mensaje por campo rechazado.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, n := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", n, e.Fields[n]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has indica si el campo tiene error.
func (e *ValidationError) Has(field string) bool {
	if e == nil {
		return false
	}
	_, ok := e.Fields[field]
	return ok
}

// Validate evalúa el perfil sobre input. La primera regla que falla por campo
// define el mensaje. Campos ausentes en input se tratan como "".
// No tiene efectos laterales.
func (p Profile) Validate(input map[string]string) (Clean, error) {
	clean := Clean{}
	errs := map[string]string{}

	for _, f := range p.Fields {
		raw := input[f.Name]

		if f.Optional && strings.TrimSpace(raw) == "" {
			clean[f.Name] = convert(f, "")
			continue
		}

		failed := false
		for _, r := range f.Rules {
			if !r.Check(raw) {
				errs[f.Name] = r.Message
				failed = true
				break
			}
		}
		if failed {
			continue
		}
		clean[f.Name] = convert(f, raw)
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	return clean, nil
}

func convert(f Field, raw string) any {
	if f.Convert == nil {
		return raw
	}
	return f.Convert(raw)
}
