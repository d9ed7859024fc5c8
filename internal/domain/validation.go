package domain

import (
	"fmt"
	"strings"
)

// FieldError es un error de validación sobre un campo puntual.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError acumula errores de validación campo por campo, de modo que
// la respuesta HTTP pueda reportarlos todos de una vez.
type ValidationError struct {
	Fields []FieldError
}

// Error implementa error.
func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validación fallida"
	}
	msgs := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Path, f.Message)
	}
	return "validación fallida: " + strings.Join(msgs, "; ")
}

// Validation construye un acumulador vacío.
func Validation() *ValidationError {
	return &ValidationError{}
}

// Add agrega un error de campo y devuelve el acumulador para encadenar.
func (v *ValidationError) Add(path, message string) *ValidationError {
	v.Fields = append(v.Fields, FieldError{Path: path, Message: message})
	return v
}

// Err devuelve el error acumulado, o nil si no hubo fallas.
func (v *ValidationError) Err() error {
	if len(v.Fields) == 0 {
		return nil
	}
	return v
}
