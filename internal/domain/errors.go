package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
)

// ValidationError una falla del contrato de campos obligatorios: un rol sin
// mapear, o un valor canónico nulo/no numérico/no fecha al momento de leerlo.
// Aborta la corrida completa; no se devuelve un kardex parcial.
type ValidationError struct {
	Stream string // "stock_inicial" | "entradas" | "salidas"
	Field  string // rol canónico o columna ofensora
	Row    int    // índice de la fila ofensora; -1 si la falla es del mapeo
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("validación %s: campo %q fila %d: %s", e.Stream, e.Field, e.Row, e.Reason)
	}
	return fmt.Sprintf("validación %s: campo %q: %s", e.Stream, e.Field, e.Reason)
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError construye un ValidationError de mapeo (sin fila).
func NewValidationError(stream, field, reason string) *ValidationError {
	return &ValidationError{Stream: stream, Field: field, Row: -1, Reason: reason}
}
