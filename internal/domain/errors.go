package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrIndexOutOfRange = errors.New("índice fuera de rango")
)

// Variantes específicas; se pueden comparar con errors.Is contra la genérica.
var (
	ErrPartNotFound    = fmt.Errorf("pieza: %w", ErrNotFound)
	ErrProductNotFound = fmt.Errorf("producto: %w", ErrNotFound)
	ErrProductHasParts = fmt.Errorf("el producto tiene piezas asociadas: %w", ErrConflict)
	ErrPartInUse       = fmt.Errorf("la pieza está asociada a uno o más productos: %w", ErrConflict)
)
