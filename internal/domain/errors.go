package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Son los únicos errores que cruzan el contrato del repositorio: la causa cruda
// (driver SQLite, transporte HTTP) se registra en el log y no se propaga.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrValidation        = errors.New("datos inválidos")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrUnavailable       = errors.New("backend de datos no disponible")
)
