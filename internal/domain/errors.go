package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// Errores del ciclo de vida de listas de retiro.
	ErrMoveoutEmpty        = errors.New("la lista de retiro no tiene renglones")
	ErrMoveoutNoAmounts    = errors.New("todos los renglones tienen cantidad cero")
	ErrItemAlreadyProcessed = errors.New("el renglón ya fue completado")
)
