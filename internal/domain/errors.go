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
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrZeroAdjustment     = errors.New("la cantidad de ajuste no puede ser 0")
	ErrImmutableBaseline  = errors.New("el stock inicial es inmutable")
	// ErrStoreUnavailable distingue una falla de lectura del almacén de un
	// agregado legítimamente en cero: el core nunca presenta ceros como datos
	// reales cuando la lectura falló.
	ErrStoreUnavailable = errors.New("almacén de datos no disponible")
)
