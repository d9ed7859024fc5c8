package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP los
// traducen a códigos de estado; el motor nunca los reintenta por su cuenta,
// salvo ErrConflict que el TxRunner produce tras agotar reintentos.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidCategory   = errors.New("categoría de producto inválida para la operación")
	ErrInvalidTransfer   = errors.New("origen y destino deben ser distintos")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrAlreadyTerminal   = errors.New("la orden ya está en estado terminal")
)
