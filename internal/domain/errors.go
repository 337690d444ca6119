package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrConflict       = errors.New("conflicto con el estado actual")
	ErrUserNotLinked  = errors.New("usuario no registrado en app_users, contacte a un administrador")
	ErrInactiveUser   = errors.New("usuario inactivo")
	ErrNoCaseAssigned = errors.New("el usuario no tiene vitrina asignada")
)

// ErrInvalidStockData una fila de las vistas de stock no pasó la validación (dato corrupto en el backend).
var ErrInvalidStockData = errors.New("datos de stock inválidos en el backend")
