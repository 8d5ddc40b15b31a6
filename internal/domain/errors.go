package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")

	// ErrDatabase es el fallo opaco que se devuelve al caller ante cualquier
	// error de persistencia. El detalle real se registra en el log del
	// servidor y nunca viaja en la respuesta.
	ErrDatabase = errors.New("error de base de datos")
)
