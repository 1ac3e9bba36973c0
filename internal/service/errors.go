package service

import "errors"

// Taxonomía de errores del dominio. Los handlers los mapean a códigos
// HTTP con errors.Is; todo lo que no matchee se responde como 500
// con mensaje genérico (nunca filtramos detalle interno al cliente).
var (
	ErrValidation      = errors.New("validation failed")
	ErrBadInput        = errors.New("bad input")
	ErrDuplicate       = errors.New("duplicate")
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")

	// borrar un género todavía referenciado por películas está bloqueado
	ErrGenreInUse = errors.New("genre in use")
)
