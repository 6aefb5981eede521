package reservations

import "errors"

var (
	// ErrReservationNotFound se devuelve cuando la reserva no existe
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidInput se devuelve ante parámetros inválidos
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal se devuelve ante errores internos del servicio
	ErrInternal = errors.New("internal service error")
)
