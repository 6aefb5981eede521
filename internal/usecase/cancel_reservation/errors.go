package cancel_reservation

import "errors"

var (
	// ErrInvalidInput se devuelve ante datos de entrada inválidos
	ErrInvalidInput = errors.New("cancel_reservation: invalid input data")

	// ErrReservationNotFound se devuelve cuando la reserva no existe
	ErrReservationNotFound = errors.New("cancel_reservation: reservation not found")

	// ErrAlreadyFinalized se devuelve cuando la reserva ya está en un
	// estado terminal y no admite otra transición
	ErrAlreadyFinalized = errors.New("cancel_reservation: reservation already finalized")

	// ErrInternal se devuelve ante errores internos del usecase
	ErrInternal = errors.New("cancel_reservation: internal error")
)
