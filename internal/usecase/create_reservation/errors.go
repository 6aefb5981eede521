package create_reservation

import "errors"

var (
	// ErrInvalidInput se devuelve ante datos de entrada inválidos
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidEmail se devuelve cuando el email no tiene formato válido
	ErrInvalidEmail = errors.New("create_reservation: invalid email")

	// ErrDateInPast se devuelve cuando la fecha pedida ya pasó
	ErrDateInPast = errors.New("create_reservation: date is in the past")

	// ErrSlotNotAvailable se devuelve cuando el turno pedido no está
	// entre los disponibles del día (día no laborable, cupo lleno,
	// turno ocupado o fuera de la grilla)
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrSlotTaken se devuelve cuando otra reserva concurrente ganó el
	// mismo turno en el insert
	ErrSlotTaken = errors.New("create_reservation: slot already taken")

	// ErrCustomerLimitExceeded se devuelve cuando el cliente ya alcanzó
	// su máximo de reservas activas para ese día
	ErrCustomerLimitExceeded = errors.New("create_reservation: customer reservation limit reached for this date")

	// ErrDayLimitExceeded se devuelve cuando el día ya alcanzó el cupo
	// máximo de reservas activas
	ErrDayLimitExceeded = errors.New("create_reservation: day reservation limit reached")

	// ErrCalendarUnavailable se devuelve cuando el calendario externo no
	// responde y la operación no puede completarse con seguridad
	ErrCalendarUnavailable = errors.New("create_reservation: calendar unavailable")

	// ErrInternal se devuelve ante errores internos del usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
