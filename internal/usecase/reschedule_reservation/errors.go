package reschedule_reservation

import "errors"

var (
	// ErrInvalidInput se devuelve ante datos de entrada inválidos
	ErrInvalidInput = errors.New("reschedule_reservation: invalid input data")

	// ErrReservationNotFound se devuelve cuando la reserva no existe
	ErrReservationNotFound = errors.New("reschedule_reservation: reservation not found")

	// ErrAlreadyFinalized se devuelve cuando la reserva ya está en un
	// estado terminal y no admite otra transición
	ErrAlreadyFinalized = errors.New("reschedule_reservation: reservation already finalized")

	// ErrDateInPast se devuelve cuando la nueva fecha ya pasó
	ErrDateInPast = errors.New("reschedule_reservation: date is in the past")

	// ErrSameSlot se devuelve cuando el nuevo turno es el mismo que el
	// actual
	ErrSameSlot = errors.New("reschedule_reservation: new slot equals current slot")

	// ErrSlotNotAvailable se devuelve cuando el nuevo turno no está
	// disponible
	ErrSlotNotAvailable = errors.New("reschedule_reservation: slot is not available")

	// ErrSlotTaken se devuelve cuando otra reserva concurrente ganó el
	// nuevo turno en el insert
	ErrSlotTaken = errors.New("reschedule_reservation: slot already taken")

	// ErrCustomerLimitExceeded se devuelve cuando el cliente ya alcanzó
	// su máximo de reservas activas para la nueva fecha
	ErrCustomerLimitExceeded = errors.New("reschedule_reservation: customer reservation limit reached for this date")

	// ErrDayLimitExceeded se devuelve cuando la nueva fecha ya alcanzó
	// el cupo máximo de reservas activas
	ErrDayLimitExceeded = errors.New("reschedule_reservation: day reservation limit reached")

	// ErrCalendarUnavailable se devuelve cuando el calendario externo no
	// responde durante el recheck de disponibilidad
	ErrCalendarUnavailable = errors.New("reschedule_reservation: calendar unavailable")

	// ErrInternal se devuelve ante errores internos del usecase
	ErrInternal = errors.New("reschedule_reservation: internal error")
)
