package googlecalendar

import "errors"

var (
	// ErrUnavailable se devuelve cuando el calendario no responde.
	// Quien resuelve disponibilidad NUNCA debe tratarlo como "día libre".
	ErrUnavailable = errors.New("googlecalendar client: calendar unavailable")

	// ErrEventNotCreated se devuelve cuando no se pudo crear el evento espejo
	ErrEventNotCreated = errors.New("googlecalendar client: event not created")

	// ErrInternal se devuelve ante errores internos del cliente
	ErrInternal = errors.New("googlecalendar client: internal error")
)
