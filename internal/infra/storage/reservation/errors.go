package reservation

import "errors"

var (
	// ErrReservationNotFound se devuelve cuando la reserva no existe
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrSlotTaken se devuelve cuando otra reserva activa ya ocupa el
	// par (fecha, hora). Lo produce el índice único parcial; es la
	// defensa autoritativa contra la doble reserva.
	ErrSlotTaken = errors.New("reservation.repository: slot already taken")

	// ErrNotActive se devuelve cuando una transición condicional no
	// afecta filas porque la reserva ya está en estado terminal
	ErrNotActive = errors.New("reservation.repository: reservation is not active")

	// ErrBuildQuery se devuelve al fallar la construcción del SQL
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery se devuelve al fallar la ejecución del SQL
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow se devuelve al fallar el escaneo del resultado
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
