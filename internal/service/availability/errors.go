package availability

import "errors"

var (
	// ErrDependencyUnavailable se devuelve cuando el almacén o el
	// calendario externo no responden. Nunca se degrada a "día libre":
	// un falso disponible permitiría doble reserva contra tiempo ya
	// tomado en el calendario.
	ErrDependencyUnavailable = errors.New("availability: dependency unavailable")

	// ErrInternal se devuelve ante errores internos del servicio
	ErrInternal = errors.New("availability: internal error")
)
