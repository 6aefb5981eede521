package reschedule_reservation

import (
	"time"

	"github.com/ysiverio/reservasBarberia/pkg/types"
)

// Request modelo de solicitud de reagendamiento
type Request struct {
	Token string           // Cancel token de la reserva vigente
	Date  time.Time        // Nueva fecha
	Time  types.TimeString // Nuevo turno
}

// Response modelo de respuesta con la reserva nueva.
// El token anterior queda inutilizado: la reserva vieja pasa a
// RESCHEDULED y la nueva rota su propio cancel token.
type Response struct {
	PreviousID    string           // ID de la reserva reagendada
	ID            string           // ID de la reserva nueva
	CustomerName  string           // Nombre del cliente
	CustomerEmail string           // Email del cliente
	Date          time.Time        // Nueva fecha
	Time          types.TimeString // Nuevo turno
	Status        string           // Estado de la reserva nueva
	CancelToken   string           // Token nuevo para cancelar o reagendar
	CancelURL     string           // Link de gestión enviado por correo

	CreatedAt time.Time
	UpdatedAt time.Time
}
