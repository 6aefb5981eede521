package create_reservation

import (
	"time"

	"github.com/ysiverio/reservasBarberia/pkg/types"
)

// Request modelo de solicitud de creación de reserva
type Request struct {
	CustomerName  string           // Nombre del cliente
	CustomerEmail string           // Email del cliente
	Date          time.Time        // Fecha de la reserva (sin hora)
	Time          types.TimeString // Turno pedido (por ejemplo, "09:30")
}

// Response modelo de respuesta con la reserva creada.
// Es el único lugar donde el cancel token sale del sistema junto con
// el correo de confirmación.
type Response struct {
	ID            string           // ID de la reserva creada
	CustomerName  string           // Nombre del cliente
	CustomerEmail string           // Email del cliente
	Date          time.Time        // Fecha de la reserva
	Time          types.TimeString // Turno reservado
	Status        string           // Estado de la reserva
	CancelToken   string           // Token para cancelar o reagendar
	CancelURL     string           // Link de gestión enviado por correo

	CreatedAt time.Time
	UpdatedAt time.Time
}
