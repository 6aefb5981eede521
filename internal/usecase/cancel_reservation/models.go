package cancel_reservation

import (
	"time"

	"github.com/ysiverio/reservasBarberia/pkg/types"
)

// Request modelo de solicitud de cancelación.
// Exactamente uno de Token (autogestión del cliente) o ID (panel de
// administración) debe estar presente.
type Request struct {
	Token  string  // Cancel token de la reserva
	ID     string  // ID de la reserva (solo flujo admin)
	Reason *string // Motivo opcional
}

// Response modelo de respuesta con la reserva cancelada
type Response struct {
	ID                 string
	CustomerName       string
	CustomerEmail      string
	Date               time.Time
	Time               types.TimeString
	Status             string
	CancellationReason string
	CancelledAt        time.Time
}
