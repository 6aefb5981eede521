package cancel_reservation

import (
	"context"
	"time"

	"github.com/ysiverio/reservasBarberia/internal/domain"
)

// ReservationRepository interfaz del repositorio de reservas
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	GetByToken(ctx context.Context, token string) (*domain.Reservation, error)
	MarkCancelled(ctx context.Context, id string, reason string) error
}

// CalendarClient interfaz del espejo de calendario
type CalendarClient interface {
	DeleteEvent(ctx context.Context, eventID string) error
}

// Mailer interfaz del envío de correos
type Mailer interface {
	SendCancellation(res *domain.Reservation, reason string) error
}

// TimeProvider interfaz para obtener la hora actual (para testing)
type TimeProvider interface {
	Now() time.Time
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider proveedor de tiempo real para producción
type RealTimeProvider struct{}

// Now devuelve la hora actual
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
