package reschedule_reservation

import (
	"context"
	"time"

	"github.com/ysiverio/reservasBarberia/internal/domain"
	"github.com/ysiverio/reservasBarberia/pkg/types"
)

// ReservationRepository interfaz del repositorio de reservas
type ReservationRepository interface {
	GetByToken(ctx context.Context, token string) (*domain.Reservation, error)
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	MarkRescheduled(ctx context.Context, id string, newID string) error
	CountActiveByDate(ctx context.Context, date time.Time) (int, error)
	CountActiveByEmailAndDate(ctx context.Context, email string, date time.Time) (int, error)
	SetCalendarEventID(ctx context.Context, id string, eventID string) error
}

// AvailabilityService interfaz del servicio de disponibilidad
type AvailabilityService interface {
	IsSlotAvailable(ctx context.Context, date time.Time, slot types.TimeString) (bool, error)
}

// CalendarClient interfaz del espejo de calendario
type CalendarClient interface {
	CreateEvent(ctx context.Context, res *domain.Reservation) (string, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

// Mailer interfaz del envío de correos
type Mailer interface {
	SendReschedule(old, updated *domain.Reservation, cancelURL string) error
}

// TransactionManager interfaz para manejo de transacciones
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
