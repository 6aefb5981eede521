package availability

import (
	"context"
	"time"

	"github.com/ysiverio/reservasBarberia/internal/domain"
	"github.com/ysiverio/reservasBarberia/internal/integrations/googlecalendar"
)

// ReservationRepository interfaz del repositorio de reservas
type ReservationRepository interface {
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
	CountActiveByDate(ctx context.Context, date time.Time) (int, error)
}

// CalendarClient fuente secundaria de ocupación (espejo de calendario)
type CalendarClient interface {
	ListBusyIntervals(ctx context.Context, date time.Time) ([]googlecalendar.BusyInterval, error)
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
