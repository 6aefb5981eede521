package reservations

import (
	"context"
	"time"

	"github.com/ysiverio/reservasBarberia/internal/domain"
)

// ReservationRepository interfaz del repositorio de reservas
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	GetByToken(ctx context.Context, token string) (*domain.Reservation, error)
	GetByDateRange(ctx context.Context, start, end time.Time, activeOnly bool) ([]*domain.Reservation, error)
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
