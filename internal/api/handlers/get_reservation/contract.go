package get_reservation

import (
	"context"

	"github.com/ysiverio/reservasBarberia/internal/service/reservations/models"
)

type ReservationsService interface {
	GetByToken(ctx context.Context, token string) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
