package get_availability

import (
	"context"
	"time"

	"github.com/ysiverio/reservasBarberia/pkg/types"
)

type AvailabilityService interface {
	GetAvailability(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
