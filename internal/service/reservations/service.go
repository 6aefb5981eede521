package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	reservationRepo "github.com/ysiverio/reservasBarberia/internal/infra/storage/reservation"
	"github.com/ysiverio/reservasBarberia/internal/service/reservations/models"
)

// Service consultas de lectura sobre reservas
type Service struct {
	repo   ReservationRepository
	logger Logger
}

// NewService crea el servicio de consultas de reservas
func NewService(repo ReservationRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByToken obtiene una reserva a partir de su cancel token.
// Es la consulta detrás de la página de gestión del cliente.
func (s *Service) GetByToken(ctx context.Context, token string) (*models.ReservationResponse, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", ErrInvalidInput)
	}

	reservation, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByToken: no reservation for token")
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByToken: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByToken - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// ListByDate obtiene todas las reservas de un día, incluidas las
// canceladas y reagendadas. Es la vista del panel de administración.
func (s *Service) ListByDate(ctx context.Context, date time.Time) (*models.ReservationListResponse, error) {
	s.logger.Info("ListByDate: fetching reservations for %s", date.Format("2006-01-02"))

	reservations, err := s.repo.GetByDateRange(ctx, date, date, false)
	if err != nil {
		s.logger.Error("ListByDate: repository error for %s: %v", date.Format("2006-01-02"), err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDate: fetched %d reservations for %s", len(reservations), date.Format("2006-01-02"))
	return models.FromDomainReservationList(reservations), nil
}
