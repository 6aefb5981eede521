package cancel_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ysiverio/reservasBarberia/internal/domain"
	reservationRepo "github.com/ysiverio/reservasBarberia/internal/infra/storage/reservation"
)

// UseCase cancela una reserva activa, ya sea por el cliente con su
// cancel token o por un administrador con el id.
type UseCase struct {
	repo         ReservationRepository
	calendar     CalendarClient
	mailer       Mailer
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase crea el usecase de cancelación. calendar y mailer pueden
// ser nil cuando esas integraciones están deshabilitadas.
func NewUseCase(
	repo ReservationRepository,
	calendar CalendarClient,
	mailer Mailer,
	logger Logger,
) *UseCase {
	return &UseCase{
		repo:         repo,
		calendar:     calendar,
		mailer:       mailer,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute ejecuta la cancelación.
// El UPDATE condicional del repositorio es la última barrera: si otra
// transición concurrente ya finalizó la reserva, devuelve
// ErrAlreadyFinalized y el registro no cambia.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelReservation: validation failed: %v", err)
		return nil, err
	}

	// 1. Buscamos la reserva según el flujo
	reservation, err := uc.findReservation(ctx, req)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelReservation: cancelling reservation id=%s status=%s",
		reservation.ID, reservation.Status)

	// 2. Estado terminal no admite otra transición
	if !reservation.CanBeCancelled() {
		uc.logger.Warn("CancelReservation: reservation id=%s already finalized, status=%s",
			reservation.ID, reservation.Status)
		return nil, ErrAlreadyFinalized
	}

	reason := domain.DefaultCancellationReason
	if req.Reason != nil && strings.TrimSpace(*req.Reason) != "" {
		reason = strings.TrimSpace(*req.Reason)
	}
	if len(reason) > domain.MaxReasonLength {
		reason = reason[:domain.MaxReasonLength]
	}

	// 3. Transición condicionada al estado activo
	if err := uc.repo.MarkCancelled(ctx, reservation.ID, reason); err != nil {
		switch {
		case errors.Is(err, reservationRepo.ErrNotActive):
			uc.logger.Warn("CancelReservation: reservation id=%s finalized concurrently", reservation.ID)
			return nil, ErrAlreadyFinalized
		case errors.Is(err, reservationRepo.ErrReservationNotFound):
			return nil, ErrReservationNotFound
		default:
			uc.logger.Error("CancelReservation: repository error for id=%s: %v", reservation.ID, err)
			return nil, fmt.Errorf("%w: mark cancelled: %v", ErrInternal, err)
		}
	}

	cancelledAt := uc.timeProvider.Now()
	reservation.Status = domain.StatusCancelled
	reservation.CancellationReason = &reason
	reservation.CancelledAt = &cancelledAt

	// 4. Limpieza del espejo de calendario (best-effort)
	if uc.calendar != nil && reservation.CalendarEventID != nil {
		if err := uc.calendar.DeleteEvent(ctx, *reservation.CalendarEventID); err != nil {
			uc.logger.Warn("CancelReservation: failed to delete calendar event %s for id=%s: %v",
				*reservation.CalendarEventID, reservation.ID, err)
		}
	}

	// 5. Aviso por correo (best-effort)
	if uc.mailer != nil {
		if err := uc.mailer.SendCancellation(reservation, reason); err != nil {
			uc.logger.Warn("CancelReservation: cancellation email failed for id=%s: %v",
				reservation.ID, err)
		}
	}

	uc.logger.Info("CancelReservation: cancelled reservation id=%s", reservation.ID)

	return &Response{
		ID:                 reservation.ID,
		CustomerName:       reservation.CustomerName,
		CustomerEmail:      reservation.CustomerEmail,
		Date:               reservation.Date,
		Time:               reservation.Time,
		Status:             string(reservation.Status),
		CancellationReason: reason,
		CancelledAt:        cancelledAt,
	}, nil
}

func (uc *UseCase) findReservation(ctx context.Context, req *Request) (*domain.Reservation, error) {
	var (
		reservation *domain.Reservation
		err         error
	)

	if req.Token != "" {
		reservation, err = uc.repo.GetByToken(ctx, req.Token)
	} else {
		reservation, err = uc.repo.GetByID(ctx, req.ID)
	}

	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("CancelReservation: reservation not found")
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("CancelReservation: repository error: %v", err)
		return nil, fmt.Errorf("%w: find reservation: %v", ErrInternal, err)
	}
	return reservation, nil
}

// validateRequest exige exactamente un identificador
func validateRequest(req *Request) error {
	if req.Token == "" && req.ID == "" {
		return fmt.Errorf("%w: token or id is required", ErrInvalidInput)
	}
	if req.Token != "" && req.ID != "" {
		return fmt.Errorf("%w: token and id are mutually exclusive", ErrInvalidInput)
	}
	return nil
}
