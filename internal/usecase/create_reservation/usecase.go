package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ysiverio/reservasBarberia/internal/domain"
	reservationRepo "github.com/ysiverio/reservasBarberia/internal/infra/storage/reservation"
	"github.com/ysiverio/reservasBarberia/internal/service/availability"
)

// UseCase crea una reserva nueva reclamando su turno de forma atómica.
type UseCase struct {
	repo             ReservationRepository
	availability     AvailabilityService
	calendar         CalendarClient
	mailer           Mailer
	txManager        TransactionManager
	rules            *domain.AvailabilityRules
	timeProvider     TimeProvider
	publicBaseURL    string
	calendarRequired bool
	logger           Logger
}

// NewUseCase crea el usecase de creación de reservas. calendar y mailer
// pueden ser nil cuando esas integraciones están deshabilitadas.
func NewUseCase(
	repo ReservationRepository,
	availabilitySvc AvailabilityService,
	calendar CalendarClient,
	mailer Mailer,
	txManager TransactionManager,
	rules *domain.AvailabilityRules,
	publicBaseURL string,
	calendarRequired bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		repo:             repo,
		availability:     availabilitySvc,
		calendar:         calendar,
		mailer:           mailer,
		txManager:        txManager,
		rules:            rules,
		timeProvider:     &RealTimeProvider{},
		publicBaseURL:    publicBaseURL,
		calendarRequired: calendarRequired,
		logger:           logger,
	}
}

// Execute ejecuta el usecase de creación de reserva.
// El turno se reclama dentro de una transacción serializable; el índice
// único parcial del almacén es la garantía final contra doble reserva.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: email=%s, date=%s, time=%s",
		req.CustomerEmail, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Validación de entrada
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. La fecha no puede estar en el pasado (zona horaria del negocio)
	now := uc.timeProvider.Now()
	if err := validateDateNotInPast(req.Date, now, uc.rules.Location); err != nil {
		uc.logger.Warn("CreateReservation: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	reservation := &domain.Reservation{
		ID:            uuid.NewString(),
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.ToLower(strings.TrimSpace(req.CustomerEmail)),
		Date:          req.Date,
		Time:          req.Time,
		Status:        domain.StatusConfirmed,
		CancelToken:   newCancelToken(),
	}

	// 3. Reclamamos el turno en una transacción serializable
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Cupo del cliente para ese día
		customerCount, err := uc.repo.CountActiveByEmailAndDate(txCtx, reservation.CustomerEmail, req.Date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to count customer reservations: %v", err)
			return fmt.Errorf("%w: count customer reservations: %v", ErrInternal, err)
		}
		if customerCount >= uc.rules.MaxReservationsPerCustomerDay {
			uc.logger.Warn("CreateReservation: customer %s already has %d active reservations on %s",
				reservation.CustomerEmail, customerCount, req.Date.Format(domain.DateFormat))
			return ErrCustomerLimitExceeded
		}

		// 3.2. Cupo del día
		dayCount, err := uc.repo.CountActiveByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to count day reservations: %v", err)
			return fmt.Errorf("%w: count day reservations: %v", ErrInternal, err)
		}
		if dayCount >= uc.rules.MaxReservationsPerDay {
			uc.logger.Warn("CreateReservation: day %s at capacity (%d reservations)",
				req.Date.Format(domain.DateFormat), dayCount)
			return ErrDayLimitExceeded
		}

		// 3.3. Recheck de disponibilidad dentro de la transacción
		free, err := uc.availability.IsSlotAvailable(txCtx, req.Date, req.Time)
		if err != nil {
			if errors.Is(err, availability.ErrDependencyUnavailable) {
				uc.logger.Error("CreateReservation: availability check failed: %v", err)
				return ErrCalendarUnavailable
			}
			return fmt.Errorf("%w: availability check: %v", ErrInternal, err)
		}
		if !free {
			uc.logger.Warn("CreateReservation: slot %s %s not available",
				req.Date.Format(domain.DateFormat), req.Time)
			return ErrSlotNotAvailable
		}

		// 3.4. Insert que reclama el turno
		created, err := uc.repo.Create(txCtx, reservation)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateReservation: slot %s %s lost to concurrent reservation",
					req.Date.Format(domain.DateFormat), req.Time)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: create reservation: %v", ErrInternal, err)
		}

		reservation = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: created reservation id=%s", reservation.ID)

	// 4. Espejo de calendario después del commit
	if err := uc.mirrorToCalendar(ctx, reservation); err != nil {
		return nil, err
	}

	// 5. Correo de confirmación (best-effort)
	cancelURL := uc.cancelURL(reservation.CancelToken)
	if uc.mailer != nil {
		if err := uc.mailer.SendConfirmation(reservation, cancelURL); err != nil {
			uc.logger.Warn("CreateReservation: confirmation email failed for id=%s: %v", reservation.ID, err)
		}
	}

	return &Response{
		ID:            reservation.ID,
		CustomerName:  reservation.CustomerName,
		CustomerEmail: reservation.CustomerEmail,
		Date:          reservation.Date,
		Time:          reservation.Time,
		Status:        string(reservation.Status),
		CancelToken:   reservation.CancelToken,
		CancelURL:     cancelURL,
		CreatedAt:     reservation.CreatedAt,
		UpdatedAt:     reservation.UpdatedAt,
	}, nil
}

// mirrorToCalendar crea el evento espejo. Si el espejo es obligatorio y
// falla, la reserva recién creada se revierte con un delete compensatorio
// para no dejar un turno tomado sin evento.
func (uc *UseCase) mirrorToCalendar(ctx context.Context, reservation *domain.Reservation) error {
	if uc.calendar == nil {
		return nil
	}

	eventID, err := uc.calendar.CreateEvent(ctx, reservation)
	if err != nil {
		if uc.calendarRequired {
			uc.logger.Error("CreateReservation: required calendar mirror failed for id=%s, rolling back: %v",
				reservation.ID, err)
			if delErr := uc.repo.Delete(ctx, reservation.ID); delErr != nil {
				uc.logger.Error("CreateReservation: compensating delete failed for id=%s: %v",
					reservation.ID, delErr)
			}
			return ErrCalendarUnavailable
		}
		uc.logger.Warn("CreateReservation: calendar mirror failed for id=%s: %v", reservation.ID, err)
		return nil
	}

	reservation.CalendarEventID = &eventID
	if err := uc.repo.SetCalendarEventID(ctx, reservation.ID, eventID); err != nil {
		uc.logger.Warn("CreateReservation: failed to store calendar event id for id=%s: %v",
			reservation.ID, err)
	}
	return nil
}

func (uc *UseCase) cancelURL(token string) string {
	return fmt.Sprintf("%s/cancelar.html?token=%s", strings.TrimRight(uc.publicBaseURL, "/"), token)
}

// newCancelToken genera el token de autogestión. No es el id de la
// reserva: el token rota en cada reagendamiento.
func newCancelToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}
