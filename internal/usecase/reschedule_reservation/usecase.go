package reschedule_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ysiverio/reservasBarberia/internal/domain"
	reservationRepo "github.com/ysiverio/reservasBarberia/internal/infra/storage/reservation"
	"github.com/ysiverio/reservasBarberia/internal/service/availability"
)

// UseCase reagenda una reserva activa: la vigente pasa a RESCHEDULED y
// una reserva nueva reclama el turno pedido, todo en una transacción
// serializable.
type UseCase struct {
	repo          ReservationRepository
	availability  AvailabilityService
	calendar      CalendarClient
	mailer        Mailer
	txManager     TransactionManager
	rules         *domain.AvailabilityRules
	timeProvider  TimeProvider
	publicBaseURL string
	logger        Logger
}

// NewUseCase crea el usecase de reagendamiento. calendar y mailer
// pueden ser nil cuando esas integraciones están deshabilitadas.
func NewUseCase(
	repo ReservationRepository,
	availabilitySvc AvailabilityService,
	calendar CalendarClient,
	mailer Mailer,
	txManager TransactionManager,
	rules *domain.AvailabilityRules,
	publicBaseURL string,
	logger Logger,
) *UseCase {
	return &UseCase{
		repo:          repo,
		availability:  availabilitySvc,
		calendar:      calendar,
		mailer:        mailer,
		txManager:     txManager,
		rules:         rules,
		timeProvider:  &RealTimeProvider{},
		publicBaseURL: publicBaseURL,
		logger:        logger,
	}
}

// Execute ejecuta el reagendamiento.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleReservation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateDateNotInPast(req.Date, now, uc.rules.Location); err != nil {
		uc.logger.Warn("RescheduleReservation: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 1. Buscamos la reserva vigente por su token
	current, err := uc.repo.GetByToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("RescheduleReservation: reservation not found")
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("RescheduleReservation: repository error: %v", err)
		return nil, fmt.Errorf("%w: find reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("RescheduleReservation: rescheduling id=%s to %s %s",
		current.ID, req.Date.Format(domain.DateFormat), req.Time)

	if current.IsFinalized() {
		uc.logger.Warn("RescheduleReservation: reservation id=%s already finalized, status=%s",
			current.ID, current.Status)
		return nil, ErrAlreadyFinalized
	}

	if sameDay(current.Date, req.Date) && current.Time == req.Time {
		return nil, ErrSameSlot
	}

	replacement := &domain.Reservation{
		ID:            uuid.NewString(),
		CustomerName:  current.CustomerName,
		CustomerEmail: current.CustomerEmail,
		Date:          req.Date,
		Time:          req.Time,
		Status:        domain.StatusConfirmed,
		CancelToken:   newCancelToken(),
	}

	// 2. Finalizamos la vieja y reclamamos el turno nuevo atómicamente
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. La reserva vigente pasa a RESCHEDULED primero, así los
		// cupos del día nuevo no la cuentan cuando es el mismo día.
		if err := uc.repo.MarkRescheduled(txCtx, current.ID, replacement.ID); err != nil {
			switch {
			case errors.Is(err, reservationRepo.ErrNotActive):
				uc.logger.Warn("RescheduleReservation: reservation id=%s finalized concurrently", current.ID)
				return ErrAlreadyFinalized
			case errors.Is(err, reservationRepo.ErrReservationNotFound):
				return ErrReservationNotFound
			default:
				uc.logger.Error("RescheduleReservation: repository error for id=%s: %v", current.ID, err)
				return fmt.Errorf("%w: mark rescheduled: %v", ErrInternal, err)
			}
		}

		// 2.2. Cupo del cliente para la nueva fecha
		customerCount, err := uc.repo.CountActiveByEmailAndDate(txCtx, replacement.CustomerEmail, req.Date)
		if err != nil {
			uc.logger.Error("RescheduleReservation: failed to count customer reservations: %v", err)
			return fmt.Errorf("%w: count customer reservations: %v", ErrInternal, err)
		}
		if customerCount >= uc.rules.MaxReservationsPerCustomerDay {
			uc.logger.Warn("RescheduleReservation: customer %s at limit on %s",
				replacement.CustomerEmail, req.Date.Format(domain.DateFormat))
			return ErrCustomerLimitExceeded
		}

		// 2.3. Cupo del día nuevo
		dayCount, err := uc.repo.CountActiveByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("RescheduleReservation: failed to count day reservations: %v", err)
			return fmt.Errorf("%w: count day reservations: %v", ErrInternal, err)
		}
		if dayCount >= uc.rules.MaxReservationsPerDay {
			uc.logger.Warn("RescheduleReservation: day %s at capacity", req.Date.Format(domain.DateFormat))
			return ErrDayLimitExceeded
		}

		// 2.4. Recheck de disponibilidad del turno nuevo
		free, err := uc.availability.IsSlotAvailable(txCtx, req.Date, req.Time)
		if err != nil {
			if errors.Is(err, availability.ErrDependencyUnavailable) {
				uc.logger.Error("RescheduleReservation: availability check failed: %v", err)
				return ErrCalendarUnavailable
			}
			return fmt.Errorf("%w: availability check: %v", ErrInternal, err)
		}
		if !free {
			uc.logger.Warn("RescheduleReservation: slot %s %s not available",
				req.Date.Format(domain.DateFormat), req.Time)
			return ErrSlotNotAvailable
		}

		// 2.5. Insert que reclama el turno nuevo
		created, err := uc.repo.Create(txCtx, replacement)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				uc.logger.Warn("RescheduleReservation: slot %s %s lost to concurrent reservation",
					req.Date.Format(domain.DateFormat), req.Time)
				return ErrSlotTaken
			}
			uc.logger.Error("RescheduleReservation: failed to create replacement: %v", err)
			return fmt.Errorf("%w: create replacement: %v", ErrInternal, err)
		}

		replacement = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleReservation: reservation id=%s superseded by id=%s",
		current.ID, replacement.ID)

	// 3. Movemos el espejo de calendario (best-effort)
	uc.moveCalendarEvent(ctx, current, replacement)

	// 4. Aviso por correo con el link nuevo (best-effort)
	cancelURL := uc.cancelURL(replacement.CancelToken)
	if uc.mailer != nil {
		if err := uc.mailer.SendReschedule(current, replacement, cancelURL); err != nil {
			uc.logger.Warn("RescheduleReservation: reschedule email failed for id=%s: %v",
				replacement.ID, err)
		}
	}

	return &Response{
		PreviousID:    current.ID,
		ID:            replacement.ID,
		CustomerName:  replacement.CustomerName,
		CustomerEmail: replacement.CustomerEmail,
		Date:          replacement.Date,
		Time:          replacement.Time,
		Status:        string(replacement.Status),
		CancelToken:   replacement.CancelToken,
		CancelURL:     cancelURL,
		CreatedAt:     replacement.CreatedAt,
		UpdatedAt:     replacement.UpdatedAt,
	}, nil
}

// moveCalendarEvent borra el evento viejo y crea el nuevo. Ambos pasos
// son best-effort: el estado en el almacén ya es el definitivo.
func (uc *UseCase) moveCalendarEvent(ctx context.Context, current, replacement *domain.Reservation) {
	if uc.calendar == nil {
		return
	}

	if current.CalendarEventID != nil {
		if err := uc.calendar.DeleteEvent(ctx, *current.CalendarEventID); err != nil {
			uc.logger.Warn("RescheduleReservation: failed to delete calendar event %s: %v",
				*current.CalendarEventID, err)
		}
	}

	eventID, err := uc.calendar.CreateEvent(ctx, replacement)
	if err != nil {
		uc.logger.Warn("RescheduleReservation: calendar mirror failed for id=%s: %v",
			replacement.ID, err)
		return
	}

	replacement.CalendarEventID = &eventID
	if err := uc.repo.SetCalendarEventID(ctx, replacement.ID, eventID); err != nil {
		uc.logger.Warn("RescheduleReservation: failed to store calendar event id for id=%s: %v",
			replacement.ID, err)
	}
}

func (uc *UseCase) cancelURL(token string) string {
	return fmt.Sprintf("%s/cancelar.html?token=%s", strings.TrimRight(uc.publicBaseURL, "/"), token)
}

// newCancelToken genera el token nuevo. El token anterior nunca se
// reutiliza.
func newCancelToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

// validateRequest valida los datos de entrada
func validateRequest(req *Request) error {
	if req.Token == "" {
		return fmt.Errorf("%w: token is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}
	return nil
}

// validateDateNotInPast verifica la nueva fecha contra el día de hoy en
// la zona horaria del negocio
func validateDateNotInPast(date, now time.Time, loc *time.Location) error {
	localNow := now.In(loc)
	today := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, loc)
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	if dateOnly.Before(today) {
		return ErrDateInPast
	}
	return nil
}

// sameDay compara solo la fecha calendario
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
