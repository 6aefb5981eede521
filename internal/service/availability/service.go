package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/ysiverio/reservasBarberia/internal/domain"
	"github.com/ysiverio/reservasBarberia/pkg/types"
)

// Service calcula los turnos disponibles de un día combinando la
// grilla de horario laboral, las reservas activas del almacén y, si el
// espejo está habilitado, los intervalos ocupados del calendario.
type Service struct {
	repo     ReservationRepository
	calendar CalendarClient
	rules    *domain.AvailabilityRules
	logger   Logger
}

// NewService crea el servicio de disponibilidad. calendar puede ser
// nil cuando el espejo de calendario está deshabilitado.
func NewService(repo ReservationRepository, calendar CalendarClient, rules *domain.AvailabilityRules, logger Logger) *Service {
	return &Service{
		repo:     repo,
		calendar: calendar,
		rules:    rules,
		logger:   logger,
	}
}

// GetAvailability devuelve los turnos libres del día, ordenados y
// recortados a la capacidad restante. Un día no laborable o con el
// cupo lleno devuelve la lista vacía, nunca nil ni error.
func (s *Service) GetAvailability(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	if !s.rules.IsWorkDay(date) {
		return []types.TimeString{}, nil
	}

	activeCount, err := s.repo.CountActiveByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: count active reservations: %v", ErrDependencyUnavailable, err)
	}
	if activeCount >= s.rules.MaxReservationsPerDay {
		s.logger.Info("GetAvailability: day %s at capacity (%d reservations)",
			date.Format(domain.DateFormat), activeCount)
		return []types.TimeString{}, nil
	}

	grid := generateSlots(s.rules.WorkStart, s.rules.WorkEnd, s.rules.SlotDurationMinutes)
	if len(grid) == 0 {
		return []types.TimeString{}, nil
	}

	occupied, err := s.resolveOccupied(ctx, date, grid)
	if err != nil {
		return nil, err
	}

	free := make([]types.TimeString, 0, len(grid))
	for _, slot := range grid {
		if _, taken := occupied[slot]; !taken {
			free = append(free, slot)
		}
	}

	// La capacidad diaria limita cuántos turnos más se pueden tomar,
	// aunque queden más huecos libres en la grilla.
	remaining := s.rules.MaxReservationsPerDay - activeCount
	if len(free) > remaining {
		free = free[:remaining]
	}

	return free, nil
}

// IsSlotAvailable indica si un turno puntual sigue libre. Se usa como
// recheck dentro del flujo de creación y reagendamiento.
func (s *Service) IsSlotAvailable(ctx context.Context, date time.Time, slot types.TimeString) (bool, error) {
	free, err := s.GetAvailability(ctx, date)
	if err != nil {
		return false, err
	}
	for _, candidate := range free {
		if candidate == slot {
			return true, nil
		}
	}
	return false, nil
}

// resolveOccupied junta la ocupación de ambas fuentes. El almacén es
// obligatorio; el calendario sólo participa cuando el espejo está
// habilitado, y su caída propaga error en vez de fingir el día libre.
func (s *Service) resolveOccupied(ctx context.Context, date time.Time, grid []types.TimeString) (map[types.TimeString]struct{}, error) {
	occupied := make(map[types.TimeString]struct{}, len(grid))

	reservations, err := s.repo.GetActiveByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: list active reservations: %v", ErrDependencyUnavailable, err)
	}
	markReservedSlots(occupied, reservations)

	if s.calendar != nil {
		intervals, err := s.calendar.ListBusyIntervals(ctx, date)
		if err != nil {
			s.logger.Error("resolveOccupied: calendar lookup failed for %s: %v",
				date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: calendar busy intervals: %v", ErrDependencyUnavailable, err)
		}
		markBusySlots(occupied, grid, intervals, date, s.rules.SlotDurationMinutes, s.rules.Location)
	}

	return occupied, nil
}
