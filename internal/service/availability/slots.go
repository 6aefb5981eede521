package availability

import (
	"time"

	"github.com/ysiverio/reservasBarberia/internal/domain"
	"github.com/ysiverio/reservasBarberia/internal/integrations/googlecalendar"
	"github.com/ysiverio/reservasBarberia/pkg/types"
)

// generateSlots construye la grilla del día: arranques cada
// durationMinutes desde workStart, mientras el turno completo entre en
// [workStart, workEnd). Devuelve una grilla vacía si la configuración
// no deja lugar a ningún turno.
func generateSlots(workStart, workEnd types.TimeString, durationMinutes int) []types.TimeString {
	if durationMinutes <= 0 {
		return []types.TimeString{}
	}

	startMin, err := workStart.Minutes()
	if err != nil {
		return []types.TimeString{}
	}
	endMin, err := workEnd.Minutes()
	if err != nil {
		return []types.TimeString{}
	}
	if endMin <= startMin {
		return []types.TimeString{}
	}

	slots := make([]types.TimeString, 0, (endMin-startMin)/durationMinutes)
	current := workStart
	for {
		slotEnd, err := current.AddMinutes(durationMinutes)
		if err != nil {
			break
		}
		endOfSlot, err := slotEnd.Minutes()
		if err != nil || endOfSlot > endMin {
			break
		}
		slots = append(slots, current)
		if endOfSlot == endMin {
			break
		}
		current = slotEnd
	}
	return slots
}

// markReservedSlots agrega al set de ocupados la hora de cada reserva
// activa del día.
func markReservedSlots(occupied map[types.TimeString]struct{}, reservations []*domain.Reservation) {
	for _, res := range reservations {
		occupied[res.Time] = struct{}{}
	}
}

// markBusySlots marca como ocupado todo turno de la grilla que se
// solape con un intervalo ocupado del calendario. Un solape parcial
// alcanza; tocar el borde (fin == inicio) no cuenta como solape.
func markBusySlots(
	occupied map[types.TimeString]struct{},
	grid []types.TimeString,
	intervals []googlecalendar.BusyInterval,
	date time.Time,
	durationMinutes int,
	loc *time.Location,
) {
	for _, slot := range grid {
		slotStart, err := slot.At(date, loc)
		if err != nil {
			continue
		}
		slotEnd := slotStart.Add(time.Duration(durationMinutes) * time.Minute)

		for _, busy := range intervals {
			if busy.Start.Before(slotEnd) && busy.End.After(slotStart) {
				occupied[slot] = struct{}{}
				break
			}
		}
	}
}
