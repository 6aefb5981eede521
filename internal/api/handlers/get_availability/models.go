package get_availability

import "github.com/ysiverio/reservasBarberia/pkg/types"

// AvailabilityResponse turnos libres de un día
type AvailabilityResponse struct {
	Date  string   `json:"date"`  // "2025-06-03"
	Slots []string `json:"slots"` // ["09:00", "09:30", ...]
}

// FromSlots convierte la lista de turnos en HTTP response
func FromSlots(date string, slots []types.TimeString) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		Date:  date,
		Slots: make([]string, len(slots)),
	}
	for i, slot := range slots {
		resp.Slots[i] = slot.String()
	}
	return resp
}
