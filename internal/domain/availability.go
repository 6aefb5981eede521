package domain

import (
	"time"

	"github.com/ysiverio/reservasBarberia/pkg/types"
)

// AvailabilityRules is the business-hours configuration, loaded once at
// startup and read-only afterwards. All slot math happens in Location's
// wall-clock time.
type AvailabilityRules struct {
	WorkDays map[time.Weekday]bool
	Holidays map[string]bool // keys in DateFormat

	WorkStart types.TimeString
	WorkEnd   types.TimeString

	SlotDurationMinutes int

	MaxReservationsPerDay         int
	MaxReservationsPerCustomerDay int

	Location *time.Location
}

// IsWorkDay reports whether date falls on an open weekday that is not a
// holiday. Day-level rule, checked before any per-slot work.
func (r *AvailabilityRules) IsWorkDay(date time.Time) bool {
	if !r.WorkDays[date.Weekday()] {
		return false
	}
	return !r.Holidays[date.Format(DateFormat)]
}

// Today returns the current business-local date truncated to midnight.
func (r *AvailabilityRules) Today(now time.Time) time.Time {
	local := now.In(r.Location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, r.Location)
}
