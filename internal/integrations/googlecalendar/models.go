package googlecalendar

import "time"

// BusyInterval is an occupied interval reported by the external calendar,
// in absolute time. The availability service expands it onto the slot grid.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}
