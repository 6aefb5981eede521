package domain

import (
	"time"

	"github.com/ysiverio/reservasBarberia/pkg/types"
)

// ReservationStatus estado de una reserva
type ReservationStatus string

const (
	StatusPending     ReservationStatus = "PENDING"
	StatusConfirmed   ReservationStatus = "CONFIRMED"
	StatusCancelled   ReservationStatus = "CANCELLED"
	StatusRescheduled ReservationStatus = "RESCHEDULED"
)

// Reservation represents one appointment at the barbershop.
//
// A reservation is created CONFIRMED, and only leaves that state through
// a terminal transition: CANCELLED (by the customer via cancel token, or
// by an admin) or RESCHEDULED (superseded by a new record pointed to by
// RescheduledTo). Terminal records never transition again.
type Reservation struct {
	ID            string
	CustomerName  string
	CustomerEmail string

	// Date is the business-local calendar date; Time is the slot start
	// produced by the slot grid for that date.
	Date time.Time
	Time types.TimeString

	Status ReservationStatus

	// CalendarEventID is a weak back-reference to the mirrored calendar
	// event, when the mirror is enabled.
	CalendarEventID *string

	// CancelToken authorizes unauthenticated self-service cancellation
	// and rescheduling. Rotated (never reused) on reschedule.
	CancelToken string

	CancellationReason *string
	CancelledAt        *time.Time

	// RescheduledTo holds the id of the record that superseded this one.
	RescheduledTo *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the reservation still holds its slot.
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsFinalized reports whether the reservation reached a terminal state.
func (r *Reservation) IsFinalized() bool {
	return r.Status == StatusCancelled || r.Status == StatusRescheduled
}

// CanBeCancelled reports whether a cancel transition is allowed.
func (r *Reservation) CanBeCancelled() bool {
	return r.IsActive()
}

// ActiveStatuses estados que ocupan un slot (cuentan para los cupos)
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}

// TerminalStatuses estados finales
var TerminalStatuses = []ReservationStatus{
	StatusCancelled,
	StatusRescheduled,
}
