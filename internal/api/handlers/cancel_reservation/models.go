package cancel_reservation

import (
	"time"

	"github.com/ysiverio/reservasBarberia/internal/domain"
	cancelReservation "github.com/ysiverio/reservasBarberia/internal/usecase/cancel_reservation"
)

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	Token  string  `json:"token"`
	Reason *string `json:"reason,omitempty"`
}

// CancelledReservationResponse HTTP response model
type CancelledReservationResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	Reason      string `json:"reason"`
	CancelledAt string `json:"cancelledAt"`
}

// ToUseCaseRequest convierte el HTTP request en modelo de use case
func (r *CancelReservationRequest) ToUseCaseRequest() *cancelReservation.Request {
	return &cancelReservation.Request{
		Token:  r.Token,
		Reason: r.Reason,
	}
}

// FromUseCaseResponse convierte la respuesta del use case en HTTP response
func FromUseCaseResponse(resp *cancelReservation.Response) *CancelledReservationResponse {
	return &CancelledReservationResponse{
		ID:          resp.ID,
		Name:        resp.CustomerName,
		Date:        resp.Date.Format(domain.DateFormat),
		Time:        resp.Time.String(),
		Status:      resp.Status,
		Reason:      resp.CancellationReason,
		CancelledAt: resp.CancelledAt.Format(time.RFC3339),
	}
}
