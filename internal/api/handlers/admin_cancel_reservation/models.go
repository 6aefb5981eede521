package admin_cancel_reservation

import (
	"time"

	"github.com/ysiverio/reservasBarberia/internal/domain"
	cancelReservation "github.com/ysiverio/reservasBarberia/internal/usecase/cancel_reservation"
)

// AdminCancelRequest HTTP request model
type AdminCancelRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// CancelledReservationResponse HTTP response model
type CancelledReservationResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	Reason      string `json:"reason"`
	CancelledAt string `json:"cancelledAt"`
}

// ToUseCaseRequest convierte el HTTP request en modelo de use case
func (r *AdminCancelRequest) ToUseCaseRequest(id string) *cancelReservation.Request {
	return &cancelReservation.Request{
		ID:     id,
		Reason: r.Reason,
	}
}

// FromUseCaseResponse convierte la respuesta del use case en HTTP response
func FromUseCaseResponse(resp *cancelReservation.Response) *CancelledReservationResponse {
	return &CancelledReservationResponse{
		ID:          resp.ID,
		Name:        resp.CustomerName,
		Email:       resp.CustomerEmail,
		Date:        resp.Date.Format(domain.DateFormat),
		Time:        resp.Time.String(),
		Status:      resp.Status,
		Reason:      resp.CancellationReason,
		CancelledAt: resp.CancelledAt.Format(time.RFC3339),
	}
}
