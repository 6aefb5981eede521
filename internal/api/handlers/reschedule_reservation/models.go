package reschedule_reservation

import (
	"time"

	"github.com/ysiverio/reservasBarberia/internal/domain"
	rescheduleReservation "github.com/ysiverio/reservasBarberia/internal/usecase/reschedule_reservation"
	"github.com/ysiverio/reservasBarberia/pkg/types"
)

// RescheduleReservationRequest HTTP request model
type RescheduleReservationRequest struct {
	Token string `json:"token"`
	Date  string `json:"date"` // "2025-06-10"
	Time  string `json:"time"` // "10:30"
}

// RescheduledReservationResponse HTTP response model.
// Devuelve el token nuevo: el anterior quedó inutilizado.
type RescheduledReservationResponse struct {
	PreviousID  string `json:"previousId"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	CancelToken string `json:"cancelToken"`
	CancelURL   string `json:"cancelUrl"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest convierte el HTTP request en modelo de use case
func (r *RescheduleReservationRequest) ToUseCaseRequest() (*rescheduleReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &rescheduleReservation.Request{
		Token: r.Token,
		Date:  date,
		Time:  slot,
	}, nil
}

// FromUseCaseResponse convierte la respuesta del use case en HTTP response
func FromUseCaseResponse(resp *rescheduleReservation.Response) *RescheduledReservationResponse {
	return &RescheduledReservationResponse{
		PreviousID:  resp.PreviousID,
		ID:          resp.ID,
		Name:        resp.CustomerName,
		Email:       resp.CustomerEmail,
		Date:        resp.Date.Format(domain.DateFormat),
		Time:        resp.Time.String(),
		Status:      resp.Status,
		CancelToken: resp.CancelToken,
		CancelURL:   resp.CancelURL,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
