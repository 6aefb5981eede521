package create_reservation

import (
	"time"

	"github.com/ysiverio/reservasBarberia/internal/domain"
	createReservation "github.com/ysiverio/reservasBarberia/internal/usecase/create_reservation"
	"github.com/ysiverio/reservasBarberia/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  string `json:"date"` // "2025-06-03"
	Time  string `json:"time"` // "09:30"
}

// ReservationResponse HTTP response model.
// Incluye el cancel token: es el único endpoint que lo expone.
type ReservationResponse struct {
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
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		CustomerName:  r.Name,
		CustomerEmail: r.Email,
		Date:          date,
		Time:          slot,
	}, nil
}

// FromUseCaseResponse convierte la respuesta del use case en HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
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
