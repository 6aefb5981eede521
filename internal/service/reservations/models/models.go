package models

import (
	"time"

	"github.com/ysiverio/reservasBarberia/internal/domain"
)

// ReservationResponse datos de una reserva expuestos hacia afuera.
// Nunca incluye el cancel token de otra reserva: el token sólo viaja
// en la respuesta de creación y en el correo del cliente.
type ReservationResponse struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Date          string `json:"date"` // "2025-06-03"
	Time          string `json:"time"` // "09:30"
	Status        string `json:"status"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601
	RescheduledTo      *string `json:"rescheduledTo,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse lista de reservas de un día
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation convierte el modelo de dominio en DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		CustomerName:       r.CustomerName,
		CustomerEmail:      r.CustomerEmail,
		Date:               r.Date.Format(domain.DateFormat),
		Time:               r.Time.String(),
		Status:             string(r.Status),
		CancellationReason: r.CancellationReason,
		RescheduledTo:      r.RescheduledTo,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainReservationList convierte la lista de dominio en DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	if reservations == nil {
		return &ReservationListResponse{
			Reservations: []ReservationResponse{},
		}
	}

	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, len(reservations)),
	}

	for i, reservation := range reservations {
		if item := FromDomainReservation(reservation); item != nil {
			resp.Reservations[i] = *item
		}
	}

	return resp
}
