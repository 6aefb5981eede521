package admin_cancel_reservation

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ysiverio/reservasBarberia/internal/api/handlers"
	cancelReservation "github.com/ysiverio/reservasBarberia/internal/usecase/cancel_reservation"
)

const (
	msgInvalidRequestBody  = "cuerpo de la solicitud inválido"
	msgMissingID           = "el id de la reserva es obligatorio"
	msgReservationNotFound = "reserva no encontrada"
	msgAlreadyFinalized    = "la reserva ya fue cancelada o reagendada"
)

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/reservations/{id}/cancel
// El cuerpo es opcional; puede traer solo el motivo.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		h.logger.Warn("PATCH /admin/reservations/{id}/cancel - Missing id")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	var req AdminCancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /admin/reservations/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(id))
	if err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /admin/reservations/{id}/cancel - Reservation not found: id=%s", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, cancelReservation.ErrAlreadyFinalized):
			h.logger.Warn("PATCH /admin/reservations/{id}/cancel - Reservation already finalized: id=%s", id)
			handlers.RespondConflict(w, msgAlreadyFinalized)

		case errors.Is(err, cancelReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /admin/reservations/{id}/cancel - Failed to cancel reservation: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/reservations/{id}/cancel - Reservation cancelled by admin: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
