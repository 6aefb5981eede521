package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/ysiverio/reservasBarberia/internal/api/handlers"
	cancelReservation "github.com/ysiverio/reservasBarberia/internal/usecase/cancel_reservation"
)

const (
	msgInvalidRequestBody  = "cuerpo de la solicitud inválido"
	msgMissingToken        = "el token es obligatorio"
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

// Handle POST /api/v1/reservations/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Token == "" {
		h.logger.Warn("POST /reservations/cancel - Missing token")
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/cancel - Reservation not found")
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, cancelReservation.ErrAlreadyFinalized):
			h.logger.Warn("POST /reservations/cancel - Reservation already finalized")
			handlers.RespondConflict(w, msgAlreadyFinalized)

		case errors.Is(err, cancelReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reservations/cancel - Failed to cancel reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/cancel - Reservation cancelled: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
