package get_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ysiverio/reservasBarberia/internal/api/handlers"
	"github.com/ysiverio/reservasBarberia/internal/service/reservations"
)

const (
	msgMissingToken        = "el token es obligatorio"
	msgReservationNotFound = "reserva no encontrada"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/{token}
// Es la consulta de la página de autogestión del cliente.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if token == "" {
		h.logger.Warn("GET /reservations/{token} - Missing token")
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	result, err := h.service.GetByToken(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{token} - Reservation not found")
			handlers.RespondNotFound(w, msgReservationNotFound)
		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingToken)
		default:
			h.logger.Error("GET /reservations/{token} - Failed to get reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{token} - Reservation retrieved: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
