package list_reservations

import (
	"net/http"
	"time"

	"github.com/ysiverio/reservasBarberia/internal/api/handlers"
	"github.com/ysiverio/reservasBarberia/internal/domain"
)

const (
	msgMissingDate = "la fecha es obligatoria"
	msgInvalidDate = "formato de fecha inválido, se espera YYYY-MM-DD"
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

// Handle GET /api/v1/admin/reservations
// Query params: date (required, YYYY-MM-DD)
// Devuelve todas las reservas del día, incluidas las finalizadas.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /admin/reservations - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /admin/reservations - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListByDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /admin/reservations - Failed to list reservations: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/reservations - Reservations listed: date=%s, count=%d",
		dateStr, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
