package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/ysiverio/reservasBarberia/internal/api/handlers"
	"github.com/ysiverio/reservasBarberia/internal/domain"
	"github.com/ysiverio/reservasBarberia/internal/service/availability"
)

const (
	msgMissingDate        = "la fecha es obligatoria"
	msgInvalidDate        = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgServiceUnavailable = "no se pudo consultar la disponibilidad, intentá de nuevo más tarde"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slots, err := h.service.GetAvailability(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrDependencyUnavailable):
			h.logger.Error("GET /availability - Dependency unavailable: date=%s, error=%v", dateStr, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgServiceUnavailable)
		default:
			h.logger.Error("GET /availability - Failed to compute availability: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Availability computed: date=%s, slots_count=%d", dateStr, len(slots))
	handlers.RespondJSON(w, http.StatusOK, FromSlots(dateStr, slots))
}
