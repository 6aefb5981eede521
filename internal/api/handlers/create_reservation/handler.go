package create_reservation

import (
	"errors"
	"net/http"

	"github.com/ysiverio/reservasBarberia/internal/api/handlers"
	createReservation "github.com/ysiverio/reservasBarberia/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody   = "cuerpo de la solicitud inválido"
	msgInvalidDateOrTime    = "fecha u hora inválida, se espera YYYY-MM-DD y HH:MM"
	msgInvalidInput         = "datos de la reserva inválidos"
	msgInvalidEmail         = "el email no es válido"
	msgDateInPast           = "la fecha ya pasó"
	msgSlotNotAvailable     = "el turno elegido no está disponible"
	msgSlotTaken            = "el turno acaba de ser tomado por otra persona"
	msgCustomerLimitReached = "ya tenés el máximo de reservas para ese día"
	msgDayLimitReached      = "no quedan turnos disponibles para ese día"
	msgCalendarUnavailable  = "no pudimos confirmar la reserva, intentá de nuevo más tarde"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidEmail):
			h.logger.Warn("POST /reservations - Invalid email")
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrDateInPast):
			h.logger.Warn("POST /reservations - Date in past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /reservations - Slot taken concurrently: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createReservation.ErrCustomerLimitExceeded):
			h.logger.Warn("POST /reservations - Customer limit reached: date=%s", req.Date)
			handlers.RespondConflict(w, msgCustomerLimitReached)

		case errors.Is(err, createReservation.ErrDayLimitExceeded):
			h.logger.Warn("POST /reservations - Day limit reached: date=%s", req.Date)
			handlers.RespondConflict(w, msgDayLimitReached)

		case errors.Is(err, createReservation.ErrCalendarUnavailable):
			h.logger.Error("POST /reservations - Calendar unavailable: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCalendarUnavailable)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%s, date=%s, time=%s",
		result.ID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
