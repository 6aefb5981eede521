package reschedule_reservation

import (
	"errors"
	"net/http"

	"github.com/ysiverio/reservasBarberia/internal/api/handlers"
	rescheduleReservation "github.com/ysiverio/reservasBarberia/internal/usecase/reschedule_reservation"
)

const (
	msgInvalidRequestBody   = "cuerpo de la solicitud inválido"
	msgInvalidDateOrTime    = "fecha u hora inválida, se espera YYYY-MM-DD y HH:MM"
	msgMissingToken         = "el token es obligatorio"
	msgReservationNotFound  = "reserva no encontrada"
	msgAlreadyFinalized     = "la reserva ya fue cancelada o reagendada"
	msgDateInPast           = "la fecha ya pasó"
	msgSameSlot             = "el nuevo turno es el mismo que el actual"
	msgSlotNotAvailable     = "el turno elegido no está disponible"
	msgSlotTaken            = "el turno acaba de ser tomado por otra persona"
	msgCustomerLimitReached = "ya tenés el máximo de reservas para ese día"
	msgDayLimitReached      = "no quedan turnos disponibles para ese día"
	msgCalendarUnavailable  = "no pudimos reagendar la reserva, intentá de nuevo más tarde"
)

type Handler struct {
	useCase RescheduleReservationUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RescheduleReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Token == "" {
		h.logger.Warn("POST /reservations/reschedule - Missing token")
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleReservation.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/reschedule - Reservation not found")
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, rescheduleReservation.ErrAlreadyFinalized):
			h.logger.Warn("POST /reservations/reschedule - Reservation already finalized")
			handlers.RespondConflict(w, msgAlreadyFinalized)

		case errors.Is(err, rescheduleReservation.ErrDateInPast):
			h.logger.Warn("POST /reservations/reschedule - Date in past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, rescheduleReservation.ErrSameSlot):
			h.logger.Warn("POST /reservations/reschedule - Same slot requested: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgSameSlot)

		case errors.Is(err, rescheduleReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations/reschedule - Slot not available: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, rescheduleReservation.ErrSlotTaken):
			h.logger.Warn("POST /reservations/reschedule - Slot taken concurrently: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, rescheduleReservation.ErrCustomerLimitExceeded):
			h.logger.Warn("POST /reservations/reschedule - Customer limit reached: date=%s", req.Date)
			handlers.RespondConflict(w, msgCustomerLimitReached)

		case errors.Is(err, rescheduleReservation.ErrDayLimitExceeded):
			h.logger.Warn("POST /reservations/reschedule - Day limit reached: date=%s", req.Date)
			handlers.RespondConflict(w, msgDayLimitReached)

		case errors.Is(err, rescheduleReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, rescheduleReservation.ErrCalendarUnavailable):
			h.logger.Error("POST /reservations/reschedule - Calendar unavailable: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCalendarUnavailable)

		default:
			h.logger.Error("POST /reservations/reschedule - Failed to reschedule reservation: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/reschedule - Reservation rescheduled: previous_id=%s, id=%s",
		result.PreviousID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
