package move_appointment

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	moveAppointment "github.com/m04kA/SMC-CalendarService/internal/usecase/move_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "запись не найдена, обновите страницу"
	msgCancelled            = "отменённую запись нельзя перенести"
	msgOutsideHours         = "выбранный слот вне рабочих часов"
	msgConflict             = "слот занят, выберите другое время"
)

type Handler struct {
	useCase MoveAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase MoveAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем appointmentId из URL
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/schedule - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req MoveAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID, userID)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/schedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *moveAppointment.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("PATCH /appointments/{id}/schedule - Conflict: appointment_id=%d, user_id=%d: %v",
				appointmentID, userID, err)
			handlers.RespondError(w, http.StatusConflict, conflictMessage(conflictErr))

		case errors.Is(err, moveAppointment.ErrScheduleConflict):
			h.logger.Warn("PATCH /appointments/{id}/schedule - Conflict: appointment_id=%d, user_id=%d",
				appointmentID, userID)
			handlers.RespondError(w, http.StatusConflict, msgConflict)

		case errors.Is(err, moveAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/schedule - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, moveAppointment.ErrAppointmentCancelled):
			h.logger.Warn("PATCH /appointments/{id}/schedule - Appointment cancelled: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgCancelled)

		case errors.Is(err, moveAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("PATCH /appointments/{id}/schedule - Outside business hours: appointment_id=%d, time=%s",
				appointmentID, req.NewStartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, moveAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/schedule - Invalid input: appointment_id=%d: %v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidDateOrTime)

		default:
			h.logger.Error("PATCH /appointments/{id}/schedule - Failed to move appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/schedule - Appointment moved: appointment_id=%d, user_id=%d, date=%s, time=%s",
		appointmentID, userID, result.Date, result.StartTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// conflictMessage строит сообщение с деталями блокирующей записи,
// например: "слот занят: Alex, 10:00 AM (60 мин)"
func conflictMessage(err *moveAppointment.ConflictError) string {
	if err.Conflicting == nil {
		return msgConflict
	}
	return fmt.Sprintf("слот занят: %s, %s (%d мин)",
		err.Conflicting.StaffName, err.Conflicting.StartTime.Clock12(), err.Conflicting.DurationMinutes)
}
