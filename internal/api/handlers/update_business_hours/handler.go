package update_business_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	"github.com/m04kA/SMC-CalendarService/internal/service/hours"
)

const (
	msgInvalidBusinessID  = "некорректный ID бизнеса"
	msgInvalidLocationID  = "некорректный ID точки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidWindow      = "время открытия должно быть раньше времени закрытия"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgBusinessNotFound   = "бизнес не найден"
	msgLocationNotFound   = "точка не найдена"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service HoursService
	logger  Logger
}

func NewHandler(service HoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/businesses/{businessId}/locations/{locationId}/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /businesses/{id}/locations/{id}/hours - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /businesses/{id}/locations/{id}/hours - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /businesses/{id}/locations/{id}/hours - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /businesses/{id}/locations/{id}/hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Обновляем расписание (сервис сам проверит права менеджера)
	result, err := h.service.Update(r.Context(), req.ToServiceRequest(businessID, locationID, userID))
	if err != nil {
		switch {
		case errors.Is(err, hours.ErrBusinessNotFound):
			h.logger.Warn("PUT /businesses/{id}/locations/{id}/hours - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, hours.ErrLocationNotFound):
			h.logger.Warn("PUT /businesses/{id}/locations/{id}/hours - Location not found: business_id=%d, location_id=%d",
				businessID, locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, hours.ErrAccessDenied):
			h.logger.Warn("PUT /businesses/{id}/locations/{id}/hours - Access denied: business_id=%d, user_id=%d",
				businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, hours.ErrInvalidWindow):
			h.logger.Warn("PUT /businesses/{id}/locations/{id}/hours - Invalid window: business_id=%d, location_id=%d: %v",
				businessID, locationID, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, hours.ErrInvalidInput):
			h.logger.Warn("PUT /businesses/{id}/locations/{id}/hours - Invalid input: business_id=%d, location_id=%d: %v",
				businessID, locationID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /businesses/{id}/locations/{id}/hours - Failed to update hours: business_id=%d, location_id=%d, error=%v",
				businessID, locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /businesses/{id}/locations/{id}/hours - Hours updated: business_id=%d, location_id=%d, user_id=%d",
		businessID, locationID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
