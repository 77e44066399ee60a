package get_business_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/hours"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidLocationID = "некорректный ID точки"
	msgBusinessNotFound  = "бизнес не найден"
	msgLocationNotFound  = "точка не найдена"
	msgHoursNotFound     = "расписание работы не задано"
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

// Handle GET /api/v1/businesses/{businessId}/locations/{locationId}/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/locations/{id}/hours - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/locations/{id}/hours - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	result, err := h.service.GetForLocation(r.Context(), businessID, locationID)
	if err != nil {
		switch {
		case errors.Is(err, hours.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id}/locations/{id}/hours - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, hours.ErrLocationNotFound):
			h.logger.Warn("GET /businesses/{id}/locations/{id}/hours - Location not found: business_id=%d, location_id=%d",
				businessID, locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, hours.ErrHoursNotFound):
			h.logger.Warn("GET /businesses/{id}/locations/{id}/hours - Hours not found: business_id=%d, location_id=%d",
				businessID, locationID)
			handlers.RespondNotFound(w, msgHoursNotFound)

		default:
			h.logger.Error("GET /businesses/{id}/locations/{id}/hours - Failed to get hours: business_id=%d, location_id=%d, error=%v",
				businessID, locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/locations/{id}/hours - Hours retrieved: business_id=%d, location_id=%d",
		businessID, locationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
