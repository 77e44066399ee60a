package models

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Request модели

// DayWindow окно работы одного дня недели, "HH:MM" в 24-часовом формате
type DayWindow struct {
	Open  string `json:"open"`  // "09:00"
	Close string `json:"close"` // "19:00"
}

// UpdateHoursRequest запрос на полную замену недельного расписания точки
// День без записи (nil) считается выходным
type UpdateHoursRequest struct {
	UserID     int64      `json:"userId"`
	BusinessID int64      `json:"businessId"`
	LocationID int64      `json:"locationId"`
	Monday     *DayWindow `json:"monday,omitempty"`
	Tuesday    *DayWindow `json:"tuesday,omitempty"`
	Wednesday  *DayWindow `json:"wednesday,omitempty"`
	Thursday   *DayWindow `json:"thursday,omitempty"`
	Friday     *DayWindow `json:"friday,omitempty"`
	Saturday   *DayWindow `json:"saturday,omitempty"`
	Sunday     *DayWindow `json:"sunday,omitempty"`
}

// windows возвращает окна в порядке дней недели Go (Sunday..Saturday)
func (r *UpdateHoursRequest) windows() [7]*DayWindow {
	return [7]*DayWindow{r.Sunday, r.Monday, r.Tuesday, r.Wednesday, r.Thursday, r.Friday, r.Saturday}
}

// ToDomainHours конвертирует запрос в domain модель с валидацией формата времени
func (r *UpdateHoursRequest) ToDomainHours() (*domain.BusinessHours, error) {
	result := &domain.BusinessHours{}

	for wd, window := range r.windows() {
		if window == nil {
			continue
		}

		open, err := types.NewTimeStringFromString(window.Open)
		if err != nil {
			return nil, err
		}
		close, err := types.NewTimeStringFromString(window.Close)
		if err != nil {
			return nil, err
		}

		result.SetForWeekday(time.Weekday(wd), &domain.DayWindow{Open: open, Close: close})
	}

	return result, nil
}

// Response модели

// HoursResponse ответ с недельным расписанием точки
type HoursResponse struct {
	BusinessID int64      `json:"businessId"`
	LocationID int64      `json:"locationId"`
	Monday     *DayWindow `json:"monday,omitempty"`
	Tuesday    *DayWindow `json:"tuesday,omitempty"`
	Wednesday  *DayWindow `json:"wednesday,omitempty"`
	Thursday   *DayWindow `json:"thursday,omitempty"`
	Friday     *DayWindow `json:"friday,omitempty"`
	Saturday   *DayWindow `json:"saturday,omitempty"`
	Sunday     *DayWindow `json:"sunday,omitempty"`
}

// FromDomainHours конвертирует domain модель в DTO
func FromDomainHours(businessID, locationID int64, h *domain.BusinessHours) *HoursResponse {
	resp := &HoursResponse{
		BusinessID: businessID,
		LocationID: locationID,
	}

	set := func(dst **DayWindow, window *domain.DayWindow) {
		if window == nil {
			return
		}
		*dst = &DayWindow{Open: window.Open.String(), Close: window.Close.String()}
	}

	set(&resp.Monday, h.Monday)
	set(&resp.Tuesday, h.Tuesday)
	set(&resp.Wednesday, h.Wednesday)
	set(&resp.Thursday, h.Thursday)
	set(&resp.Friday, h.Friday)
	set(&resp.Saturday, h.Saturday)
	set(&resp.Sunday, h.Sunday)

	return resp
}
