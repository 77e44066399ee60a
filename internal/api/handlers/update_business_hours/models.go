package update_business_hours

import "github.com/m04kA/SMC-CalendarService/internal/service/hours/models"

// UpdateHoursRequest HTTP request model. День без записи считается выходным.
type UpdateHoursRequest struct {
	Monday    *models.DayWindow `json:"monday,omitempty"`
	Tuesday   *models.DayWindow `json:"tuesday,omitempty"`
	Wednesday *models.DayWindow `json:"wednesday,omitempty"`
	Thursday  *models.DayWindow `json:"thursday,omitempty"`
	Friday    *models.DayWindow `json:"friday,omitempty"`
	Saturday  *models.DayWindow `json:"saturday,omitempty"`
	Sunday    *models.DayWindow `json:"sunday,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateHoursRequest) ToServiceRequest(businessID, locationID, userID int64) *models.UpdateHoursRequest {
	return &models.UpdateHoursRequest{
		UserID:     userID,
		BusinessID: businessID,
		LocationID: locationID,
		Monday:     r.Monday,
		Tuesday:    r.Tuesday,
		Wednesday:  r.Wednesday,
		Thursday:   r.Thursday,
		Friday:     r.Friday,
		Saturday:   r.Saturday,
		Sunday:     r.Sunday,
	}
}
