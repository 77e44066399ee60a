package move_appointment

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	moveAppointment "github.com/m04kA/SMC-CalendarService/internal/usecase/move_appointment"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// MoveAppointmentRequest HTTP request model
type MoveAppointmentRequest struct {
	NewDate          string `json:"newDate"`      // "2025-10-15"
	NewStartTime     string `json:"newStartTime"` // "10:00"
	ActiveLocationID *int64 `json:"activeLocationId,omitempty"`
}

// MoveAppointmentResponse HTTP response model
type MoveAppointmentResponse struct {
	AppointmentID int64  `json:"appointmentId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	StartTime12h  string `json:"startTime12h"`
	Version       int64  `json:"version"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *MoveAppointmentRequest) ToUseCaseRequest(appointmentID, userID int64) (*moveAppointment.Request, error) {
	newDate, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, err
	}

	// Время принимается и в 24-часовом, и в 12-часовом формате:
	// фронт календаря оперирует подписями вида "10:00 AM"
	newStartTime, err := types.NewTimeStringFlexible(r.NewStartTime)
	if err != nil {
		return nil, err
	}

	return &moveAppointment.Request{
		UserID:           userID,
		AppointmentID:    appointmentID,
		NewDate:          newDate,
		NewStartTime:     newStartTime,
		ActiveLocationID: r.ActiveLocationID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *moveAppointment.Response) *MoveAppointmentResponse {
	return &MoveAppointmentResponse{
		AppointmentID: resp.AppointmentID,
		Date:          resp.Date,
		StartTime:     resp.StartTime,
		StartTime12h:  resp.StartTime12h,
		Version:       resp.Version,
	}
}
