package request_slot_action

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	requestSlotAction "github.com/m04kA/SMC-CalendarService/internal/usecase/request_slot_action"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// SlotActionRequest HTTP request model
type SlotActionRequest struct {
	Action     string `json:"action"`     // "add_appointment" | "block_time"
	LocationID *int64 `json:"locationId,omitempty"`
	Date       string `json:"date"`      // "2025-10-15"
	StartTime  string `json:"startTime"` // "10:00" или "10:00 AM"
}

// SlotActionResponse HTTP response model
type SlotActionResponse struct {
	Action    string `json:"action"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Forwarded bool   `json:"forwarded"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SlotActionRequest) ToUseCaseRequest(businessID, userID int64) (*requestSlotAction.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFlexible(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &requestSlotAction.Request{
		UserID:     userID,
		Action:     r.Action,
		BusinessID: businessID,
		LocationID: r.LocationID,
		Date:       date,
		StartTime:  startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *requestSlotAction.Response) *SlotActionResponse {
	return &SlotActionResponse{
		Action:    resp.Action,
		Date:      resp.Date,
		StartTime: resp.StartTime,
		Forwarded: resp.Forwarded,
	}
}
