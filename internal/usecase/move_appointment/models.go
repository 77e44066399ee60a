package move_appointment

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Request входные данные для переноса записи
type Request struct {
	// UserID пользователь, выполняющий перенос (из заголовка X-User-ID)
	UserID int64

	// AppointmentID идентификатор переносимой записи
	AppointmentID int64

	// NewDate новая дата записи
	NewDate time.Time

	// NewStartTime новое время начала в формате "HH:MM"
	NewStartTime types.TimeString

	// ActiveLocationID точка, открытая в календаре пользователя.
	// Если задана, конфликты проверяются в её пределах; nil - по записи.
	ActiveLocationID *int64
}

// Response результат успешного переноса
type Response struct {
	AppointmentID int64  `json:"appointment_id"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	StartTime12h  string `json:"start_time_12h"`
	Version       int64  `json:"version"`
}
