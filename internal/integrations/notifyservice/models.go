package notifyservice

// ScheduleMovedEvent событие успешного переноса записи.
// Хост-система рассылает по нему уведомления клиенту и мастеру.
type ScheduleMovedEvent struct {
	AppointmentID int64  `json:"appointment_id"`
	BusinessID    int64  `json:"business_id"`
	Date          string `json:"date"`       // YYYY-MM-DD
	StartTime12h  string `json:"start_time"` // каноничное внешнее представление, "3:04 PM"
}

// SlotActionEvent запрос пользователя из контекстного меню пустого слота.
// Сервис календаря не выполняет по нему никакой логики планирования,
// только пересылает координаты выбранного слота хост-системе.
type SlotActionEvent struct {
	Action     string `json:"action"` // "add_appointment" | "block_time"
	BusinessID int64  `json:"business_id"`
	LocationID *int64 `json:"location_id,omitempty"`
	Date       string `json:"date"`       // YYYY-MM-DD
	StartTime  string `json:"start_time"` // "HH:MM"
	UserID     int64  `json:"user_id"`
}

// Действия контекстного меню пустого слота
const (
	ActionAddAppointment = "add_appointment"
	ActionBlockTime      = "block_time"
)
