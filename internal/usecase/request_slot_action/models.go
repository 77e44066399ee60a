package request_slot_action

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Request запрос действия из контекстного меню пустого слота
type Request struct {
	// UserID пользователь, выбравший действие (из заголовка X-User-ID)
	UserID int64

	// Action действие: "add_appointment" или "block_time"
	Action string

	// BusinessID идентификатор бизнеса
	BusinessID int64

	// LocationID точка, открытая в календаре; nil - бизнес без точек
	LocationID *int64

	// Date дата выбранного слота
	Date time.Time

	// StartTime время выбранного слота в формате "HH:MM"
	StartTime types.TimeString
}

// Response подтверждение пересылки действия хост-системе
type Response struct {
	Action    string `json:"action"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	Forwarded bool   `json:"forwarded"`
}
