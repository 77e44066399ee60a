package get_week_schedule

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/directoryservice"
)

// Request входные данные для построения недельного расписания
type Request struct {
	// BusinessID идентификатор бизнеса
	BusinessID int64

	// LocationID точка, открытая в календаре; nil - бизнес без точек
	LocationID *int64

	// WeekStart первый день отображаемой недели
	WeekStart time.Time

	// StaffIDs фильтр мастеров для отображения; пустой - показывать всех
	StaffIDs []int64
}

// SlotLabel подпись слота сетки
type SlotLabel struct {
	Time    string `json:"time"`
	Time12h string `json:"time_12h"`
}

// AppointmentCard карточка записи в ячейке её стартового слота
type AppointmentCard struct {
	ID              int64  `json:"id"`
	ClientName      string `json:"client_name"`
	ServiceName     string `json:"service_name"`
	ServiceCategory string `json:"service_category"`
	StaffID         int64  `json:"staff_id"`
	StaffName       string `json:"staff_name"`
	Status          string `json:"status"`
	StartTime12h    string `json:"start_time_12h"`
	DurationMinutes int    `json:"duration_minutes"`

	// SpanSlots высота карточки в слотах сетки; ячейки под карточкой
	// повторно не заполняются
	SpanSlots int `json:"span_slots"`
}

// Cell ячейка (день, слот) недельной сетки
type Cell struct {
	Time   string `json:"time"`
	IsOpen bool   `json:"is_open"`

	// Appointments записи, стартующие в этой ячейке
	Appointments []AppointmentCard `json:"appointments,omitempty"`
}

// Day колонка недельной сетки
type Day struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	IsOpen  bool   `json:"is_open"`
	Cells   []Cell `json:"cells"`
}

// Response недельное расписание
type Response struct {
	BusinessID int64       `json:"business_id"`
	LocationID *int64      `json:"location_id,omitempty"`
	WeekStart  string      `json:"week_start"`
	Slots      []SlotLabel `json:"slots"`
	Days       []Day       `json:"days"`
}

// toCard конвертирует доменную запись в карточку ячейки.
// Имя мастера в записи - снимок на момент создания; актуальное имя
// берётся из DirectoryService, снимок остаётся запасным вариантом
// для мастеров, уже удалённых из бизнеса.
func toCard(a *domain.Appointment, business *directoryservice.Business) AppointmentCard {
	staffName := a.StaffName
	if staff := business.StaffByID(a.StaffID); staff != nil {
		staffName = staff.Name
	}

	return AppointmentCard{
		ID:              a.ID,
		ClientName:      a.ClientName,
		ServiceName:     a.ServiceName,
		ServiceCategory: a.ServiceCategory,
		StaffID:         a.StaffID,
		StaffName:       staffName,
		Status:          string(a.Status),
		StartTime12h:    a.StartTime.Clock12(),
		DurationMinutes: a.DurationMinutes,
		SpanSlots:       a.SlotSpan(),
	}
}
