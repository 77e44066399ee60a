package domain

// Slot grid parameters
const (
	// SlotStepMinutes is the resolution of the calendar grid
	SlotStepMinutes = 15

	// GridPaddingHours is the number of empty hours rendered above the
	// earliest opening and below the latest closing, so early/late
	// appointments always have room on the grid
	GridPaddingHours = 1

	// Default grid window (hours) when no weekday has working hours
	DefaultOpenHour  = 9
	DefaultCloseHour = 19
)

// Business validation constants
const (
	MinDurationMinutes = 5
	MaxDurationMinutes = 480 // 8 hours
	MinBufferMinutes   = 0
	MaxBufferMinutes   = 240 // 4 hours
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не блокирующих расписание
// Используется при фильтрации записей для проверки конфликтов
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов, занимающих слоты в расписании
var ActiveStatuses = []AppointmentStatus{
	StatusConfirmed,
	StatusArrived,
	StatusStarted,
	StatusCompleted,
	StatusDidNotShow,
}
