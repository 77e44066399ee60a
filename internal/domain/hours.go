package domain

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// DayWindow is a single weekday's open/close window.
type DayWindow struct {
	Open  types.TimeString // "HH:MM", 24-hour
	Close types.TimeString // "HH:MM", 24-hour
}

// BusinessHours holds the weekly working hours of one location.
// A nil weekday means the location is fully closed that day.
type BusinessHours struct {
	Monday    *DayWindow
	Tuesday   *DayWindow
	Wednesday *DayWindow
	Thursday  *DayWindow
	Friday    *DayWindow
	Saturday  *DayWindow
	Sunday    *DayWindow
}

// ForWeekday returns the window for the given weekday, or nil when closed
func (h *BusinessHours) ForWeekday(weekday time.Weekday) *DayWindow {
	switch weekday {
	case time.Monday:
		return h.Monday
	case time.Tuesday:
		return h.Tuesday
	case time.Wednesday:
		return h.Wednesday
	case time.Thursday:
		return h.Thursday
	case time.Friday:
		return h.Friday
	case time.Saturday:
		return h.Saturday
	case time.Sunday:
		return h.Sunday
	default:
		return nil
	}
}

// SetForWeekday sets the window for the given weekday (nil = closed)
func (h *BusinessHours) SetForWeekday(weekday time.Weekday, window *DayWindow) {
	switch weekday {
	case time.Monday:
		h.Monday = window
	case time.Tuesday:
		h.Tuesday = window
	case time.Wednesday:
		h.Wednesday = window
	case time.Thursday:
		h.Thursday = window
	case time.Friday:
		h.Friday = window
	case time.Saturday:
		h.Saturday = window
	case time.Sunday:
		h.Sunday = window
	}
}

// IsOpenAt reports whether the location is open at the given slot on the
// given date. The interval is half-open: a slot exactly at closing time is
// closed, so no appointment may start at close and run any duration.
func (h *BusinessHours) IsOpenAt(slot types.TimeString, date time.Time) bool {
	window := h.ForWeekday(date.Weekday())
	if window == nil || window.Open == "" || window.Close == "" {
		return false
	}

	slotMinutes, err := slot.Minutes()
	if err != nil {
		return false
	}
	openMinutes, err := window.Open.Minutes()
	if err != nil {
		return false
	}
	closeMinutes, err := window.Close.Minutes()
	if err != nil {
		return false
	}

	return openMinutes <= slotMinutes && slotMinutes < closeMinutes
}
