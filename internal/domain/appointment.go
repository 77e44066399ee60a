package domain

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusArrived    AppointmentStatus = "arrived"
	StatusStarted    AppointmentStatus = "started"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusDidNotShow AppointmentStatus = "did_not_show"
)

// Appointment represents a client appointment on the salon calendar
type Appointment struct {
	ID         int64
	BusinessID int64
	LocationID *int64 // NULL = бизнес без разделения по точкам

	// Scheduling attributes
	Date              time.Time        // Calendar day, time-of-day is ignored
	StartTime         types.TimeString // "HH:MM", 24-hour
	DurationMinutes   int              // > 0
	BufferTimeMinutes int              // >= 0, dead time after the visit for the same master

	// Resource attributes. StaffID is the resource key for conflict
	// detection; StaffName is a denormalized display copy and must never
	// be used for matching (names are editable and not unique).
	StaffID         int64
	StaffName       string
	ServiceName     string
	ServiceCategory string // For calendar coloring

	ClientName string

	Status AppointmentStatus

	// Payment summary, display only
	PaymentStatus *string
	PaymentAmount *float64

	Notes *string

	// Version for optimistic concurrency on reschedule
	Version int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// BlocksSchedule returns true if the appointment occupies slots on the grid.
// Cancelled appointments never occupy a slot and never block a move.
func (a *Appointment) BlocksSchedule() bool {
	return !a.IsCancelled()
}

// CanBeMoved returns true if the appointment may be rescheduled via drag-and-drop
func (a *Appointment) CanBeMoved() bool {
	return !a.IsCancelled()
}

// SlotSpan returns the number of grid slots covered by the appointment's duration
func (a *Appointment) SlotSpan() int {
	return slotSpan(a.DurationMinutes)
}

// BufferSlotSpan returns the number of grid slots covered by the buffer time
func (a *Appointment) BufferSlotSpan() int {
	return slotSpan(a.BufferTimeMinutes)
}

// IsOnDate reports whether the appointment falls on the given calendar day
// (date parts only, time-of-day is ignored)
func (a *Appointment) IsOnDate(date time.Time) bool {
	y1, m1, d1 := a.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// slotSpan converts minutes to a slot count, rounding up
func slotSpan(minutes int) int {
	if minutes <= 0 {
		return 0
	}
	return (minutes + SlotStepMinutes - 1) / SlotStepMinutes
}

// AppointmentsFilter фильтр для выборки записей бизнеса
type AppointmentsFilter struct {
	BusinessID       int64               // Обязательный параметр
	LocationID       *int64              // Фильтр по точке (опционально)
	StaffIDs         []int64             // Фильтр по мастерам (опционально)
	StartDate        *time.Time          // Начало периода (опционально)
	EndDate          *time.Time          // Конец периода (опционально)
	Status           *AppointmentStatus  // Фильтр по статусу (опционально)
	IncludeCancelled bool                // Включать ли отменённые записи
}

// VisibleForStaff returns the appointments rendered on the calendar for the
// given staff selection. An empty selection means "show everyone".
// Cancelled appointments are never visible.
//
// This filter governs rendering only. Conflict detection always runs against
// the full unfiltered set: hiding a master from view must not allow
// double-booking them.
func VisibleForStaff(appointments []*Appointment, selectedStaffIDs []int64) []*Appointment {
	selected := make(map[int64]struct{}, len(selectedStaffIDs))
	for _, id := range selectedStaffIDs {
		selected[id] = struct{}{}
	}

	visible := make([]*Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.IsCancelled() {
			continue
		}
		if len(selected) > 0 {
			if _, ok := selected[a.StaffID]; !ok {
				continue
			}
		}
		visible = append(visible, a)
	}
	return visible
}
