package domain

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// ResolveStartSlot resolves an appointment's starting grid index.
// exact is false when the nearest-slot fallback was applied; ok is false
// when the appointment's time cannot be placed on the grid at all
// (unparsable time) — such appointments are excluded from the schedule
// rather than treated as errors.
func ResolveStartSlot(grid TimeGrid, a *Appointment) (index int, exact bool, ok bool) {
	index, exact = grid.NearestIndex(a.StartTime)
	if index < 0 {
		return -1, false, false
	}
	return index, exact, true
}

// OccupantsAt returns the appointments that start at the given (date, slot)
// cell. Each appointment appears exactly once on the grid, at its starting
// slot; callers render a card spanning SlotSpan() slots from there.
//
// Normally at most one appointment per cell, but coincident starts of
// different masters are legal and all are returned (the caller stacks them
// visually). Cancelled appointments never occupy a cell. The function is a
// pure query: it never fails, appointments it cannot place are skipped.
func OccupantsAt(grid TimeGrid, date time.Time, slot types.TimeString, appointments []*Appointment) []*Appointment {
	slotIndex := grid.IndexOf(slot)
	if slotIndex < 0 {
		return nil
	}

	var occupants []*Appointment
	for _, a := range appointments {
		if a.IsCancelled() || !a.IsOnDate(date) {
			continue
		}
		start, _, ok := ResolveStartSlot(grid, a)
		if !ok {
			continue
		}
		if start == slotIndex {
			occupants = append(occupants, a)
		}
	}
	return occupants
}
