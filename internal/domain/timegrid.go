package domain

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// TimeGrid is the ordered list of 15-minute slot labels shown on the
// calendar's time axis for one week. It is a pure derived view: rebuilt
// whenever business hours change, never persisted.
type TimeGrid struct {
	slots []types.TimeString
}

// BuildTimeGrid derives the weekly slot grid from business hours.
//
// The grid spans from one hour before the earliest opening hour across the
// week to one hour after the latest closing hour, inclusive, in 15-minute
// steps. A location open 09:00-17:00 on a single day therefore yields slots
// 08:00 .. 18:00 (41 entries). When no weekday has a complete window the
// default 9-19 window applies (grid 08:00 .. 20:00).
func BuildTimeGrid(hours *BusinessHours) TimeGrid {
	earliestOpen := -1
	latestClose := -1

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		window := hours.ForWeekday(wd)
		if window == nil || window.Open == "" || window.Close == "" {
			continue
		}
		openHour, err := window.Open.Hour()
		if err != nil {
			continue
		}
		closeMinutes, err := window.Close.Minutes()
		if err != nil {
			continue
		}
		// A close of 17:30 keeps the grid open through hour 18
		closeHour := closeMinutes / 60
		if closeMinutes%60 != 0 {
			closeHour++
		}

		if earliestOpen == -1 || openHour < earliestOpen {
			earliestOpen = openHour
		}
		if latestClose == -1 || closeHour > latestClose {
			latestClose = closeHour
		}
	}

	if earliestOpen == -1 || latestClose == -1 {
		earliestOpen = DefaultOpenHour
		latestClose = DefaultCloseHour
	}

	startHour := earliestOpen - GridPaddingHours
	if startHour < 0 {
		startHour = 0
	}
	endHour := latestClose + GridPaddingHours
	if endHour > 23 {
		endHour = 23
	}

	slots := make([]types.TimeString, 0, (endHour-startHour)*4+1)
	for m := startHour * 60; m <= endHour*60; m += SlotStepMinutes {
		ts, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			break
		}
		slots = append(slots, ts)
	}

	return TimeGrid{slots: slots}
}

// Slots returns the ordered slot labels
func (g TimeGrid) Slots() []types.TimeString {
	return g.slots
}

// Len returns the number of slots on the grid
func (g TimeGrid) Len() int {
	return len(g.slots)
}

// Slot returns the label at index i
func (g TimeGrid) Slot(i int) types.TimeString {
	return g.slots[i]
}

// IndexOf returns the index of an exactly matching slot, or -1
func (g TimeGrid) IndexOf(slot types.TimeString) int {
	for i, s := range g.slots {
		if s == slot {
			return i
		}
	}
	return -1
}

// NearestIndex resolves a time to a grid index. When the time matches a slot
// exactly, exact is true. Otherwise the slot with the minimum absolute
// minute difference is chosen (the earlier slot wins a tie), so appointments
// with irregular stored times never silently disappear from the grid.
// Returns (-1, false) for an unparsable time or an empty grid.
func (g TimeGrid) NearestIndex(t types.TimeString) (index int, exact bool) {
	if i := g.IndexOf(t); i >= 0 {
		return i, true
	}

	minutes, err := t.Minutes()
	if err != nil || len(g.slots) == 0 {
		return -1, false
	}

	best := -1
	bestDiff := 0
	for i, s := range g.slots {
		slotMinutes, err := s.Minutes()
		if err != nil {
			continue
		}
		diff := slotMinutes - minutes
		if diff < 0 {
			diff = -diff
		}
		if best == -1 || diff < bestDiff {
			best = i
			bestDiff = diff
		}
	}
	return best, false
}
