package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

func conflictGrid() TimeGrid {
	return BuildTimeGrid(mondayOnly("09:00", "17:00"))
}

func TestFindConflicting_Overlap(t *testing.T) {
	grid := conflictGrid()

	candidate := appt(2, monday, "10:00", 60) // занимает 10:00-11:00
	moving := appt(1, monday, "14:00", 30)

	tests := []struct {
		name     string
		newSlot  types.TimeString
		conflict bool
	}{
		{"well before", "09:00", false},
		{"ends exactly at candidate start", "09:30", false},
		{"overlaps candidate start", "09:45", true},
		{"same slot", "10:00", true},
		{"inside candidate", "10:30", true},
		{"starts at candidate end", "11:00", false},
		{"well after", "12:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindConflicting(grid, moving, monday, tt.newSlot, []*Appointment{candidate}, nil)
			if tt.conflict {
				require.NotNil(t, got)
				assert.Equal(t, candidate.ID, got.ID)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestFindConflicting_CandidateBufferBlocks(t *testing.T) {
	grid := conflictGrid()

	// 10:00 + 30 минут услуги + 15 минут буфера: занято до 10:45
	candidate := appt(2, monday, "10:00", 30)
	candidate.BufferTimeMinutes = 15

	moving := appt(1, monday, "14:00", 30)

	assert.NotNil(t, FindConflicting(grid, moving, monday, "10:30", []*Appointment{candidate}, nil))
	assert.Nil(t, FindConflicting(grid, moving, monday, "10:45", []*Appointment{candidate}, nil))
}

func TestFindConflicting_MoverBufferNotApplied(t *testing.T) {
	grid := conflictGrid()

	candidate := appt(2, monday, "11:00", 30)

	// Буфер переносимой записи не сдвигает её занятый интервал:
	// 10:30 + 30 минут заканчивается ровно к началу кандидата
	moving := appt(1, monday, "14:00", 30)
	moving.BufferTimeMinutes = 15

	assert.Nil(t, FindConflicting(grid, moving, monday, "10:30", []*Appointment{candidate}, nil))
}

func TestFindConflicting_DifferentStaffNeverConflict(t *testing.T) {
	grid := conflictGrid()

	candidate := appt(2, monday, "10:00", 60)
	candidate.StaffID = 200
	candidate.StaffName = "Maria"

	moving := appt(1, monday, "14:00", 30)

	assert.Nil(t, FindConflicting(grid, moving, monday, "10:00", []*Appointment{candidate}, nil))
}

func TestFindConflicting_SameNameDifferentStaffID(t *testing.T) {
	grid := conflictGrid()

	// Одинаковое отображаемое имя не делает мастеров одним ресурсом
	candidate := appt(2, monday, "10:00", 60)
	candidate.StaffID = 200

	moving := appt(1, monday, "14:00", 30)

	require.Equal(t, candidate.StaffName, moving.StaffName)
	assert.Nil(t, FindConflicting(grid, moving, monday, "10:00", []*Appointment{candidate}, nil))
}

func TestFindConflicting_CancelledIgnored(t *testing.T) {
	grid := conflictGrid()

	candidate := appt(2, monday, "10:00", 60)
	candidate.Status = StatusCancelled

	moving := appt(1, monday, "14:00", 30)

	assert.Nil(t, FindConflicting(grid, moving, monday, "10:00", []*Appointment{candidate}, nil))
}

func TestFindConflicting_SelfExcluded(t *testing.T) {
	grid := conflictGrid()

	moving := appt(1, monday, "10:00", 60)

	// Перенос на собственный слот не конфликтует сам с собой
	assert.Nil(t, FindConflicting(grid, moving, monday, "10:00", []*Appointment{moving}, nil))
	assert.Nil(t, FindConflicting(grid, moving, monday, "10:15", []*Appointment{moving}, nil))
}

func TestFindConflicting_OtherDateIgnored(t *testing.T) {
	grid := conflictGrid()

	candidate := appt(2, tuesday, "10:00", 60)
	moving := appt(1, monday, "14:00", 30)

	assert.Nil(t, FindConflicting(grid, moving, monday, "10:00", []*Appointment{candidate}, nil))
}

func TestFindConflicting_LocationScoping(t *testing.T) {
	grid := conflictGrid()

	candidate := appt(2, monday, "10:00", 60)
	candidate.LocationID = ptr.Ptr[int64](5)

	moving := appt(1, monday, "14:00", 30)

	// Без активной точки проверяется весь бизнес
	assert.NotNil(t, FindConflicting(grid, moving, monday, "10:00", []*Appointment{candidate}, nil))

	// При активной точке записи других точек не участвуют
	assert.NotNil(t, FindConflicting(grid, moving, monday, "10:00", []*Appointment{candidate}, ptr.Ptr[int64](5)))
	assert.Nil(t, FindConflicting(grid, moving, monday, "10:00", []*Appointment{candidate}, ptr.Ptr[int64](7)))
}

func TestFindConflicting_OffGridCandidateStillBlocks(t *testing.T) {
	grid := conflictGrid()

	// Кандидат с нерегулярным временем резолвится в ближайший слот (10:00)
	candidate := appt(2, monday, "10:05", 60)
	moving := appt(1, monday, "14:00", 30)

	assert.NotNil(t, FindConflicting(grid, moving, monday, "10:00", []*Appointment{candidate}, nil))
}

func TestFindConflicting_DurationRoundsUpToSlots(t *testing.T) {
	grid := conflictGrid()

	// 50 минут занимают 4 слота (до 11:00), 10:45 ещё занят
	candidate := appt(2, monday, "10:00", 50)
	moving := appt(1, monday, "14:00", 30)

	assert.NotNil(t, FindConflicting(grid, moving, monday, "10:45", []*Appointment{candidate}, nil))
	assert.Nil(t, FindConflicting(grid, moving, monday, "11:00", []*Appointment{candidate}, nil))
}

func TestHasConflict(t *testing.T) {
	grid := conflictGrid()

	candidate := appt(2, monday, "10:00", 60)
	moving := appt(1, monday, "14:00", 30)

	assert.True(t, HasConflict(grid, moving, monday, "10:00", []*Appointment{candidate}, nil))
	assert.False(t, HasConflict(grid, moving, monday, "12:00", []*Appointment{candidate}, nil))
}

// Рандомизированная проверка симметрии: если перенос принят, ни одна
// активная запись того же мастера не пересекается с новым интервалом.
func TestFindConflicting_RandomizedConsistency(t *testing.T) {
	grid := conflictGrid()

	// Детерминированный набор псевдослучайных записей
	seed := int64(42)
	next := func() int64 {
		seed = seed*6364136223846793005 + 1442695040888963407
		v := seed >> 33
		if v < 0 {
			v = -v
		}
		return v
	}

	var all []*Appointment
	for i := int64(1); i <= 40; i++ {
		slot := grid.Slot(int(next() % int64(grid.Len())))
		a := appt(i, monday, slot.String(), int(30+15*(next()%4)))
		a.StaffID = 100 + next()%3
		if next()%5 == 0 {
			a.Status = StatusCancelled
		}
		all = append(all, a)
	}

	moving := appt(999, monday, "09:00", 45)
	moving.StaffID = 101

	for _, slot := range grid.Slots() {
		conflicting := FindConflicting(grid, moving, monday, slot, all, nil)
		newIndex := grid.IndexOf(slot)
		movingEnd := newIndex + moving.SlotSpan()

		for _, candidate := range all {
			if candidate.IsCancelled() || candidate.StaffID != moving.StaffID {
				continue
			}
			start, _, ok := ResolveStartSlot(grid, candidate)
			require.True(t, ok)
			end := start + candidate.SlotSpan() + candidate.BufferSlotSpan()

			overlaps := newIndex < end && movingEnd > start
			if overlaps {
				require.NotNil(t, conflicting, "slot %s overlaps appointment %d but move was accepted", slot, candidate.ID)
			}
		}

		if conflicting != nil {
			assert.Equal(t, moving.StaffID, conflicting.StaffID)
			assert.False(t, conflicting.IsCancelled())
		}
	}
}
