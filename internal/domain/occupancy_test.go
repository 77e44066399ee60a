package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

func appt(id int64, date time.Time, start string, durationMinutes int) *Appointment {
	return &Appointment{
		ID:              id,
		BusinessID:      1,
		Date:            date,
		StartTime:       types.TimeString(start),
		DurationMinutes: durationMinutes,
		StaffID:         100,
		StaffName:       "Alex",
		ClientName:      "Client",
		Status:          StatusConfirmed,
	}
}

func TestOccupantsAt_StartCellOnly(t *testing.T) {
	grid := BuildTimeGrid(mondayOnly("09:00", "17:00"))
	appointments := []*Appointment{appt(1, monday, "10:00", 60)}

	// Запись видна только в своей стартовой ячейке
	occupants := OccupantsAt(grid, monday, "10:00", appointments)
	require.Len(t, occupants, 1)
	assert.Equal(t, int64(1), occupants[0].ID)

	// Последующие ячейки, покрытые длительностью, пусты: высоту карточки
	// считает клиент по SlotSpan
	assert.Empty(t, OccupantsAt(grid, monday, "10:15", appointments))
	assert.Empty(t, OccupantsAt(grid, monday, "10:45", appointments))
	assert.Empty(t, OccupantsAt(grid, monday, "11:00", appointments))
}

func TestOccupantsAt_CancelledNeverVisible(t *testing.T) {
	grid := BuildTimeGrid(mondayOnly("09:00", "17:00"))

	cancelled := appt(1, monday, "10:00", 60)
	cancelled.Status = StatusCancelled

	for _, slot := range grid.Slots() {
		assert.Empty(t, OccupantsAt(grid, monday, slot, []*Appointment{cancelled}))
	}
}

func TestOccupantsAt_OtherDateInvisible(t *testing.T) {
	grid := BuildTimeGrid(mondayOnly("09:00", "17:00"))
	appointments := []*Appointment{appt(1, monday, "10:00", 60)}

	assert.Empty(t, OccupantsAt(grid, tuesday, "10:00", appointments))
}

func TestOccupantsAt_OffGridTimeRendersAtNearestSlot(t *testing.T) {
	grid := BuildTimeGrid(mondayOnly("09:00", "17:00"))

	// 10:05 не совпадает ни с одним слотом, рисуется в ближайшем (10:00)
	appointments := []*Appointment{appt(1, monday, "10:05", 30)}

	occupants := OccupantsAt(grid, monday, "10:00", appointments)
	require.Len(t, occupants, 1)
	assert.Equal(t, int64(1), occupants[0].ID)

	assert.Empty(t, OccupantsAt(grid, monday, "10:15", appointments))
}

func TestOccupantsAt_MultipleStaffSameSlot(t *testing.T) {
	grid := BuildTimeGrid(mondayOnly("09:00", "17:00"))

	first := appt(1, monday, "10:00", 30)
	second := appt(2, monday, "10:00", 45)
	second.StaffID = 200
	second.StaffName = "Maria"

	occupants := OccupantsAt(grid, monday, "10:00", []*Appointment{first, second})
	assert.Len(t, occupants, 2)
}

func TestResolveStartSlot(t *testing.T) {
	grid := BuildTimeGrid(mondayOnly("09:00", "17:00"))

	index, exact, ok := ResolveStartSlot(grid, appt(1, monday, "09:00", 30))
	require.True(t, ok)
	assert.True(t, exact)
	assert.Equal(t, 4, index)

	index, exact, ok = ResolveStartSlot(grid, appt(2, monday, "09:07", 30))
	require.True(t, ok)
	assert.False(t, exact)
	assert.Equal(t, 4, index)

	_, _, ok = ResolveStartSlot(grid, appt(3, monday, "garbage", 30))
	assert.False(t, ok)
}
