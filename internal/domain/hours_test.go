package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// 2025-10-13 - понедельник
var monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
var tuesday = monday.AddDate(0, 0, 1)

func TestBusinessHours_IsOpenAt(t *testing.T) {
	hours := mondayOnly("09:00", "17:00")

	tests := []struct {
		name string
		slot types.TimeString
		date time.Time
		want bool
	}{
		{"just before opening", "08:45", monday, false},
		{"opening boundary", "09:00", monday, true},
		{"mid day", "12:30", monday, true},
		{"last open slot", "16:45", monday, true},
		{"closing boundary is closed", "17:00", monday, false},
		{"after closing", "17:15", monday, false},
		{"closed weekday", "12:00", tuesday, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hours.IsOpenAt(tt.slot, tt.date))
		})
	}
}

func TestBusinessHours_IsOpenAt_IncompleteWindow(t *testing.T) {
	hours := &BusinessHours{
		Monday: &DayWindow{Open: "09:00"}, // нет времени закрытия
	}

	assert.False(t, hours.IsOpenAt("10:00", monday))
}

func TestBusinessHours_ForWeekday(t *testing.T) {
	hours := &BusinessHours{}
	window := &DayWindow{Open: "10:00", Close: "18:00"}

	hours.SetForWeekday(time.Wednesday, window)

	assert.Equal(t, window, hours.ForWeekday(time.Wednesday))
	assert.Nil(t, hours.ForWeekday(time.Thursday))
}
