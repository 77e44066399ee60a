package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeString
		wantErr bool
	}{
		{"09:00", "09:00", false},
		{"  17:45 ", "17:45", false},
		{"00:00", "00:00", false},
		{"23:59", "23:59", false},
		{"24:00", "", true},
		{"9:00", "09:00", false}, // time.Parse принимает час без нуля
		{"10:00 AM", "", true},
		{"garbage", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := NewTimeStringFromString(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input=%q", tt.input)
		} else {
			require.NoError(t, err, "input=%q", tt.input)
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestClock12Conversions(t *testing.T) {
	tests := []struct {
		ts24    TimeString
		clock12 string
	}{
		{"00:00", "12:00 AM"},
		{"00:30", "12:30 AM"},
		{"09:00", "9:00 AM"},
		{"12:00", "12:00 PM"},
		{"13:15", "1:15 PM"},
		{"23:45", "11:45 PM"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.clock12, tt.ts24.Clock12())

		back, err := NewTimeStringFromClock12(tt.clock12)
		require.NoError(t, err)
		assert.Equal(t, tt.ts24, back)
	}
}

func TestNewTimeStringFlexible(t *testing.T) {
	got, err := NewTimeStringFlexible("14:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:30"), got)

	got, err = NewTimeStringFlexible("2:30 PM")
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:30"), got)

	got, err = NewTimeStringFlexible("2:30 pm")
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:30"), got)

	_, err = NewTimeStringFlexible("half past two")
	assert.Error(t, err)
}

func TestMinutesAndHour(t *testing.T) {
	m, err := TimeString("10:45").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 645, m)

	h, err := TimeString("10:45").Hour()
	require.NoError(t, err)
	assert.Equal(t, 10, h)

	_, err = TimeString("bad").Minutes()
	assert.Error(t, err)
}

func TestAddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(75)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), got)

	got, err = TimeString("10:30").AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), got)

	// Конец суток возвращается как сентинел "24:00"
	got, err = TimeString("23:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), got)
	assert.True(t, TimeString("23:59").IsBefore(got))

	_, err = TimeString("23:30").AddMinutes(45)
	assert.Error(t, err)

	_, err = TimeString("00:15").AddMinutes(-30)
	assert.Error(t, err)
}

func TestOrdering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("17:00"))
	assert.False(t, TimeString("09:00").IsAfter("17:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
}

func TestScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:15:27")))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 10, 13, 14, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
	assert.Error(t, ts.Scan("nonsense"))
}

func TestValue(t *testing.T) {
	v, err := TimeString("08:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "08:00", v)
}
