package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

// TimeString represents a wall-clock time of day as "HH:MM" (24-hour).
// Used for slot times and working hours instead of time.Time, because the
// value is date- and timezone-independent.
type TimeString string

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")
)

const (
	timeLayout    = "15:04"
	clock12Layout = "3:04 PM"
)

// NewTimeString creates a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses "HH:MM" (24-hour) into a TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(t.Format(timeLayout)), nil
}

// NewTimeStringFromClock12 parses the 12-hour display form "3:04 PM".
// This is the canonical external representation used by the calendar UI.
func NewTimeStringFromClock12(s string) (TimeString, error) {
	t, err := time.Parse(clock12Layout, strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(t.Format(timeLayout)), nil
}

// NewTimeStringFlexible parses either the 24-hour or the 12-hour form.
// Upstream data occasionally stores display strings, so readers use this.
func NewTimeStringFlexible(s string) (TimeString, error) {
	if ts, err := NewTimeStringFromString(s); err == nil {
		return ts, nil
	}
	return NewTimeStringFromClock12(s)
}

// NewTimeStringFromMinutes creates a TimeString from minutes since midnight.
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= 24*60 {
		return "", fmt.Errorf("%w: %d minutes", ErrInvalidTimeString, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// String returns the 24-hour "HH:MM" form.
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero reports whether the value is unset.
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate checks that the value parses as "HH:MM".
func (ts TimeString) Validate() error {
	_, err := ts.Minutes()
	return err
}

// Clock12 returns the 12-hour display form, e.g. "10:00 AM".
func (ts TimeString) Clock12() string {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return string(ts)
	}
	return t.Format(clock12Layout)
}

// Minutes returns the value as minutes since midnight.
func (ts TimeString) Minutes() (int, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Hour returns the hour component (0-23).
func (ts TimeString) Hour() (int, error) {
	m, err := ts.Minutes()
	if err != nil {
		return 0, err
	}
	return m / 60, nil
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// The result is clamped within the same day; crossing midnight is an error.
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	m, err := ts.Minutes()
	if err != nil {
		return "", err
	}
	m += minutes
	if m < 0 || m > 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes crosses midnight", ErrInvalidTimeString, string(ts), minutes)
	}
	if m == 24*60 {
		// End-of-day sentinel. Compares correctly against any "HH:MM" but
		// must not be stored or fed back into Minutes().
		return TimeString("24:00"), nil
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// IsBefore reports whether ts is strictly earlier than other.
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter reports whether ts is strictly later than other.
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}

// Value implements driver.Valuer, storing the "HH:MM" form.
func (ts TimeString) Value() (driver.Value, error) {
	return string(ts), nil
}

// Scan implements sql.Scanner. Postgres TIME columns arrive as strings
// ("HH:MM:SS") or time.Time depending on the driver path.
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	case []byte:
		return ts.scanString(string(v))
	case string:
		return ts.scanString(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
}

func (ts *TimeString) scanString(s string) error {
	// "HH:MM:SS" -> "HH:MM"
	if len(s) >= 5 {
		parsed, err := NewTimeStringFromString(s[:5])
		if err == nil {
			*ts = parsed
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
}
