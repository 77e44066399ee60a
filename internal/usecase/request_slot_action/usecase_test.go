package request_slot_action

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/integrations/notifyservice"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

type fakeNotifyClient struct {
	events []*notifyservice.SlotActionEvent
	err    error
}

func (f *fakeNotifyClient) EmitSlotAction(_ context.Context, event *notifyservice.SlotActionEvent) error {
	f.events = append(f.events, event)
	return f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var slotDate = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		UserID:     7,
		Action:     notifyservice.ActionAddAppointment,
		BusinessID: 10,
		LocationID: ptr.Ptr[int64](5),
		Date:       slotDate,
		StartTime:  "10:00",
	}
}

func TestExecute_ForwardsEvent(t *testing.T) {
	notify := &fakeNotifyClient{}
	uc := NewUseCase(notify, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.Forwarded)
	assert.Equal(t, "add_appointment", resp.Action)
	assert.Equal(t, "2025-10-13", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)

	require.Len(t, notify.events, 1)
	event := notify.events[0]
	assert.Equal(t, int64(7), event.UserID)
	assert.Equal(t, int64(10), event.BusinessID)
	assert.Equal(t, "10:00", event.StartTime)
}

func TestExecute_BlockTime(t *testing.T) {
	notify := &fakeNotifyClient{}
	uc := NewUseCase(notify, noopLogger{})

	req := validRequest()
	req.Action = notifyservice.ActionBlockTime

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "block_time", resp.Action)
}

func TestExecute_NotifyFailure(t *testing.T) {
	notify := &fakeNotifyClient{err: errors.New("connection refused")}
	uc := NewUseCase(notify, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Validation(t *testing.T) {
	notify := &fakeNotifyClient{}
	uc := NewUseCase(notify, noopLogger{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero user", func(r *Request) { r.UserID = 0 }},
		{"zero business", func(r *Request) { r.BusinessID = 0 }},
		{"unknown action", func(r *Request) { r.Action = "delete_everything" }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty time", func(r *Request) { r.StartTime = "" }},
		{"malformed time", func(r *Request) { r.StartTime = "10am" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, notify.events)
		})
	}
}
