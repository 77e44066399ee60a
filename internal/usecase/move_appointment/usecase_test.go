package move_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	apptRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/appointment"
	hoursRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/hours"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/notifyservice"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// 2025-10-13 - понедельник
var monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

type fakeAppointmentRepo struct {
	byID        map[int64]*domain.Appointment
	sameDay     []*domain.Appointment
	updateCalls int
	updateErr   error
	lastDate    time.Time
	lastTime    types.TimeString
	lastVersion int64
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAppointmentRepo) GetByBusinessWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.sameDay, nil
}

func (f *fakeAppointmentRepo) UpdateSchedule(_ context.Context, _ int64, date time.Time, startTime types.TimeString, expectedVersion int64) error {
	f.updateCalls++
	f.lastDate = date
	f.lastTime = startTime
	f.lastVersion = expectedVersion
	return f.updateErr
}

type fakeHoursRepo struct {
	hours *domain.BusinessHours
	err   error
}

func (f *fakeHoursRepo) GetByLocation(_ context.Context, _, _ int64) (*domain.BusinessHours, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.hours, nil
}

type fakeNotifyClient struct {
	events []*notifyservice.ScheduleMovedEvent
	err    error
}

func (f *fakeNotifyClient) EmitScheduleMoved(_ context.Context, event *notifyservice.ScheduleMovedEvent) error {
	f.events = append(f.events, event)
	return f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMetrics struct {
	rejections map[string]int
	moves      map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{rejections: map[string]int{}, moves: map[string]int{}}
}

func (f *fakeMetrics) IncConflictRejection(reason string) { f.rejections[reason]++ }
func (f *fakeMetrics) IncMove(result string)              { f.moves[result]++ }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func workingHours() *domain.BusinessHours {
	return &domain.BusinessHours{
		Monday: &domain.DayWindow{Open: "09:00", Close: "17:00"},
	}
}

func storedAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              1,
		BusinessID:      10,
		LocationID:      ptr.Ptr[int64](5),
		Date:            monday,
		StartTime:       "14:00",
		DurationMinutes: 60,
		StaffID:         100,
		StaffName:       "Alex",
		ClientName:      "Client",
		Status:          domain.StatusConfirmed,
		Version:         3,
	}
}

func newEnv() (*fakeAppointmentRepo, *fakeHoursRepo, *fakeNotifyClient, *fakeMetrics, *UseCase) {
	repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{1: storedAppointment()}}
	hours := &fakeHoursRepo{hours: workingHours()}
	notify := &fakeNotifyClient{}
	metrics := newFakeMetrics()
	uc := NewUseCase(repo, hours, notify, fakeTxManager{}, metrics, noopLogger{})
	return repo, hours, notify, metrics, uc
}

func validRequest() *Request {
	return &Request{
		UserID:        7,
		AppointmentID: 1,
		NewDate:       monday,
		NewStartTime:  "10:00",
	}
}

func TestExecute_Success(t *testing.T) {
	repo, _, notify, metrics, uc := newEnv()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.AppointmentID)
	assert.Equal(t, "2025-10-13", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "10:00 AM", resp.StartTime12h)
	assert.Equal(t, int64(4), resp.Version)

	// Ровно одна запись в БД, CAS по прочитанной версии
	assert.Equal(t, 1, repo.updateCalls)
	assert.Equal(t, int64(3), repo.lastVersion)
	assert.Equal(t, types.TimeString("10:00"), repo.lastTime)

	// Уведомление с каноничным 12-часовым временем
	require.Len(t, notify.events, 1)
	assert.Equal(t, "10:00 AM", notify.events[0].StartTime12h)

	assert.Equal(t, 1, metrics.moves["success"])
	assert.Empty(t, metrics.rejections)
}

func TestExecute_NotFound(t *testing.T) {
	repo, _, _, _, uc := newEnv()

	req := validRequest()
	req.AppointmentID = 99

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.Zero(t, repo.updateCalls)
}

func TestExecute_CancelledRejected(t *testing.T) {
	repo, _, _, _, uc := newEnv()
	repo.byID[1].Status = domain.StatusCancelled

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAppointmentCancelled)
	assert.Zero(t, repo.updateCalls)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	repo, _, _, metrics, uc := newEnv()

	tests := []types.TimeString{"08:45", "17:00", "17:15"}
	for _, slot := range tests {
		req := validRequest()
		req.NewStartTime = slot

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrOutsideBusinessHours, "slot=%s", slot)
	}

	assert.Zero(t, repo.updateCalls)
	assert.Equal(t, len(tests), metrics.rejections["outside_hours"])
}

func TestExecute_MissingHoursMeansClosed(t *testing.T) {
	repo, hours, _, _, uc := newEnv()
	hours.hours = nil
	hours.err = hoursRepo.ErrHoursNotFound

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
	assert.Zero(t, repo.updateCalls)
}

func TestExecute_NoLocationSkipsHoursCheck(t *testing.T) {
	repo, hours, _, _, uc := newEnv()
	repo.byID[1].LocationID = nil
	hours.err = errors.New("must not be called")

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.AppointmentID)
}

func TestExecute_Conflict(t *testing.T) {
	repo, _, notify, metrics, uc := newEnv()

	blocking := &domain.Appointment{
		ID:              2,
		BusinessID:      10,
		LocationID:      ptr.Ptr[int64](5),
		Date:            monday,
		StartTime:       "10:00",
		DurationMinutes: 60,
		StaffID:         100,
		StaffName:       "Alex",
		Status:          domain.StatusConfirmed,
	}
	repo.sameDay = []*domain.Appointment{blocking}

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScheduleConflict)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	require.NotNil(t, conflictErr.Conflicting)
	assert.Equal(t, int64(2), conflictErr.Conflicting.ID)

	// Сообщение называет мастера, 12-часовое время и длительность
	assert.Contains(t, err.Error(), "Alex")
	assert.Contains(t, err.Error(), "10:00 AM")
	assert.Contains(t, err.Error(), "60 min")

	// Ни записи в БД, ни уведомления
	assert.Zero(t, repo.updateCalls)
	assert.Empty(t, notify.events)
	assert.Equal(t, 1, metrics.rejections["overlap"])
	assert.Empty(t, metrics.moves)
}

func TestExecute_OtherStaffDoesNotBlock(t *testing.T) {
	repo, _, _, _, uc := newEnv()

	other := &domain.Appointment{
		ID:              2,
		BusinessID:      10,
		LocationID:      ptr.Ptr[int64](5),
		Date:            monday,
		StartTime:       "10:00",
		DurationMinutes: 60,
		StaffID:         200,
		StaffName:       "Maria",
		Status:          domain.StatusConfirmed,
	}
	repo.sameDay = []*domain.Appointment{other}

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestExecute_VersionConflictIsLateConflict(t *testing.T) {
	repo, _, notify, metrics, uc := newEnv()
	repo.updateErr = apptRepo.ErrVersionConflict

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScheduleConflict)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Nil(t, conflictErr.Conflicting)

	assert.Empty(t, notify.events)
	assert.Equal(t, 1, metrics.rejections["version"])
}

func TestExecute_NotifyFailureDoesNotFailMove(t *testing.T) {
	repo, _, notify, metrics, uc := newEnv()
	notify.err = notifyservice.ErrServiceDegraded

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.AppointmentID)
	assert.Equal(t, 1, repo.updateCalls)
	assert.Equal(t, 1, metrics.moves["success"])
}

func TestExecute_Validation(t *testing.T) {
	_, _, _, _, uc := newEnv()

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero user", func(r *Request) { r.UserID = 0 }},
		{"zero appointment", func(r *Request) { r.AppointmentID = 0 }},
		{"zero date", func(r *Request) { r.NewDate = time.Time{} }},
		{"empty time", func(r *Request) { r.NewStartTime = "" }},
		{"malformed time", func(r *Request) { r.NewStartTime = "25:99" }},
		{"off-slot time", func(r *Request) { r.NewStartTime = "10:07" }},
		{"bad location", func(r *Request) { r.ActiveLocationID = ptr.Ptr[int64](-1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ActiveLocationScopesConflicts(t *testing.T) {
	repo, _, _, _, uc := newEnv()

	// Запись того же мастера на другой точке
	other := &domain.Appointment{
		ID:              2,
		BusinessID:      10,
		LocationID:      ptr.Ptr[int64](6),
		Date:            monday,
		StartTime:       "10:00",
		DurationMinutes: 60,
		StaffID:         100,
		StaffName:       "Alex",
		Status:          domain.StatusConfirmed,
	}
	repo.sameDay = []*domain.Appointment{other}

	req := validRequest()
	req.ActiveLocationID = ptr.Ptr[int64](5)

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestExecute_NoActiveLocationChecksWholeBusiness(t *testing.T) {
	// Без явного фильтра по точке конфликты ищутся по всему бизнесу:
	// мастер не может обслуживать две точки одновременно
	tests := []struct {
		name       string
		locationID *int64
	}{
		{"same staff at another location", ptr.Ptr[int64](6)},
		{"same staff without location", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, notify, metrics, uc := newEnv()

			blocking := &domain.Appointment{
				ID:              2,
				BusinessID:      10,
				LocationID:      tt.locationID,
				Date:            monday,
				StartTime:       "10:00",
				DurationMinutes: 60,
				StaffID:         100,
				StaffName:       "Alex",
				Status:          domain.StatusConfirmed,
			}
			repo.sameDay = []*domain.Appointment{blocking}

			// Запрос без ActiveLocationID - точка записи (5) не должна
			// сужать область проверки
			_, err := uc.Execute(context.Background(), validRequest())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrScheduleConflict)

			var conflictErr *ConflictError
			require.ErrorAs(t, err, &conflictErr)
			require.NotNil(t, conflictErr.Conflicting)
			assert.Equal(t, int64(2), conflictErr.Conflicting.ID)

			assert.Zero(t, repo.updateCalls)
			assert.Empty(t, notify.events)
			assert.Equal(t, 1, metrics.rejections["overlap"])
		})
	}
}
