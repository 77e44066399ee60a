package get_week_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	hoursRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/hours"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/directoryservice"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// 2025-10-12 - воскресенье, начало отображаемой недели
var sunday = time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC)
var monday = sunday.AddDate(0, 0, 1)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	lastFilter   domain.AppointmentsFilter
}

func (f *fakeAppointmentRepo) GetByBusinessWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	return f.appointments, nil
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

type fakeDirectoryClient struct {
	business *directoryservice.Business
	err      error
}

func (f *fakeDirectoryClient) GetBusiness(_ context.Context, _ int64) (*directoryservice.Business, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.business, nil
}

type fakeTxManager struct {
	readOnlyCalls int
}

func (f *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	f.readOnlyCalls++
	return fn(ctx)
}

type fakeMetrics struct {
	fallbacks map[string]int
}

func (f *fakeMetrics) IncSlotFallback(operation string) {
	if f.fallbacks == nil {
		f.fallbacks = map[string]int{}
	}
	f.fallbacks[operation]++
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func mondayHours() *domain.BusinessHours {
	return &domain.BusinessHours{
		Monday: &domain.DayWindow{Open: "09:00", Close: "17:00"},
	}
}

func confirmed(id int64, date time.Time, start string, durationMinutes int, staffID int64) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		BusinessID:      10,
		LocationID:      ptr.Ptr[int64](5),
		Date:            date,
		StartTime:       types.TimeString(start),
		DurationMinutes: durationMinutes,
		StaffID:         staffID,
		StaffName:       "Alex",
		ServiceName:     "Haircut",
		ClientName:      "Client",
		Status:          domain.StatusConfirmed,
	}
}

func newEnv() (*fakeAppointmentRepo, *fakeHoursRepo, *fakeDirectoryClient, *fakeMetrics, *UseCase) {
	repo := &fakeAppointmentRepo{}
	hours := &fakeHoursRepo{hours: mondayHours()}
	directory := &fakeDirectoryClient{
		business: &directoryservice.Business{
			ID:        10,
			Name:      "Salon",
			Locations: []directoryservice.Location{{ID: 5, Name: "Main"}},
		},
	}
	metrics := &fakeMetrics{}
	uc := NewUseCase(repo, hours, directory, &fakeTxManager{}, metrics, noopLogger{})
	return repo, hours, directory, metrics, uc
}

func validRequest() *Request {
	return &Request{
		BusinessID: 10,
		LocationID: ptr.Ptr[int64](5),
		WeekStart:  sunday,
	}
}

func TestExecute_GridShape(t *testing.T) {
	_, _, _, _, uc := newEnv()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Один рабочий день 09:00-17:00: сетка 08:00 .. 18:00, 41 слот
	require.Len(t, resp.Slots, 41)
	assert.Equal(t, "08:00", resp.Slots[0].Time)
	assert.Equal(t, "8:00 AM", resp.Slots[0].Time12h)
	assert.Equal(t, "18:00", resp.Slots[40].Time)

	require.Len(t, resp.Days, 7)
	assert.Equal(t, "2025-10-12", resp.Days[0].Date)
	assert.Equal(t, "Sunday", resp.Days[0].Weekday)
	assert.False(t, resp.Days[0].IsOpen)
	assert.True(t, resp.Days[1].IsOpen) // понедельник

	for _, day := range resp.Days {
		assert.Len(t, day.Cells, 41)
	}
}

func TestExecute_OpenFlags(t *testing.T) {
	_, _, _, _, uc := newEnv()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	mondayCells := resp.Days[1].Cells

	flagAt := func(slot string) bool {
		for _, cell := range mondayCells {
			if cell.Time == slot {
				return cell.IsOpen
			}
		}
		t.Fatalf("slot %s not found", slot)
		return false
	}

	assert.False(t, flagAt("08:45"))
	assert.True(t, flagAt("09:00"))
	assert.True(t, flagAt("16:45"))
	assert.False(t, flagAt("17:00"))

	// Закрытый день закрыт целиком
	for _, cell := range resp.Days[0].Cells {
		assert.False(t, cell.IsOpen)
	}
}

func TestExecute_CardsAtStartCell(t *testing.T) {
	repo, _, _, _, uc := newEnv()
	repo.appointments = []*domain.Appointment{confirmed(1, monday, "10:00", 60, 100)}

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	var startCell, nextCell Cell
	for _, cell := range resp.Days[1].Cells {
		switch cell.Time {
		case "10:00":
			startCell = cell
		case "10:15":
			nextCell = cell
		}
	}

	require.Len(t, startCell.Appointments, 1)
	card := startCell.Appointments[0]
	assert.Equal(t, int64(1), card.ID)
	assert.Equal(t, "10:00 AM", card.StartTime12h)
	assert.Equal(t, 4, card.SpanSlots)

	// Ячейки под карточкой пусты: высота считается по SpanSlots
	assert.Empty(t, nextCell.Appointments)
}

func TestExecute_StaffFilterRenderingOnly(t *testing.T) {
	repo, _, _, _, uc := newEnv()
	repo.appointments = []*domain.Appointment{
		confirmed(1, monday, "10:00", 60, 100),
		confirmed(2, monday, "11:00", 60, 200),
	}

	req := validRequest()
	req.StaffIDs = []int64{200}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	var rendered []int64
	for _, day := range resp.Days {
		for _, cell := range day.Cells {
			for _, card := range cell.Appointments {
				rendered = append(rendered, card.ID)
			}
		}
	}
	assert.Equal(t, []int64{2}, rendered)

	// Фильтр отображения не сужает выборку из БД
	assert.Empty(t, repo.lastFilter.StaffIDs)
	assert.False(t, repo.lastFilter.IncludeCancelled)
}

func TestExecute_OffGridAppointmentCountsFallback(t *testing.T) {
	repo, _, _, metrics, uc := newEnv()
	repo.appointments = []*domain.Appointment{confirmed(1, monday, "10:05", 30, 100)}

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, metrics.fallbacks["get_week_schedule"])

	// Запись нарисована в ближайшем слоте
	var found bool
	for _, cell := range resp.Days[1].Cells {
		if cell.Time == "10:00" && len(cell.Appointments) == 1 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestExecute_BusinessNotFound(t *testing.T) {
	_, _, directory, _, uc := newEnv()
	directory.business = nil
	directory.err = directoryservice.ErrBusinessNotFound

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestExecute_LocationNotFound(t *testing.T) {
	_, _, _, _, uc := newEnv()

	req := validRequest()
	req.LocationID = ptr.Ptr[int64](99)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestExecute_MissingHoursFallsBackToDefaultGrid(t *testing.T) {
	_, hours, _, _, uc := newEnv()
	hours.hours = nil
	hours.err = hoursRepo.ErrHoursNotFound

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Дефолтное окно 9-19: сетка 08:00 .. 20:00
	assert.Equal(t, "08:00", resp.Slots[0].Time)
	assert.Equal(t, "20:00", resp.Slots[len(resp.Slots)-1].Time)

	// Все ячейки закрыты
	for _, day := range resp.Days {
		for _, cell := range day.Cells {
			assert.False(t, cell.IsOpen)
		}
	}
}

func TestExecute_ReadsShareOneTransaction(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	hours := &fakeHoursRepo{hours: mondayHours()}
	directory := &fakeDirectoryClient{
		business: &directoryservice.Business{
			ID:        10,
			Locations: []directoryservice.Location{{ID: 5}},
		},
	}
	txMgr := &fakeTxManager{}
	uc := NewUseCase(repo, hours, directory, txMgr, &fakeMetrics{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Расписание работы и записи читаются одним снимком
	assert.Equal(t, 1, txMgr.readOnlyCalls)
}

func TestExecute_CardUsesDirectoryStaffName(t *testing.T) {
	repo, _, directory, _, uc := newEnv()
	repo.appointments = []*domain.Appointment{
		confirmed(1, monday, "10:00", 60, 100),
		confirmed(2, monday, "12:00", 60, 999),
	}
	// Мастер 100 переименован в DirectoryService; мастера 999 там нет
	directory.business.Staff = []directoryservice.Staff{
		{ID: 100, Name: "Alexandra", Role: "stylist"},
	}

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	names := map[int64]string{}
	for _, day := range resp.Days {
		for _, cell := range day.Cells {
			for _, card := range cell.Appointments {
				names[card.StaffID] = card.StaffName
			}
		}
	}

	assert.Equal(t, "Alexandra", names[100])
	// Для удалённого мастера остаётся снимок имени из записи
	assert.Equal(t, "Alex", names[999])
}

func TestExecute_Validation(t *testing.T) {
	_, _, _, _, uc := newEnv()

	req := validRequest()
	req.BusinessID = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
