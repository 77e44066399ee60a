package move_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/notifyservice"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByID получает запись по ID (внутри транзакции - с блокировкой строки)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)

	// GetByBusinessWithFilter получает записи бизнеса
	// Для проверки конфликтов выборка всегда без фильтра по мастерам и точкам:
	// скрытый в UI мастер не должен допускать двойного бронирования
	GetByBusinessWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)

	// UpdateSchedule переносит запись (compare-and-swap по версии)
	UpdateSchedule(ctx context.Context, id int64, date time.Time, startTime types.TimeString, expectedVersion int64) error
}

// HoursRepository интерфейс репозитория расписания работы
type HoursRepository interface {
	GetByLocation(ctx context.Context, businessID, locationID int64) (*domain.BusinessHours, error)
}

// NotifyServiceClient интерфейс клиента для NotifyService
type NotifyServiceClient interface {
	EmitScheduleMoved(ctx context.Context, event *notifyservice.ScheduleMovedEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс для бизнес-метрик переноса
type Metrics interface {
	IncConflictRejection(reason string)
	IncMove(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
