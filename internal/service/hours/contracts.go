package hours

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/directoryservice"
)

// HoursRepository интерфейс репозитория расписания работы
type HoursRepository interface {
	GetByLocation(ctx context.Context, businessID, locationID int64) (*domain.BusinessHours, error)
	ReplaceForLocation(ctx context.Context, businessID, locationID int64, hours *domain.BusinessHours) error
}

// DirectoryServiceClient интерфейс клиента для DirectoryService
type DirectoryServiceClient interface {
	GetBusiness(ctx context.Context, businessID int64) (*directoryservice.Business, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
