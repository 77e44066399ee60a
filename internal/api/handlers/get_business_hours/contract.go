package get_business_hours

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/hours/models"
)

type HoursService interface {
	GetForLocation(ctx context.Context, businessID, locationID int64) (*models.HoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
