package request_slot_action

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/integrations/notifyservice"
)

// NotifyServiceClient интерфейс клиента для NotifyService
type NotifyServiceClient interface {
	EmitSlotAction(ctx context.Context, event *notifyservice.SlotActionEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
