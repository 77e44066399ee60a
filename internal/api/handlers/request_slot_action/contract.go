package request_slot_action

import (
	"context"

	requestSlotAction "github.com/m04kA/SMC-CalendarService/internal/usecase/request_slot_action"
)

type RequestSlotActionUseCase interface {
	Execute(ctx context.Context, req *requestSlotAction.Request) (*requestSlotAction.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
