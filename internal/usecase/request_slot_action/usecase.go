package request_slot_action

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/notifyservice"
)

// UseCase use case для пересылки действия пустого слота хост-системе.
// Календарь не создаёт записи и не блокирует время сам - эти операции
// принадлежат хост-системе, здесь только передаются координаты слота.
type UseCase struct {
	notifyClient NotifyServiceClient
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(notifyClient NotifyServiceClient, logger Logger) *UseCase {
	return &UseCase{
		notifyClient: notifyClient,
		logger:       logger,
	}
}

// Execute выполняет пересылку действия
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RequestSlotAction: user=%d, action=%s, business=%d, date=%s, time=%s",
		req.UserID, req.Action, req.BusinessID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RequestSlotAction: validation failed: %v", err)
		return nil, err
	}

	// 2. Пересылаем событие хост-системе. В отличие от уведомления о
	// переносе здесь деградация невозможна: действие пользователя без
	// доставки события просто теряется, поэтому ошибка возвращается.
	event := &notifyservice.SlotActionEvent{
		Action:     req.Action,
		BusinessID: req.BusinessID,
		LocationID: req.LocationID,
		Date:       req.Date.Format(domain.DateFormat),
		StartTime:  req.StartTime.String(),
		UserID:     req.UserID,
	}

	if err := uc.notifyClient.EmitSlotAction(ctx, event); err != nil {
		uc.logger.Error("RequestSlotAction: failed to emit slot action event: %v", err)
		return nil, fmt.Errorf("%w: failed to forward slot action: %v", ErrInternal, err)
	}

	uc.logger.Info("RequestSlotAction: action %s forwarded for business=%d", req.Action, req.BusinessID)

	return &Response{
		Action:    req.Action,
		Date:      req.Date.Format(domain.DateFormat),
		StartTime: req.StartTime.String(),
		Forwarded: true,
	}, nil
}
