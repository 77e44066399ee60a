package notifyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для отправки событий календаря хост-системе
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента NotifyService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// EmitScheduleMoved отправляет событие переноса записи.
// При недоступности NotifyService применяется graceful degradation:
// возвращается ErrServiceDegraded, перенос при этом остаётся успешным.
func (c *Client) EmitScheduleMoved(ctx context.Context, event *ScheduleMovedEvent) error {
	if err := c.post(ctx, "/internal/events/schedule-moved", event); err != nil {
		c.log.Error("NotifyService unavailable, schedule-moved event dropped for appointment_id=%d: %v",
			event.AppointmentID, err)
		return fmt.Errorf("%w: appointment_id=%d, error=%v", ErrServiceDegraded, event.AppointmentID, err)
	}

	c.log.Info("Schedule-moved event delivered for appointment_id=%d", event.AppointmentID)
	return nil
}

// EmitSlotAction отправляет запрос добавления записи или блокировки времени
// из контекстного меню пустого слота
func (c *Client) EmitSlotAction(ctx context.Context, event *SlotActionEvent) error {
	if err := c.post(ctx, "/internal/events/slot-action", event); err != nil {
		return fmt.Errorf("%w: action=%s, error=%v", ErrInternal, event.Action, err)
	}

	c.log.Info("Slot-action event delivered: action=%s, business_id=%d, date=%s, time=%s",
		event.Action, event.BusinessID, event.Date, event.StartTime)
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
