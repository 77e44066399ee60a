package move_appointment

import (
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if req.ActiveLocationID != nil && *req.ActiveLocationID <= 0 {
		return fmt.Errorf("%w: activeLocationID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.NewDate.IsZero() {
		return fmt.Errorf("%w: newDate is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.NewStartTime.IsZero() {
		return fmt.Errorf("%w: newStartTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.NewStartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid newStartTime format: %v", ErrInvalidInput, err)
	}

	// Перенос возможен только на границу слота сетки
	minutes, err := req.NewStartTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid newStartTime: %v", ErrInvalidInput, err)
	}
	if minutes%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: newStartTime must align to a %d-minute slot", ErrInvalidInput, domain.SlotStepMinutes)
	}

	return nil
}
