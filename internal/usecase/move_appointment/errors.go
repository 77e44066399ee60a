package move_appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда переносимая запись не найдена
	// (устаревшее состояние клиента - пользователю нужно обновить страницу)
	ErrAppointmentNotFound = errors.New("move_appointment: appointment not found")

	// ErrAppointmentCancelled возвращается при попытке перенести отменённую запись
	ErrAppointmentCancelled = errors.New("move_appointment: appointment is cancelled")

	// ErrOutsideBusinessHours возвращается, когда целевой слот вне рабочих часов точки
	ErrOutsideBusinessHours = errors.New("move_appointment: target slot is outside business hours")

	// ErrScheduleConflict возвращается, когда перенос пересекается с другой
	// записью того же мастера. Это не транзиентная ошибка - пользователь
	// должен выбрать другой слот.
	ErrScheduleConflict = errors.New("move_appointment: schedule conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("move_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("move_appointment: internal error")
)

// ConflictError несёт детали конфликта для сообщения пользователю.
// Разворачивается в ErrScheduleConflict, поэтому обработчики могут
// продолжать использовать errors.Is.
type ConflictError struct {
	// Conflicting блокирующая запись; nil, когда конфликт обнаружен поздно
	// (CAS по версии не прошёл) и конкретную запись определить нельзя
	Conflicting *domain.Appointment
}

// Error возвращает описание конфликта с указанием блокирующей записи
func (e *ConflictError) Error() string {
	if e.Conflicting == nil {
		return "move_appointment: schedule conflict with a concurrent update"
	}
	return fmt.Sprintf("move_appointment: schedule conflict: %s is already booked at %s (%d min)",
		e.Conflicting.StaffName, e.Conflicting.StartTime.Clock12(), e.Conflicting.DurationMinutes)
}

// Unwrap позволяет errors.Is(err, ErrScheduleConflict)
func (e *ConflictError) Unwrap() error {
	return ErrScheduleConflict
}
