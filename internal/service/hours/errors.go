package hours

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("business not found")

	// ErrLocationNotFound возвращается, когда точка не найдена в бизнесе
	ErrLocationNotFound = errors.New("location not found")

	// ErrHoursNotFound возвращается, когда расписание работы не задано
	ErrHoursNotFound = errors.New("business hours not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidWindow возвращается, когда время открытия не раньше времени закрытия
	ErrInvalidWindow = errors.New("open time must be before close time")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
