package get_week_schedule

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден в DirectoryService
	ErrBusinessNotFound = errors.New("get_week_schedule: business not found")

	// ErrLocationNotFound возвращается, когда точка не принадлежит бизнесу
	ErrLocationNotFound = errors.New("get_week_schedule: location not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_week_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_week_schedule: internal error")
)
