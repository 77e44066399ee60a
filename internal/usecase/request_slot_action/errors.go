package request_slot_action

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("request_slot_action: invalid input data")

	// ErrInternal возвращается, когда хост-система не приняла событие
	ErrInternal = errors.New("request_slot_action: internal error")
)
