package settings

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда настройки салона не найдены
	ErrSettingsNotFound = errors.New("shop settings not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimeRange возвращается при некорректном временном окне
	ErrInvalidTimeRange = errors.New("invalid operating hours range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
