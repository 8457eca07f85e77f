package get_available_slots

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("service not found")

	// ErrSettingsNotFound возвращается, когда настройки салона не найдены
	ErrSettingsNotFound = errors.New("shop settings not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
