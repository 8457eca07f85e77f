package create_appointment

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = errors.New("create_appointment: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrSettingsNotFound возвращается, когда настройки салона не найдены
	ErrSettingsNotFound = errors.New("create_appointment: shop settings not found")

	// ErrShopClosed возвращается, когда салон закрыт в указанную дату
	ErrShopClosed = errors.New("create_appointment: shop is closed on this date")

	// ErrOutsideOperatingHours возвращается, когда слот выходит за рабочие часы салона
	ErrOutsideOperatingHours = errors.New("create_appointment: slot is outside operating hours")

	// ErrSlotNotAvailable возвращается, когда выбранный слот занят другой записью
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidRecurrence возвращается при некорректных параметрах повторения
	ErrInvalidRecurrence = errors.New("create_appointment: invalid recurrence settings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
