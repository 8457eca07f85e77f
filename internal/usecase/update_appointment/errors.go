package update_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = errors.New("update_appointment: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("update_appointment: service not found")

	// ErrSettingsNotFound возвращается, когда настройки салона не найдены
	ErrSettingsNotFound = errors.New("update_appointment: shop settings not found")

	// ErrCannotUpdate возвращается, когда запись нельзя изменить (не pending)
	ErrCannotUpdate = errors.New("update_appointment: appointment cannot be updated")

	// ErrShopClosed возвращается, когда салон закрыт в указанную дату
	ErrShopClosed = errors.New("update_appointment: shop is closed on this date")

	// ErrOutsideOperatingHours возвращается, когда слот выходит за рабочие часы салона
	ErrOutsideOperatingHours = errors.New("update_appointment: slot is outside operating hours")

	// ErrSlotNotAvailable возвращается, когда новый слот занят другой записью
	ErrSlotNotAvailable = errors.New("update_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)
