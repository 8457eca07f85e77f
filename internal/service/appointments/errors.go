package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrCannotCancel возвращается, когда запись не может быть отменена
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrCannotComplete возвращается, когда запись не может быть завершена
	ErrCannotComplete = errors.New("appointment cannot be completed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
