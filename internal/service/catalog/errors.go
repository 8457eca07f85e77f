package catalog

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
