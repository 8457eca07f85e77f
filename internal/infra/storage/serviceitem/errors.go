package serviceitem

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("serviceitem.repository: service not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("serviceitem.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("serviceitem.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("serviceitem.repository: failed to scan row")
)
