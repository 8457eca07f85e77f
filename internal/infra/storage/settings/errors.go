package settings

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда настройки салона ещё не созданы
	ErrSettingsNotFound = errors.New("settings.repository: shop settings not found")

	// ErrSpecialDayNotFound возвращается, когда особая дата не найдена
	ErrSpecialDayNotFound = errors.New("settings.repository: special day not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("settings.repository: failed to scan row")
)
