package hotelconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация отеля не найдена
	ErrConfigNotFound = errors.New("hotelconfig.repository: config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("hotelconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("hotelconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("hotelconfig.repository: failed to scan row")

	// ErrEncodeForecast возвращается при ошибке сериализации прогноза
	ErrEncodeForecast = errors.New("hotelconfig.repository: failed to encode forecast")
)
