package weatherservice

import "errors"

var (
	// ErrCityNotFound возвращается, когда прогноз для города не найден
	ErrCityNotFound = errors.New("forecast for city not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("weatherservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("weatherservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Указывает, что WeatherService недоступен и следует использовать
	// сохранённый прогноз отеля.
	ErrServiceDegraded = errors.New("weatherservice unavailable: graceful degradation applied")
)
