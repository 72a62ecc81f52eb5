package weatherservice

// ForecastEntry один день недельного прогноза от внешнего сервиса.
// Condition приходит свободной строкой и нормализуется на границе домена.
type ForecastEntry struct {
	Day       string  `json:"day"`  // короткое имя дня недели: "Mon".."Sun"
	TempC     float64 `json:"temp"` // °C
	Condition string  `json:"condition"`
}

// ForecastResponse ответ внешнего сервиса прогноза
type ForecastResponse struct {
	City    string          `json:"city"`
	Entries []ForecastEntry `json:"forecast"`
}

// ErrorResponse модель ошибки от WeatherService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
