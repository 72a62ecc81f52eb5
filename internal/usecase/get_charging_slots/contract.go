package get_charging_slots

import (
	"context"

	"github.com/electristay/ES-ChargingService/internal/domain"
)

// ConfigRepository интерфейс репозитория энергетической конфигурации отелей
type ConfigRepository interface {
	GetByHotelID(ctx context.Context, hotelID int64) (*domain.HotelEnergyConfig, error)
	UpdateForecast(ctx context.Context, hotelID int64, forecast []domain.ForecastEntry) error
}

// WeatherClient интерфейс клиента внешнего сервиса прогноза погоды
type WeatherClient interface {
	GetWeeklyForecastWithGracefulDegradation(ctx context.Context, city string) ([]domain.ForecastEntry, error)
}

// QuoteCache интерфейс кеша котировок.
// Промах и ошибка кеша неразличимы: в обоих случаях считаем заново.
type QuoteCache interface {
	Get(ctx context.Context, key string) ([]domain.PricedSlot, bool)
	Set(ctx context.Context, key string, slots []domain.PricedSlot)
}

// MetricsRecorder интерфейс для записи метрик движка ценообразования
type MetricsRecorder interface {
	ObserveSlotComputation(slots int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
