package hotelconfig

import (
	"context"

	"github.com/electristay/ES-ChargingService/internal/domain"
)

// ConfigRepository интерфейс репозитория энергетической конфигурации отелей
type ConfigRepository interface {
	GetByHotelID(ctx context.Context, hotelID int64) (*domain.HotelEnergyConfig, error)
	Upsert(ctx context.Context, cfg *domain.HotelEnergyConfig) (*domain.HotelEnergyConfig, error)
}

// QuoteInvalidator сбрасывает закешированные котировки отеля.
// Конфигурация - вход движка цен, её изменение делает котировки неактуальными.
type QuoteInvalidator interface {
	InvalidateHotel(ctx context.Context, hotelID int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
