package analytics

import (
	"context"
	"time"

	"github.com/electristay/ES-ChargingService/internal/domain"
)

// SessionRepository интерфейс репозитория зарядных сессий
type SessionRepository interface {
	GetByUserID(ctx context.Context, userID int64, since *time.Time) ([]*domain.ChargingSession, error)
	GetByHotelID(ctx context.Context, hotelID int64, since *time.Time) ([]*domain.ChargingSession, error)
}

// ConfigRepository интерфейс репозитория конфигурации отелей.
// Нужен для проверки прав менеджера отеля.
type ConfigRepository interface {
	GetByHotelID(ctx context.Context, hotelID int64) (*domain.HotelEnergyConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
