package create_booking

import (
	"context"
	"time"

	"github.com/electristay/ES-ChargingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.ChargingBooking) (*domain.ChargingBooking, error)
	CountActiveForSlot(ctx context.Context, hotelID int64, slotDate time.Time, slotID domain.SlotID) (int, error)
}

// ConfigRepository интерфейс репозитория энергетической конфигурации отелей
type ConfigRepository interface {
	GetByHotelID(ctx context.Context, hotelID int64) (*domain.HotelEnergyConfig, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
