package bookings

import (
	"context"
	"time"

	"github.com/electristay/ES-ChargingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований зарядных слотов
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.ChargingBooking) (*domain.ChargingBooking, error)
	GetByID(ctx context.Context, id int64) (*domain.ChargingBooking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.ChargingBooking, error)
	GetByHotelWithFilter(ctx context.Context, filter domain.HotelBookingsFilter) ([]*domain.ChargingBooking, error)
	CountActiveForSlot(ctx context.Context, hotelID int64, slotDate time.Time, slotID domain.SlotID) (int, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error
}

// ConfigRepository интерфейс репозитория энергетической конфигурации отелей.
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
