package get_charging_slots

import (
	"time"

	"github.com/electristay/ES-ChargingService/internal/domain"
)

// Request модель запроса котировок зарядных слотов на окно проживания
type Request struct {
	UserID       int64     // 0 для анонимного запроса, только для логирования
	HotelID      int64
	CheckIn      time.Time // дата заезда, без времени
	CheckOut     time.Time // дата выезда, исключительно
	Guests       int
	Tier         string // "Standard", "Silver", "Gold", "Platinum"
	VehicleModel string // опционально, только для логирования
}

// Response модель ответа с котировками слотов.
// Slots содержит по четыре котировки на каждый день окна в фиксированном
// порядке каталога.
type Response struct {
	HotelID      int64
	CheckIn      time.Time
	CheckOut     time.Time
	Nights       int
	OccupancyPct float64
	Season       domain.Season
	Tier         domain.MembershipTier
	Slots        []domain.PricedSlot
	FromCache    bool
}
