package create_booking

import (
	"time"

	"github.com/electristay/ES-ChargingService/internal/domain"
	"github.com/electristay/ES-ChargingService/pkg/types"
)

// Request модель запроса на бронирование зарядного слота.
// Цена от клиента не принимается: слот переоценивается на сервере.
type Request struct {
	UserID       int64
	HotelID      int64
	Slot         string    // "morning", "afternoon", "evening", "night"
	SlotDate     time.Time // календарный день начала слота, без времени
	CheckIn      time.Time // окно проживания для сводки стоимости (опционально)
	CheckOut     time.Time
	Tier         string
	VehicleModel *string
	Notes        *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64
	Reference    string
	UserID       int64
	HotelID      int64
	Slot         domain.SlotID
	SlotName     string
	SlotDate     time.Time
	StartTime    types.TimeString
	NominalHours int
	Status       string

	// Денормализованный снимок цены
	MembershipTier domain.MembershipTier
	BasePrice      float64
	DynamicPrice   float64
	TotalFactor    float64
	EstimatedCost  float64

	VehicleModel *string
	Notes        *string

	// Сводка стоимости проживания с зарядкой
	Summary *StaySummary

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StaySummary сводка стоимости: проживание плюс зарядная сессия
type StaySummary struct {
	Nights       int
	RoomRate     float64
	RoomCost     float64
	ChargingCost float64
	TotalCost    float64
}
