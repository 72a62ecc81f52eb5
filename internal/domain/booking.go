package domain

import (
	"time"

	"github.com/electristay/ES-ChargingService/pkg/types"
)

// BookingStatus represents the status of a charging booking
type BookingStatus string

const (
	StatusPending          BookingStatus = "pending"
	StatusConfirmed        BookingStatus = "confirmed"
	StatusCharging         BookingStatus = "charging"
	StatusCompleted        BookingStatus = "completed"
	StatusCancelledByGuest BookingStatus = "cancelled_by_guest"
	StatusCancelledByHotel BookingStatus = "cancelled_by_hotel"
	StatusNoShow           BookingStatus = "no_show"
)

// ChargingBooking represents a booked charging slot
type ChargingBooking struct {
	ID        int64
	Reference string // external uuid reference shown to the guest
	UserID    int64
	HotelID   int64

	SlotID       SlotID
	SlotName     string
	SlotDate     time.Time // calendar day the slot starts on
	StartTime    types.TimeString
	NominalHours int
	Status       BookingStatus

	// Denormalized pricing snapshot for history
	MembershipTier MembershipTier
	BasePrice      float64
	DynamicPrice   float64
	TotalFactor    float64
	EstimatedCost  float64

	VehicleModel *string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies a charging station
func (b *ChargingBooking) IsActive() bool {
	return b.Status != StatusCancelledByGuest &&
		b.Status != StatusCancelledByHotel &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *ChargingBooking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *ChargingBooking) IsCancelled() bool {
	return b.Status == StatusCancelledByGuest || b.Status == StatusCancelledByHotel
}

// HotelBookingsFilter фильтр для получения бронирований отеля
type HotelBookingsFilter struct {
	HotelID         int64
	SlotID          *SlotID        // фильтр по слоту (опционально)
	StartDate       *time.Time     // начало периода (опционально)
	EndDate         *time.Time     // конец периода (опционально)
	Status          *BookingStatus // фильтр по статусу (опционально)
	IncludeInactive bool           // включать ли отменённые и no-show
}
