package models

import (
	"errors"
	"time"

	"github.com/electristay/ES-ChargingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidSlot возвращается при некорректном идентификаторе слота
	ErrInvalidSlot = errors.New("invalid slot id")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetHotelBookingsRequest запрос на получение бронирований отеля
type GetHotelBookingsRequest struct {
	UserID          int64      `json:"userId"`
	HotelID         int64      `json:"hotelId"`
	Slot            *string    `json:"slot,omitempty"`            // Фильтр по слоту (опционально)
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetHotelBookingsRequest) ToDomainFilter() (domain.HotelBookingsFilter, error) {
	filter := domain.HotelBookingsFilter{
		HotelID:         r.HotelID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Slot != nil {
		slotID, ok := domain.ParseSlotID(*r.Slot)
		if !ok {
			return filter, ErrInvalidSlot
		}
		filter.SlotID = &slotID
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования зарядного слота
type BookingResponse struct {
	ID           int64  `json:"id"`
	Reference    string `json:"reference"`
	UserID       int64  `json:"userId"`
	HotelID      int64  `json:"hotelId"`
	Slot         string `json:"slot"`
	SlotName     string `json:"slotName"`
	SlotDate     string `json:"slotDate"`  // "2025-03-30"
	StartTime    string `json:"startTime"` // "22:00"
	NominalHours int    `json:"nominalHours"`
	Status       string `json:"status"`

	// Денормализованный снимок цены на момент бронирования
	MembershipTier string  `json:"membershipTier"`
	BasePrice      float64 `json:"basePrice"`
	DynamicPrice   float64 `json:"dynamicPrice"`
	TotalFactor    float64 `json:"totalFactor"`
	EstimatedCost  float64 `json:"estimatedCost"`

	VehicleModel *string `json:"vehicleModel,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.ChargingBooking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		Reference:          b.Reference,
		UserID:             b.UserID,
		HotelID:            b.HotelID,
		Slot:               string(b.SlotID),
		SlotName:           b.SlotName,
		SlotDate:           b.SlotDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		NominalHours:       b.NominalHours,
		Status:             string(b.Status),
		MembershipTier:     string(b.MembershipTier),
		BasePrice:          b.BasePrice,
		DynamicPrice:       b.DynamicPrice,
		TotalFactor:        b.TotalFactor,
		EstimatedCost:      b.EstimatedCost,
		VehicleModel:       b.VehicleModel,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.ChargingBooking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCharging,
		domain.StatusCompleted,
		domain.StatusCancelledByGuest,
		domain.StatusCancelledByHotel,
		domain.StatusNoShow,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
