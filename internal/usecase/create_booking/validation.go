package create_booking

import (
	"fmt"
	"time"

	"github.com/electristay/ES-ChargingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.HotelID <= 0 {
		return fmt.Errorf("%w: hotelId must be positive", ErrInvalidInput)
	}

	if _, ok := domain.ParseSlotID(req.Slot); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidSlot, req.Slot)
	}

	if req.SlotDate.IsZero() {
		return fmt.Errorf("%w: slotDate is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что день слота не в прошлом
func validateDate(slotDate, now time.Time) error {
	dateOnly := time.Date(slotDate.Year(), slotDate.Month(), slotDate.Day(), 0, 0, 0, 0, slotDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}
