package get_charging_slots

import (
	"fmt"

	"github.com/electristay/ES-ChargingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Пустое окно (checkOut <= checkIn) валидно и даёт пустой список котировок.
func validateRequest(req *Request) error {
	if req.HotelID <= 0 {
		return fmt.Errorf("%w: hotelId must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	if req.Guests < 0 {
		return fmt.Errorf("%w: guests must not be negative", ErrInvalidInput)
	}

	window := domain.StayWindow{CheckIn: req.CheckIn, CheckOut: req.CheckOut, Guests: req.Guests}
	if window.Nights() > domain.MaxStayNights {
		return fmt.Errorf("%w: stay must not exceed %d nights", ErrInvalidInput, domain.MaxStayNights)
	}

	return nil
}
