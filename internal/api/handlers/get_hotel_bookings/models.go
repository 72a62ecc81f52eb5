package get_hotel_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/electristay/ES-ChargingService/internal/domain"
	"github.com/electristay/ES-ChargingService/internal/service/bookings/models"
	"github.com/electristay/ES-ChargingService/pkg/ptr"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	hotelID int64,
	userID int64,
	slotStr string,
	statusStr string,
	dateStr string,
	fromStr string,
	toStr string,
	includeInactiveStr string,
) (*models.GetHotelBookingsRequest, error) {
	req := &models.GetHotelBookingsRequest{
		UserID:          userID,
		HotelID:         hotelID,
		IncludeInactive: false, // По умолчанию только активные
	}

	if slotStr != "" {
		req.Slot = ptr.Ptr(slotStr)
	}

	if statusStr != "" {
		req.Status = ptr.Ptr(statusStr)
	}

	// date задаёт один день, from/to - период
	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = ptr.Ptr(date)
		req.EndDate = ptr.Ptr(date)
	} else if fromStr != "" && toStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, err
		}
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = ptr.Ptr(from)
		req.EndDate = ptr.Ptr(to)
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
