package update_booking_status

import (
	"github.com/electristay/ES-ChargingService/internal/service/bookings/models"
)

// UpdateBookingStatusRequest тело запроса смены статуса бронирования
type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

// ToServiceRequest конвертирует HTTP запрос в запрос сервиса
func (r *UpdateBookingStatusRequest) ToServiceRequest(userID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		UserID: userID,
		Status: r.Status,
	}
}
