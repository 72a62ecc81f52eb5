package get_hotel_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/electristay/ES-ChargingService/internal/api/handlers"
	"github.com/electristay/ES-ChargingService/internal/api/middleware"
	"github.com/electristay/ES-ChargingService/internal/service/bookings"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgInvalidParams  = "некорректные параметры фильтра"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/bookings
// Query params: slot, status, date | from+to, includeInactive (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем hotelId из URL
	vars := mux.Vars(r)
	hotelIDStr := vars["hotelId"]

	hotelID, err := strconv.ParseInt(hotelIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{hotelId}/bookings - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /hotels/{hotelId}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(hotelID, userID,
		query.Get("slot"), query.Get("status"), query.Get("date"),
		query.Get("from"), query.Get("to"), query.Get("includeInactive"))
	if err != nil {
		h.logger.Warn("GET /hotels/{hotelId}/bookings - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Получаем бронирования (сервис сам проверит права менеджера)
	result, err := h.service.GetHotelBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /hotels/{hotelId}/bookings - Access denied: hotel_id=%d, user_id=%d",
				hotelID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /hotels/{hotelId}/bookings - Invalid filter: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /hotels/{hotelId}/bookings - Failed to get bookings: hotel_id=%d, error=%v",
				hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/{hotelId}/bookings - Bookings retrieved successfully: hotel_id=%d, count=%d",
		hotelID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
