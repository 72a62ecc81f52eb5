package get_charging_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/electristay/ES-ChargingService/internal/api/handlers"
	"github.com/electristay/ES-ChargingService/internal/api/middleware"
	getChargingSlots "github.com/electristay/ES-ChargingService/internal/usecase/get_charging_slots"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgMissingDates   = "параметры checkIn и checkOut обязательны"
	msgInvalidParams  = "некорректные параметры запроса, даты ожидаются в формате YYYY-MM-DD"
	msgInvalidInput   = "некорректные входные данные"
)

type Handler struct {
	useCase GetChargingSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetChargingSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/charging-slots
// Query params: checkIn (required, YYYY-MM-DD), checkOut (required, YYYY-MM-DD),
// tier, guests, vehicle (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем hotelId из URL
	hotelIDStr := vars["hotelId"]
	hotelID, err := strconv.ParseInt(hotelIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/charging-slots - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	query := r.URL.Query()
	checkInStr := query.Get("checkIn")
	checkOutStr := query.Get("checkOut")
	if checkInStr == "" || checkOutStr == "" {
		h.logger.Warn("GET /hotels/{id}/charging-slots - Missing checkIn/checkOut: hotel_id=%d", hotelID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	// Эндпоинт публичный: userID есть только у аутентифицированных запросов
	userID, _ := middleware.UserIDFromContext(r.Context())

	useCaseReq, err := ToUseCaseRequest(hotelID, userID,
		checkInStr, checkOutStr, query.Get("tier"), query.Get("guests"), query.Get("vehicle"))
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/charging-slots - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getChargingSlots.ErrInvalidInput):
			h.logger.Warn("GET /hotels/{id}/charging-slots - Invalid input: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /hotels/{id}/charging-slots - Failed to get slots: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /hotels/{id}/charging-slots - Slots retrieved successfully: hotel_id=%d, nights=%d, slots_count=%d",
		hotelID, result.Nights, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
