package get_energy_config

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/electristay/ES-ChargingService/internal/api/handlers"
)

const msgInvalidHotelID = "некорректный ID отеля"

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/energy-config
// Публичный endpoint - без авторизации. Отель без сохранённой конфигурации
// получает значения по умолчанию.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем hotelId из URL
	vars := mux.Vars(r)
	hotelIDStr := vars["hotelId"]

	hotelID, err := strconv.ParseInt(hotelIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{hotelId}/energy-config - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	result, err := h.service.Get(r.Context(), hotelID)
	if err != nil {
		h.logger.Error("GET /hotels/{hotelId}/energy-config - Failed to get config: hotel_id=%d, error=%v",
			hotelID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /hotels/{hotelId}/energy-config - Config retrieved successfully: hotel_id=%d", hotelID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
