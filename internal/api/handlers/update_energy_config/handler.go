package update_energy_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/electristay/ES-ChargingService/internal/api/handlers"
	"github.com/electristay/ES-ChargingService/internal/api/middleware"
	"github.com/electristay/ES-ChargingService/internal/service/hotelconfig"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgInvalidBody    = "некорректное тело запроса"
	msgInvalidConfig  = "некорректные данные конфигурации"
	msgForbidden      = "доступ запрещен"
)

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

// Handle PUT /api/v1/hotels/{hotelId}/energy-config
// Требует авторизации. Первый пользователь, сохранивший конфигурацию отеля,
// становится его менеджером; дальше обновлять может только он.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем hotelId из URL
	vars := mux.Vars(r)
	hotelIDStr := vars["hotelId"]

	hotelID, err := strconv.ParseInt(hotelIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /hotels/{hotelId}/energy-config - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /hotels/{hotelId}/energy-config - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateEnergyConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /hotels/{hotelId}/energy-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(hotelID, userID))
	if err != nil {
		switch {
		case errors.Is(err, hotelconfig.ErrAccessDenied):
			h.logger.Warn("PUT /hotels/{hotelId}/energy-config - Access denied: hotel_id=%d, user_id=%d",
				hotelID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, hotelconfig.ErrInvalidInput):
			h.logger.Warn("PUT /hotels/{hotelId}/energy-config - Invalid config data: hotel_id=%d, error=%v",
				hotelID, err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		default:
			h.logger.Error("PUT /hotels/{hotelId}/energy-config - Failed to update config: hotel_id=%d, error=%v",
				hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /hotels/{hotelId}/energy-config - Config updated successfully: hotel_id=%d, manager=%d",
		hotelID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
