package get_hotel_report

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/electristay/ES-ChargingService/internal/api/handlers"
	"github.com/electristay/ES-ChargingService/internal/api/middleware"
	"github.com/electristay/ES-ChargingService/internal/domain"
	"github.com/electristay/ES-ChargingService/internal/service/analytics"
	"github.com/electristay/ES-ChargingService/internal/service/analytics/models"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgInvalidSince   = "некорректная дата начала периода"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service AnalyticsService
	logger  Logger
}

func NewHandler(service AnalyticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/energy-report
// Query params: since (опционально, YYYY-MM-DD)
// Доступен только менеджеру отеля.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем hotelId из URL
	vars := mux.Vars(r)
	hotelIDStr := vars["hotelId"]

	hotelID, err := strconv.ParseInt(hotelIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{hotelId}/energy-report - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /hotels/{hotelId}/energy-report - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	window := models.ReportWindow{}
	if sinceStr := r.URL.Query().Get("since"); sinceStr != "" {
		since, err := time.Parse(domain.DateFormat, sinceStr)
		if err != nil {
			h.logger.Warn("GET /hotels/{hotelId}/energy-report - Invalid since param: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSince)
			return
		}
		window.Since = &since
	}

	result, err := h.service.HotelierReport(r.Context(), hotelID, userID, window)
	if err != nil {
		if errors.Is(err, analytics.ErrAccessDenied) {
			h.logger.Warn("GET /hotels/{hotelId}/energy-report - Access denied: hotel_id=%d, user_id=%d",
				hotelID, userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}

		h.logger.Error("GET /hotels/{hotelId}/energy-report - Failed to build report: hotel_id=%d, error=%v",
			hotelID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /hotels/{hotelId}/energy-report - Report built successfully: hotel_id=%d, sessions=%d",
		hotelID, result.TotalSessions)
	handlers.RespondJSON(w, http.StatusOK, result)
}
