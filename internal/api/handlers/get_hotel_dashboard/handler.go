package get_hotel_dashboard

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/electristay/ES-ChargingService/internal/api/handlers"
	"github.com/electristay/ES-ChargingService/internal/domain"
	"github.com/electristay/ES-ChargingService/internal/report"
	"github.com/electristay/ES-ChargingService/internal/service/analytics/models"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgInvalidSince   = "некорректная дата начала периода"
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

// Handle GET /api/v1/hotels/{hotelId}/dashboard
// Query params: since (опционально, YYYY-MM-DD)
// Публичная HTML страница с обезличенными агрегатами отеля.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем hotelId из URL
	vars := mux.Vars(r)
	hotelIDStr := vars["hotelId"]

	hotelID, err := strconv.ParseInt(hotelIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{hotelId}/dashboard - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	window := models.ReportWindow{}
	if sinceStr := r.URL.Query().Get("since"); sinceStr != "" {
		since, err := time.Parse(domain.DateFormat, sinceStr)
		if err != nil {
			h.logger.Warn("GET /hotels/{hotelId}/dashboard - Invalid since param: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSince)
			return
		}
		window.Since = &since
	}

	result, err := h.service.HotelReport(r.Context(), hotelID, window)
	if err != nil {
		h.logger.Error("GET /hotels/{hotelId}/dashboard - Failed to build report: hotel_id=%d, error=%v",
			hotelID, err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := report.NewDashboard(result).Render(w); err != nil {
		h.logger.Error("GET /hotels/{hotelId}/dashboard - Failed to render dashboard: hotel_id=%d, error=%v",
			hotelID, err)
		return
	}

	h.logger.Info("GET /hotels/{hotelId}/dashboard - Dashboard rendered successfully: hotel_id=%d, sessions=%d",
		hotelID, result.TotalSessions)
}
