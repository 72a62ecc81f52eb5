package get_guest_report

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/electristay/ES-ChargingService/internal/api/handlers"
	"github.com/electristay/ES-ChargingService/internal/api/middleware"
	"github.com/electristay/ES-ChargingService/internal/domain"
	"github.com/electristay/ES-ChargingService/internal/service/analytics/models"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidSince  = "некорректная дата начала периода"
	msgForbidden     = "доступ запрещен"
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

// Handle GET /api/v1/users/{userId}/energy-report
// Query params: since (опционально, YYYY-MM-DD)
// Пользователь видит только свой отчёт.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем userId из URL
	vars := mux.Vars(r)
	userIDStr := vars["userId"]

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{userId}/energy-report - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	authUserID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{userId}/energy-report - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Отчёт доступен только самому пользователю
	if authUserID != userID {
		h.logger.Warn("GET /users/{userId}/energy-report - Access denied: user_id=%d, auth_user_id=%d",
			userID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	window := models.ReportWindow{}
	if sinceStr := r.URL.Query().Get("since"); sinceStr != "" {
		since, err := time.Parse(domain.DateFormat, sinceStr)
		if err != nil {
			h.logger.Warn("GET /users/{userId}/energy-report - Invalid since param: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSince)
			return
		}
		window.Since = &since
	}

	result, err := h.service.GuestReport(r.Context(), userID, window)
	if err != nil {
		h.logger.Error("GET /users/{userId}/energy-report - Failed to build report: user_id=%d, error=%v",
			userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{userId}/energy-report - Report built successfully: user_id=%d, sessions=%d",
		userID, result.TotalSessions)
	handlers.RespondJSON(w, http.StatusOK, result)
}
