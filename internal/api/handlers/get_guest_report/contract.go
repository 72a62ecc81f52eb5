package get_guest_report

import (
	"context"

	"github.com/electristay/ES-ChargingService/internal/service/analytics/models"
)

type AnalyticsService interface {
	GuestReport(ctx context.Context, userID int64, window models.ReportWindow) (*models.GuestReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
