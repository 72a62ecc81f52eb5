package get_hotel_report

import (
	"context"

	"github.com/electristay/ES-ChargingService/internal/service/analytics/models"
)

type AnalyticsService interface {
	HotelierReport(ctx context.Context, hotelID, userID int64, window models.ReportWindow) (*models.HotelierReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
