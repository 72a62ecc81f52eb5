package get_hotel_dashboard

import (
	"context"

	"github.com/electristay/ES-ChargingService/internal/service/analytics/models"
)

type AnalyticsService interface {
	HotelReport(ctx context.Context, hotelID int64, window models.ReportWindow) (*models.HotelierReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
