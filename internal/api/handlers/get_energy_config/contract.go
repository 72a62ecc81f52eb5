package get_energy_config

import (
	"context"

	"github.com/electristay/ES-ChargingService/internal/service/hotelconfig/models"
)

type ConfigService interface {
	Get(ctx context.Context, hotelID int64) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
