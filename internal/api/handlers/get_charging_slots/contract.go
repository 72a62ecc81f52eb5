package get_charging_slots

import (
	"context"

	getChargingSlots "github.com/electristay/ES-ChargingService/internal/usecase/get_charging_slots"
)

type GetChargingSlotsUseCase interface {
	Execute(ctx context.Context, req *getChargingSlots.Request) (*getChargingSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
