package domain

import (
	"time"

	"github.com/electristay/ES-ChargingService/pkg/types"
)

// ChargingSession is one completed charging session, the raw material for
// guest and hotelier analytics. Sessions are recorded by the charging
// stations and are not produced by the pricing engine.
type ChargingSession struct {
	ID              int64
	UserID          int64
	HotelID         int64
	StationID       int
	SessionDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	EnergyKWh       float64
	Cost            float64
	RenewablePct    int
	PeakTime        bool
	CO2SavedKg      float64
	Location        string
}
