package domain

import "time"

// HotelEnergyConfig is the per-hotel input the pricing engine depends on:
// occupancy, season, station capacity and the stored weekly forecast.
// The forecast is refreshed from the weather feed when it is reachable and
// otherwise serves as the deterministic fallback.
type HotelEnergyConfig struct {
	HotelID          int64
	HotelName        string
	City             string
	OccupancyPct     float64
	Season           Season
	ChargingStations int
	RoomRate         float64 // EUR per night, used for booking summaries
	ManagerUserID    int64
	Forecast         []ForecastEntry
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DefaultHotelEnergyConfig returns the configuration used when a hotel has
// no stored config yet.
func DefaultHotelEnergyConfig(hotelID int64) *HotelEnergyConfig {
	return &HotelEnergyConfig{
		HotelID:          hotelID,
		OccupancyPct:     DefaultOccupancyPct,
		Season:           SeasonPeak,
		ChargingStations: DefaultChargingStations,
		RoomRate:         DefaultRoomRate,
		Forecast:         DefaultForecast,
	}
}

// HasManager returns true if a manager is assigned to the hotel
func (c *HotelEnergyConfig) HasManager() bool {
	return c.ManagerUserID > 0
}
