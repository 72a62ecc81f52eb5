package update_energy_config

import (
	"github.com/electristay/ES-ChargingService/internal/service/hotelconfig/models"
)

// ForecastEntryRequest один день недельного прогноза в теле запроса
type ForecastEntryRequest struct {
	Day       string  `json:"day"`
	TempC     float64 `json:"temp"`
	Condition string  `json:"condition"`
}

// UpdateEnergyConfigRequest тело PUT запроса конфигурации отеля
type UpdateEnergyConfigRequest struct {
	HotelName        string                 `json:"hotelName"`
	City             string                 `json:"city"`
	OccupancyPct     float64                `json:"occupancyPct"`
	Season           string                 `json:"season"`
	ChargingStations int                    `json:"chargingStations"`
	RoomRate         float64                `json:"roomRate"`
	Forecast         []ForecastEntryRequest `json:"forecast,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в запрос сервиса
func (r *UpdateEnergyConfigRequest) ToServiceRequest(hotelID, userID int64) *models.UpdateConfigRequest {
	req := &models.UpdateConfigRequest{
		UserID:           userID,
		HotelID:          hotelID,
		HotelName:        r.HotelName,
		City:             r.City,
		OccupancyPct:     r.OccupancyPct,
		Season:           r.Season,
		ChargingStations: r.ChargingStations,
		RoomRate:         r.RoomRate,
	}

	for _, e := range r.Forecast {
		req.Forecast = append(req.Forecast, models.ForecastEntryInput{
			Day:       e.Day,
			TempC:     e.TempC,
			Condition: e.Condition,
		})
	}

	return req
}
