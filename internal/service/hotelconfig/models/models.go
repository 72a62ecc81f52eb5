package models

import (
	"time"

	"github.com/electristay/ES-ChargingService/internal/domain"
)

// Request модели

// ForecastEntryInput один день недельного прогноза во входном запросе
type ForecastEntryInput struct {
	Day       string  `json:"day"`
	TempC     float64 `json:"temp"`
	Condition string  `json:"condition"`
}

// UpdateConfigRequest запрос на обновление энергетической конфигурации отеля
type UpdateConfigRequest struct {
	UserID           int64                `json:"userId"`
	HotelID          int64                `json:"hotelId"`
	HotelName        string               `json:"hotelName"`
	City             string               `json:"city"`
	OccupancyPct     float64              `json:"occupancyPct"`
	Season           string               `json:"season"`
	ChargingStations int                  `json:"chargingStations"`
	RoomRate         float64              `json:"roomRate"`
	Forecast         []ForecastEntryInput `json:"forecast,omitempty"`
}

// ToDomainConfig конвертирует request в domain модель
func (r *UpdateConfigRequest) ToDomainConfig() *domain.HotelEnergyConfig {
	cfg := &domain.HotelEnergyConfig{
		HotelID:          r.HotelID,
		HotelName:        r.HotelName,
		City:             r.City,
		OccupancyPct:     r.OccupancyPct,
		Season:           domain.ParseSeason(r.Season),
		ChargingStations: r.ChargingStations,
		RoomRate:         r.RoomRate,
		ManagerUserID:    r.UserID,
	}

	for _, e := range r.Forecast {
		cfg.Forecast = append(cfg.Forecast, domain.ForecastEntry{
			Day:       e.Day,
			TempC:     e.TempC,
			Condition: domain.ParseWeatherCondition(e.Condition),
		})
	}

	return cfg
}

// Response модели

// ForecastEntryResponse один день недельного прогноза в ответе
type ForecastEntryResponse struct {
	Day       string  `json:"day"`
	TempC     float64 `json:"temp"`
	Condition string  `json:"condition"`
}

// ConfigResponse ответ с энергетической конфигурацией отеля
type ConfigResponse struct {
	HotelID          int64                   `json:"hotelId"`
	HotelName        string                  `json:"hotelName,omitempty"`
	City             string                  `json:"city,omitempty"`
	OccupancyPct     float64                 `json:"occupancyPct"`
	Season           string                  `json:"season"`
	ChargingStations int                     `json:"chargingStations"`
	RoomRate         float64                 `json:"roomRate"`
	ManagerUserID    int64                   `json:"managerUserId,omitempty"`
	Forecast         []ForecastEntryResponse `json:"forecast"`
	CreatedAt        time.Time               `json:"createdAt,omitempty"`
	UpdatedAt        time.Time               `json:"updatedAt,omitempty"`
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(cfg *domain.HotelEnergyConfig) *ConfigResponse {
	if cfg == nil {
		return nil
	}

	resp := &ConfigResponse{
		HotelID:          cfg.HotelID,
		HotelName:        cfg.HotelName,
		City:             cfg.City,
		OccupancyPct:     cfg.OccupancyPct,
		Season:           string(cfg.Season),
		ChargingStations: cfg.ChargingStations,
		RoomRate:         cfg.RoomRate,
		ManagerUserID:    cfg.ManagerUserID,
		Forecast:         make([]ForecastEntryResponse, 0, len(cfg.Forecast)),
		CreatedAt:        cfg.CreatedAt,
		UpdatedAt:        cfg.UpdatedAt,
	}

	for _, e := range cfg.Forecast {
		resp.Forecast = append(resp.Forecast, ForecastEntryResponse{
			Day:       e.Day,
			TempC:     e.TempC,
			Condition: string(e.Condition),
		})
	}

	return resp
}
