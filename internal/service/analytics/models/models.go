package models

import (
	"time"

	"github.com/electristay/ES-ChargingService/internal/domain"
)

// SessionResponse одна завершённая зарядная сессия
type SessionResponse struct {
	ID              int64   `json:"id"`
	HotelID         int64   `json:"hotelId"`
	StationID       int     `json:"stationId"`
	Date            string  `json:"date"` // "2025-03-30"
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	EnergyKWh       float64 `json:"energyKWh"`
	Cost            float64 `json:"cost"`
	RenewablePct    int     `json:"renewablePct"`
	PeakTime        bool    `json:"peakTime"`
	CO2SavedKg      float64 `json:"co2SavedKg"`
	Location        string  `json:"location,omitempty"`
}

// FromDomainSession конвертирует domain модель в DTO
func FromDomainSession(s *domain.ChargingSession) SessionResponse {
	return SessionResponse{
		ID:              s.ID,
		HotelID:         s.HotelID,
		StationID:       s.StationID,
		Date:            s.SessionDate.Format(domain.DateFormat),
		StartTime:       s.StartTime.String(),
		DurationMinutes: s.DurationMinutes,
		EnergyKWh:       s.EnergyKWh,
		Cost:            s.Cost,
		RenewablePct:    s.RenewablePct,
		PeakTime:        s.PeakTime,
		CO2SavedKg:      s.CO2SavedKg,
		Location:        s.Location,
	}
}

// EnvironmentalImpact экологический итог по сессиям гостя
type EnvironmentalImpact struct {
	CO2SavedKg        float64 `json:"co2SavedKg"`
	EquivalentTrees   int     `json:"equivalentTrees"`
	GasolineAvoidedL  float64 `json:"gasolineAvoidedL"`
	GreenEnergyKWh    float64 `json:"greenEnergyKWh"`
	GreenEnergyPct    float64 `json:"greenEnergyPct"`
}

// MonthlyGuestStats агрегаты сессий гостя за один календарный месяц
type MonthlyGuestStats struct {
	Month      string  `json:"month"` // "2025-03"
	Sessions   int     `json:"sessions"`
	EnergyKWh  float64 `json:"energyKWh"`
	Cost       float64 `json:"cost"`
	CO2SavedKg float64 `json:"co2SavedKg"`
}

// GuestReportResponse энергетический отчёт гостя
type GuestReportResponse struct {
	UserID          int64               `json:"userId"`
	TotalSessions   int                 `json:"totalSessions"`
	TotalEnergyKWh  float64             `json:"totalEnergyKWh"`
	TotalCost       float64             `json:"totalCost"`
	AvgRenewablePct float64             `json:"avgRenewablePct"`
	PeakSessions    int                 `json:"peakSessions"`
	Impact          EnvironmentalImpact `json:"impact"`
	Monthly         []MonthlyGuestStats `json:"monthly"`
	Sessions        []SessionResponse   `json:"sessions"`
}

// MonthlyHotelStats агрегаты сессий отеля за один календарный месяц
type MonthlyHotelStats struct {
	Month           string  `json:"month"` // "2025-03"
	Sessions        int     `json:"sessions"`
	EnergyKWh       float64 `json:"energyKWh"`
	Revenue         float64 `json:"revenue"`
	AvgRenewablePct float64 `json:"avgRenewablePct"`
	CO2SavedKg      float64 `json:"co2SavedKg"`
}

// SlotUsageStats доля использования одного окна зарядки
type SlotUsageStats struct {
	Slot      string  `json:"slot"`
	SlotName  string  `json:"slotName"`
	Sessions  int     `json:"sessions"`
	EnergyKWh float64 `json:"energyKWh"`
	EnergyPct float64 `json:"energyPct"`
}

// StationStats загрузка одной зарядной станции
type StationStats struct {
	StationID int     `json:"stationId"`
	Sessions  int     `json:"sessions"`
	EnergyKWh float64 `json:"energyKWh"`
}

// HotelierReportResponse отчёт менеджера отеля
type HotelierReportResponse struct {
	HotelID        int64               `json:"hotelId"`
	TotalSessions  int                 `json:"totalSessions"`
	TotalEnergyKWh float64             `json:"totalEnergyKWh"`
	TotalRevenue   float64             `json:"totalRevenue"`
	EnergyCost     float64             `json:"energyCost"`
	Profit         float64             `json:"profit"`
	Monthly        []MonthlyHotelStats `json:"monthly"`
	SlotUsage      []SlotUsageStats    `json:"slotUsage"`
	Stations       []StationStats      `json:"stations"`
	HourlyEnergy   []float64           `json:"hourlyEnergy"` // 24 значения, кВт·ч по часу начала сессии
}

// ReportWindow период, за который строится отчёт
type ReportWindow struct {
	Since *time.Time `json:"since,omitempty"`
}
