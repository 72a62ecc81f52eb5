package analytics

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/electristay/ES-ChargingService/internal/domain"
	configRepo "github.com/electristay/ES-ChargingService/internal/infra/storage/hotelconfig"
	"github.com/electristay/ES-ChargingService/internal/service/analytics/models"
	"github.com/electristay/ES-ChargingService/pkg/money"
)

// Экологические и экономические коэффициенты отчётов.
// Дерево поглощает ~21 кг CO2 в год, литр бензина ~0.22 л на кВт·ч пробега,
// закупочная цена энергии для отеля ~0.50 EUR за кВт·ч.
const (
	kgCO2PerTreeYear     = 21.0
	gasolineLitersPerKWh = 0.22
	energyCostPerKWh     = 0.50
)

const monthFormat = "2006-01"

// Service сервис аналитики по завершённым зарядным сессиям
type Service struct {
	sessionRepo SessionRepository
	configRepo  ConfigRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса аналитики
func NewService(
	sessionRepo SessionRepository,
	configRepo ConfigRepository,
	logger Logger,
) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		configRepo:  configRepo,
		logger:      logger,
	}
}

// GuestReport строит энергетический отчёт гостя: итоги, помесячная разбивка
// и экологический след по всем его сессиям
func (s *Service) GuestReport(ctx context.Context, userID int64, window models.ReportWindow) (*models.GuestReportResponse, error) {
	s.logger.Info("GuestReport: building report for user=%d", userID)

	sessions, err := s.sessionRepo.GetByUserID(ctx, userID, window.Since)
	if err != nil {
		s.logger.Error("GuestReport: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GuestReport - repository error: %v", ErrInternal, err)
	}

	report := &models.GuestReportResponse{
		UserID:   userID,
		Sessions: make([]models.SessionResponse, 0, len(sessions)),
		Monthly:  []models.MonthlyGuestStats{},
	}

	var totalEnergy, totalCost, totalCO2, weightedRenewable float64
	monthly := map[string]*models.MonthlyGuestStats{}

	for _, sess := range sessions {
		report.Sessions = append(report.Sessions, models.FromDomainSession(sess))

		totalEnergy += sess.EnergyKWh
		totalCost += sess.Cost
		totalCO2 += sess.CO2SavedKg
		weightedRenewable += sess.EnergyKWh * float64(sess.RenewablePct)
		if sess.PeakTime {
			report.PeakSessions++
		}

		key := sess.SessionDate.Format(monthFormat)
		m, ok := monthly[key]
		if !ok {
			m = &models.MonthlyGuestStats{Month: key}
			monthly[key] = m
		}
		m.Sessions++
		m.EnergyKWh = money.Round2(m.EnergyKWh + sess.EnergyKWh)
		m.Cost = money.Round2(m.Cost + sess.Cost)
		m.CO2SavedKg = money.Round2(m.CO2SavedKg + sess.CO2SavedKg)
	}

	report.TotalSessions = len(sessions)
	report.TotalEnergyKWh = money.Round2(totalEnergy)
	report.TotalCost = money.Round2(totalCost)

	if totalEnergy > 0 {
		report.AvgRenewablePct = money.Round2(weightedRenewable / totalEnergy)
	}

	report.Impact = buildImpact(totalEnergy, totalCO2, report.AvgRenewablePct)
	report.Monthly = sortedGuestMonths(monthly)

	s.logger.Info("GuestReport: built report for user=%d, sessions=%d", userID, len(sessions))
	return report, nil
}

// HotelierReport строит отчёт менеджера отеля: выручка, загрузка окон и
// станций, помесячная динамика. Доступен только менеджеру отеля.
func (s *Service) HotelierReport(ctx context.Context, hotelID, userID int64, window models.ReportWindow) (*models.HotelierReportResponse, error) {
	s.logger.Info("HotelierReport: building report for hotel=%d by user=%d", hotelID, userID)

	if err := s.checkManagerAccess(ctx, hotelID, userID); err != nil {
		return nil, err
	}

	return s.HotelReport(ctx, hotelID, window)
}

// HotelReport строит тот же отчёт без проверки прав.
// Используется публичной страницей дашборда, где агрегаты обезличены.
func (s *Service) HotelReport(ctx context.Context, hotelID int64, window models.ReportWindow) (*models.HotelierReportResponse, error) {
	sessions, err := s.sessionRepo.GetByHotelID(ctx, hotelID, window.Since)
	if err != nil {
		s.logger.Error("HotelReport: repository error for hotel=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: HotelReport - repository error: %v", ErrInternal, err)
	}

	report := buildHotelierReport(hotelID, sessions)

	s.logger.Info("HotelReport: built report for hotel=%d, sessions=%d", hotelID, len(sessions))
	return report, nil
}

// checkManagerAccess проверяет, что пользователь является менеджером отеля
func (s *Service) checkManagerAccess(ctx context.Context, hotelID, userID int64) error {
	cfg, err := s.configRepo.GetByHotelID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("checkManagerAccess: hotel=%d has no config, denying user=%d", hotelID, userID)
			return ErrAccessDenied
		}
		s.logger.Error("checkManagerAccess: failed to get config for hotel=%d: %v", hotelID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get hotel config: %v", ErrInternal, err)
	}

	if cfg.HasManager() && cfg.ManagerUserID == userID {
		return nil
	}

	s.logger.Warn("checkManagerAccess: user=%d is not a manager of hotel=%d", userID, hotelID)
	return ErrAccessDenied
}

// buildImpact считает экологический итог по суммарной энергии и CO2
func buildImpact(totalEnergy, totalCO2, avgRenewablePct float64) models.EnvironmentalImpact {
	impact := models.EnvironmentalImpact{
		CO2SavedKg:       money.Round2(totalCO2),
		EquivalentTrees:  int(math.Round(totalCO2 / kgCO2PerTreeYear)),
		GasolineAvoidedL: money.Round2(totalEnergy * gasolineLitersPerKWh),
		GreenEnergyKWh:   money.Round2(totalEnergy * avgRenewablePct / 100),
		GreenEnergyPct:   avgRenewablePct,
	}
	return impact
}

func buildHotelierReport(hotelID int64, sessions []*domain.ChargingSession) *models.HotelierReportResponse {
	report := &models.HotelierReportResponse{
		HotelID:      hotelID,
		Monthly:      []models.MonthlyHotelStats{},
		SlotUsage:    []models.SlotUsageStats{},
		Stations:     []models.StationStats{},
		HourlyEnergy: make([]float64, 24),
	}

	var totalEnergy, totalRevenue float64
	monthly := map[string]*models.MonthlyHotelStats{}
	monthlyRenewable := map[string]float64{}
	slotEnergy := map[domain.SlotID]*models.SlotUsageStats{}
	stations := map[int]*models.StationStats{}

	for _, sess := range sessions {
		totalEnergy += sess.EnergyKWh
		totalRevenue += sess.Cost

		key := sess.SessionDate.Format(monthFormat)
		m, ok := monthly[key]
		if !ok {
			m = &models.MonthlyHotelStats{Month: key}
			monthly[key] = m
		}
		m.Sessions++
		m.EnergyKWh = money.Round2(m.EnergyKWh + sess.EnergyKWh)
		m.Revenue = money.Round2(m.Revenue + sess.Cost)
		m.CO2SavedKg = money.Round2(m.CO2SavedKg + sess.CO2SavedKg)
		monthlyRenewable[key] += sess.EnergyKWh * float64(sess.RenewablePct)

		slotID := slotForHour(startHour(sess))
		su, ok := slotEnergy[slotID]
		if !ok {
			tmpl, _ := domain.SlotTemplateByID(slotID)
			su = &models.SlotUsageStats{Slot: string(slotID), SlotName: tmpl.Name}
			slotEnergy[slotID] = su
		}
		su.Sessions++
		su.EnergyKWh = money.Round2(su.EnergyKWh + sess.EnergyKWh)

		st, ok := stations[sess.StationID]
		if !ok {
			st = &models.StationStats{StationID: sess.StationID}
			stations[sess.StationID] = st
		}
		st.Sessions++
		st.EnergyKWh = money.Round2(st.EnergyKWh + sess.EnergyKWh)

		if h := startHour(sess); h >= 0 && h < 24 {
			report.HourlyEnergy[h] = money.Round2(report.HourlyEnergy[h] + sess.EnergyKWh)
		}
	}

	report.TotalSessions = len(sessions)
	report.TotalEnergyKWh = money.Round2(totalEnergy)
	report.TotalRevenue = money.Round2(totalRevenue)
	report.EnergyCost = money.Round2(totalEnergy * energyCostPerKWh)
	report.Profit = money.Round2(report.TotalRevenue - report.EnergyCost)

	// Средний renewable по месяцу взвешиваем энергией сессий
	for key, m := range monthly {
		if m.EnergyKWh > 0 {
			m.AvgRenewablePct = money.Round2(monthlyRenewable[key] / m.EnergyKWh)
		}
	}

	report.Monthly = sortedHotelMonths(monthly)
	report.SlotUsage = sortedSlotUsage(slotEnergy, totalEnergy)
	report.Stations = sortedStations(stations)

	return report
}

// startHour возвращает час начала сессии, -1 если время не разобралось
func startHour(sess *domain.ChargingSession) int {
	h, err := sess.StartTime.Hour()
	if err != nil {
		return -1
	}
	return h
}

// slotForHour относит час начала сессии к одному из четырёх окон зарядки
func slotForHour(hour int) domain.SlotID {
	switch {
	case hour >= 22 || (hour >= 0 && hour < 6):
		return domain.SlotOvernight
	case hour >= 6 && hour < 12:
		return domain.SlotMorning
	case hour >= 12 && hour < 17:
		return domain.SlotAfternoon
	default:
		return domain.SlotEvening
	}
}

func sortedGuestMonths(monthly map[string]*models.MonthlyGuestStats) []models.MonthlyGuestStats {
	out := make([]models.MonthlyGuestStats, 0, len(monthly))
	for _, m := range monthly {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

func sortedHotelMonths(monthly map[string]*models.MonthlyHotelStats) []models.MonthlyHotelStats {
	out := make([]models.MonthlyHotelStats, 0, len(monthly))
	for _, m := range monthly {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// sortedSlotUsage возвращает окна в порядке каталога с долями энергии
func sortedSlotUsage(slotEnergy map[domain.SlotID]*models.SlotUsageStats, totalEnergy float64) []models.SlotUsageStats {
	out := make([]models.SlotUsageStats, 0, len(slotEnergy))
	for _, tmpl := range domain.SlotTemplates {
		su, ok := slotEnergy[tmpl.ID]
		if !ok {
			continue
		}
		if totalEnergy > 0 {
			su.EnergyPct = money.Round2(su.EnergyKWh / totalEnergy * 100)
		}
		out = append(out, *su)
	}
	return out
}

func sortedStations(stations map[int]*models.StationStats) []models.StationStats {
	out := make([]models.StationStats, 0, len(stations))
	for _, st := range stations {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StationID < out[j].StationID })
	return out
}
