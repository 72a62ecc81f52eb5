package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electristay/ES-ChargingService/internal/domain"
	hotelconfigRepo "github.com/electristay/ES-ChargingService/internal/infra/storage/hotelconfig"
	"github.com/electristay/ES-ChargingService/internal/service/analytics/models"
)

type fakeSessionRepo struct {
	sessions []*domain.ChargingSession
	err      error
}

func (f *fakeSessionRepo) GetByUserID(_ context.Context, _ int64, _ *time.Time) ([]*domain.ChargingSession, error) {
	return f.sessions, f.err
}

func (f *fakeSessionRepo) GetByHotelID(_ context.Context, _ int64, _ *time.Time) ([]*domain.ChargingSession, error) {
	return f.sessions, f.err
}

type fakeConfigRepo struct {
	cfg *domain.HotelEnergyConfig
	err error
}

func (f *fakeConfigRepo) GetByHotelID(_ context.Context, _ int64) (*domain.HotelEnergyConfig, error) {
	return f.cfg, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGuestReport_Aggregates(t *testing.T) {
	sessions := []*domain.ChargingSession{
		{
			ID: 1, UserID: 42, HotelID: 1, StationID: 1,
			SessionDate: date(2025, time.March, 10), StartTime: "22:00",
			DurationMinutes: 480, EnergyKWh: 20, Cost: 9,
			RenewablePct: 60, CO2SavedKg: 10.5,
		},
		{
			ID: 2, UserID: 42, HotelID: 1, StationID: 2,
			SessionDate: date(2025, time.April, 2), StartTime: "08:00",
			DurationMinutes: 240, EnergyKWh: 10, Cost: 6,
			RenewablePct: 90, CO2SavedKg: 10.5, PeakTime: true,
		},
	}

	svc := NewService(&fakeSessionRepo{sessions: sessions}, &fakeConfigRepo{}, nopLogger{})

	report, err := svc.GuestReport(context.Background(), 42, models.ReportWindow{})
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalSessions)
	assert.Equal(t, 30.0, report.TotalEnergyKWh)
	assert.Equal(t, 15.0, report.TotalCost)
	assert.Equal(t, 1, report.PeakSessions)

	// Средний renewable взвешен энергией: (20*60 + 10*90) / 30 = 70
	assert.Equal(t, 70.0, report.AvgRenewablePct)

	assert.Equal(t, 21.0, report.Impact.CO2SavedKg)
	assert.Equal(t, 1, report.Impact.EquivalentTrees)
	assert.Equal(t, 6.6, report.Impact.GasolineAvoidedL)
	assert.Equal(t, 21.0, report.Impact.GreenEnergyKWh)

	require.Len(t, report.Monthly, 2)
	assert.Equal(t, "2025-03", report.Monthly[0].Month)
	assert.Equal(t, 20.0, report.Monthly[0].EnergyKWh)
	assert.Equal(t, "2025-04", report.Monthly[1].Month)
	assert.Equal(t, 10.0, report.Monthly[1].EnergyKWh)

	require.Len(t, report.Sessions, 2)
	assert.Equal(t, "2025-03-10", report.Sessions[0].Date)
}

func TestGuestReport_NoSessions(t *testing.T) {
	svc := NewService(&fakeSessionRepo{}, &fakeConfigRepo{}, nopLogger{})

	report, err := svc.GuestReport(context.Background(), 42, models.ReportWindow{})
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalSessions)
	assert.Equal(t, 0.0, report.AvgRenewablePct)
	assert.Equal(t, 0, report.Impact.EquivalentTrees)
	assert.NotNil(t, report.Sessions)
	assert.Empty(t, report.Sessions)
	assert.Empty(t, report.Monthly)
}

func TestHotelierReport_Aggregates(t *testing.T) {
	sessions := []*domain.ChargingSession{
		{
			ID: 1, HotelID: 7, StationID: 1,
			SessionDate: date(2025, time.March, 5), StartTime: "07:30",
			EnergyKWh: 10, Cost: 5, RenewablePct: 50, CO2SavedKg: 4,
		},
		{
			ID: 2, HotelID: 7, StationID: 2,
			SessionDate: date(2025, time.March, 6), StartTime: "23:00",
			EnergyKWh: 20, Cost: 12, RenewablePct: 80, CO2SavedKg: 9,
		},
		{
			ID: 3, HotelID: 7, StationID: 1,
			SessionDate: date(2025, time.April, 1), StartTime: "13:00",
			EnergyKWh: 10, Cost: 8, RenewablePct: 40, CO2SavedKg: 3,
		},
	}

	cfg := &domain.HotelEnergyConfig{HotelID: 7, ManagerUserID: 77}
	svc := NewService(&fakeSessionRepo{sessions: sessions}, &fakeConfigRepo{cfg: cfg}, nopLogger{})

	report, err := svc.HotelierReport(context.Background(), 7, 77, models.ReportWindow{})
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalSessions)
	assert.Equal(t, 40.0, report.TotalEnergyKWh)
	assert.Equal(t, 25.0, report.TotalRevenue)
	assert.Equal(t, 20.0, report.EnergyCost)
	assert.Equal(t, 5.0, report.Profit)

	// Окна идут в порядке каталога, вечернее окно не использовалось
	require.Len(t, report.SlotUsage, 3)
	assert.Equal(t, "morning", report.SlotUsage[0].Slot)
	assert.Equal(t, 25.0, report.SlotUsage[0].EnergyPct)
	assert.Equal(t, "afternoon", report.SlotUsage[1].Slot)
	assert.Equal(t, "night", report.SlotUsage[2].Slot)
	assert.Equal(t, 50.0, report.SlotUsage[2].EnergyPct)

	require.Len(t, report.Stations, 2)
	assert.Equal(t, 1, report.Stations[0].StationID)
	assert.Equal(t, 2, report.Stations[0].Sessions)
	assert.Equal(t, 20.0, report.Stations[0].EnergyKWh)
	assert.Equal(t, 2, report.Stations[1].StationID)

	assert.Equal(t, 10.0, report.HourlyEnergy[7])
	assert.Equal(t, 10.0, report.HourlyEnergy[13])
	assert.Equal(t, 20.0, report.HourlyEnergy[23])

	require.Len(t, report.Monthly, 2)
	assert.Equal(t, "2025-03", report.Monthly[0].Month)
	assert.Equal(t, 2, report.Monthly[0].Sessions)
	assert.Equal(t, 17.0, report.Monthly[0].Revenue)
	// (10*50 + 20*80) / 30 = 70
	assert.Equal(t, 70.0, report.Monthly[0].AvgRenewablePct)
	assert.Equal(t, 40.0, report.Monthly[1].AvgRenewablePct)
}

func TestHotelierReport_AccessDenied(t *testing.T) {
	cfg := &domain.HotelEnergyConfig{HotelID: 7, ManagerUserID: 77}
	svc := NewService(&fakeSessionRepo{}, &fakeConfigRepo{cfg: cfg}, nopLogger{})

	_, err := svc.HotelierReport(context.Background(), 7, 99, models.ReportWindow{})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestHotelierReport_NoConfigDenied(t *testing.T) {
	svc := NewService(&fakeSessionRepo{}, &fakeConfigRepo{err: hotelconfigRepo.ErrConfigNotFound}, nopLogger{})

	_, err := svc.HotelierReport(context.Background(), 7, 77, models.ReportWindow{})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
