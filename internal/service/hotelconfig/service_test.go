package hotelconfig

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electristay/ES-ChargingService/internal/domain"
	configRepo "github.com/electristay/ES-ChargingService/internal/infra/storage/hotelconfig"
	"github.com/electristay/ES-ChargingService/internal/service/hotelconfig/models"
)

type fakeConfigRepo struct {
	configs map[int64]*domain.HotelEnergyConfig
	upserts int
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{configs: map[int64]*domain.HotelEnergyConfig{}}
}

func (f *fakeConfigRepo) GetByHotelID(_ context.Context, hotelID int64) (*domain.HotelEnergyConfig, error) {
	cfg, ok := f.configs[hotelID]
	if !ok {
		return nil, configRepo.ErrConfigNotFound
	}
	return cfg, nil
}

func (f *fakeConfigRepo) Upsert(_ context.Context, cfg *domain.HotelEnergyConfig) (*domain.HotelEnergyConfig, error) {
	f.upserts++
	f.configs[cfg.HotelID] = cfg
	return cfg, nil
}

type fakeInvalidator struct {
	invalidated []int64
}

func (f *fakeInvalidator) InvalidateHotel(_ context.Context, hotelID int64) {
	f.invalidated = append(f.invalidated, hotelID)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func validUpdateRequest(hotelID, userID int64) *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		UserID:           userID,
		HotelID:          hotelID,
		HotelName:        "Grand Hotel",
		City:             "Amsterdam",
		OccupancyPct:     78,
		Season:           "Peak",
		ChargingStations: 4,
		RoomRate:         234,
	}
}

func TestService_Get_ReturnsDefaultsForUnknownHotel(t *testing.T) {
	svc := NewService(newFakeConfigRepo(), &fakeInvalidator{}, nopLogger{})

	resp, err := svc.Get(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.HotelID)
	assert.Equal(t, domain.DefaultOccupancyPct, resp.OccupancyPct)
	assert.NotEmpty(t, resp.Forecast)
	assert.Zero(t, resp.ManagerUserID)
}

func TestService_Update_FirstWriterBecomesManager(t *testing.T) {
	repo := newFakeConfigRepo()
	quotes := &fakeInvalidator{}
	svc := NewService(repo, quotes, nopLogger{})

	resp, err := svc.Update(context.Background(), validUpdateRequest(42, 7))

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ManagerUserID)
	assert.Equal(t, 1, repo.upserts)
	// Прогноз не присылали - новый отель получает дефолтный
	assert.Len(t, resp.Forecast, len(domain.DefaultForecast))
	// Конфигурация изменилась - котировки отеля сброшены
	assert.Equal(t, []int64{42}, quotes.invalidated)
}

func TestService_Update_NonManagerDenied(t *testing.T) {
	repo := newFakeConfigRepo()
	svc := NewService(repo, &fakeInvalidator{}, nopLogger{})

	_, err := svc.Update(context.Background(), validUpdateRequest(42, 7))
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), validUpdateRequest(42, 8))
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, 1, repo.upserts)
}

func TestService_Update_ManagerNotReassignable(t *testing.T) {
	repo := newFakeConfigRepo()
	svc := NewService(repo, &fakeInvalidator{}, nopLogger{})

	_, err := svc.Update(context.Background(), validUpdateRequest(42, 7))
	require.NoError(t, err)

	// Повторное обновление тем же менеджером не меняет владельца
	resp, err := svc.Update(context.Background(), validUpdateRequest(42, 7))
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ManagerUserID)
}

func TestService_Update_EmptyForecastKeepsStored(t *testing.T) {
	repo := newFakeConfigRepo()
	svc := NewService(repo, &fakeInvalidator{}, nopLogger{})

	first := validUpdateRequest(42, 7)
	first.Forecast = []models.ForecastEntryInput{
		{Day: "Sun", TempC: 20, Condition: "sunny"},
		{Day: "Mon", TempC: 18, Condition: "cloudy"},
	}
	_, err := svc.Update(context.Background(), first)
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), validUpdateRequest(42, 7))
	require.NoError(t, err)

	require.Len(t, resp.Forecast, 2)
	assert.Equal(t, "Sun", resp.Forecast[0].Day)
	assert.InDelta(t, 20.0, resp.Forecast[0].TempC, 0.001)
}

func TestService_Update_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *models.UpdateConfigRequest)
	}{
		{name: "non-positive hotel id", mutate: func(r *models.UpdateConfigRequest) { r.HotelID = 0 }},
		{name: "occupancy above 100", mutate: func(r *models.UpdateConfigRequest) { r.OccupancyPct = 101 }},
		{name: "negative occupancy", mutate: func(r *models.UpdateConfigRequest) { r.OccupancyPct = -1 }},
		{name: "zero stations", mutate: func(r *models.UpdateConfigRequest) { r.ChargingStations = 0 }},
		{name: "too many stations", mutate: func(r *models.UpdateConfigRequest) { r.ChargingStations = 51 }},
		{name: "negative room rate", mutate: func(r *models.UpdateConfigRequest) { r.RoomRate = -1 }},
		{name: "forecast entry without day", mutate: func(r *models.UpdateConfigRequest) {
			r.Forecast = []models.ForecastEntryInput{{Day: "", TempC: 20, Condition: "sunny"}}
		}},
	}

	svc := NewService(newFakeConfigRepo(), &fakeInvalidator{}, nopLogger{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUpdateRequest(42, 7)
			tt.mutate(req)

			_, err := svc.Update(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
