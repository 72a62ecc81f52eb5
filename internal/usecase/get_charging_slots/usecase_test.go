package get_charging_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electristay/ES-ChargingService/internal/domain"
	hotelconfigRepo "github.com/electristay/ES-ChargingService/internal/infra/storage/hotelconfig"
	"github.com/electristay/ES-ChargingService/internal/integrations/weatherservice"
)

type fakeConfigRepo struct {
	cfg             *domain.HotelEnergyConfig
	err             error
	savedForecast   []domain.ForecastEntry
	updateForecasts int
}

func (f *fakeConfigRepo) GetByHotelID(_ context.Context, _ int64) (*domain.HotelEnergyConfig, error) {
	return f.cfg, f.err
}

func (f *fakeConfigRepo) UpdateForecast(_ context.Context, _ int64, forecast []domain.ForecastEntry) error {
	f.updateForecasts++
	f.savedForecast = forecast
	return nil
}

type fakeWeatherClient struct {
	forecast []domain.ForecastEntry
	err      error
	calls    int
}

func (f *fakeWeatherClient) GetWeeklyForecastWithGracefulDegradation(_ context.Context, _ string) ([]domain.ForecastEntry, error) {
	f.calls++
	return f.forecast, f.err
}

type fakeQuoteCache struct {
	stored map[string][]domain.PricedSlot
	sets   int
}

func newFakeQuoteCache() *fakeQuoteCache {
	return &fakeQuoteCache{stored: map[string][]domain.PricedSlot{}}
}

func (f *fakeQuoteCache) Get(_ context.Context, key string) ([]domain.PricedSlot, bool) {
	slots, ok := f.stored[key]
	return slots, ok
}

func (f *fakeQuoteCache) Set(_ context.Context, key string, slots []domain.PricedSlot) {
	f.sets++
	f.stored[key] = slots
}

type fakeMetrics struct {
	computations int
	slots        int
}

func (f *fakeMetrics) ObserveSlotComputation(slots int) {
	f.computations++
	f.slots += slots
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func storedConfig() *domain.HotelEnergyConfig {
	return &domain.HotelEnergyConfig{
		HotelID:          1,
		City:             "Amsterdam",
		OccupancyPct:     78,
		Season:           domain.SeasonPeak,
		ChargingStations: 4,
		RoomRate:         117,
		Forecast: []domain.ForecastEntry{
			{Day: "Sun", TempC: 20, Condition: domain.ConditionSunny},
		},
		CreatedAt: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func twoNightRequest() *Request {
	return &Request{
		HotelID:  1,
		CheckIn:  time.Date(2025, time.March, 30, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		Guests:   2,
		Tier:     "Gold",
	}
}

func TestExecute_ComputesSlotsAndCaches(t *testing.T) {
	configs := &fakeConfigRepo{cfg: storedConfig()}
	weather := &fakeWeatherClient{err: weatherservice.ErrServiceDegraded}
	quotes := newFakeQuoteCache()
	metrics := &fakeMetrics{}

	uc := NewUseCase(configs, weather, quotes, metrics, nopLogger{})

	resp, err := uc.Execute(context.Background(), twoNightRequest())
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Nights)
	assert.False(t, resp.FromCache)
	assert.Equal(t, domain.TierGold, resp.Tier)
	require.Len(t, resp.Slots, 8)
	assert.Equal(t, "morning-0", resp.Slots[0].ID)
	assert.Equal(t, "night-1", resp.Slots[7].ID)

	assert.Equal(t, 1, metrics.computations)
	assert.Equal(t, 8, metrics.slots)
	assert.Equal(t, 1, quotes.sets)
}

func TestExecute_CacheHitSkipsEngine(t *testing.T) {
	configs := &fakeConfigRepo{cfg: storedConfig()}
	weather := &fakeWeatherClient{err: weatherservice.ErrServiceDegraded}
	quotes := newFakeQuoteCache()
	metrics := &fakeMetrics{}

	uc := NewUseCase(configs, weather, quotes, metrics, nopLogger{})

	first, err := uc.Execute(context.Background(), twoNightRequest())
	require.NoError(t, err)
	require.False(t, first.FromCache)

	second, err := uc.Execute(context.Background(), twoNightRequest())
	require.NoError(t, err)

	assert.True(t, second.FromCache)
	assert.Equal(t, first.Slots, second.Slots)
	// Движок запускался только один раз
	assert.Equal(t, 1, metrics.computations)
}

func TestExecute_FreshForecastPersisted(t *testing.T) {
	configs := &fakeConfigRepo{cfg: storedConfig()}
	weather := &fakeWeatherClient{forecast: []domain.ForecastEntry{
		{Day: "Sun", TempC: 3, Condition: domain.ConditionRainy},
	}}
	quotes := newFakeQuoteCache()

	uc := NewUseCase(configs, weather, quotes, &fakeMetrics{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), twoNightRequest())
	require.NoError(t, err)

	// Свежий прогноз сохранён как будущий fallback
	assert.Equal(t, 1, configs.updateForecasts)
	require.Len(t, configs.savedForecast, 1)
	assert.Equal(t, domain.ConditionRainy, configs.savedForecast[0].Condition)

	// Холодная дождливая погода попала в котировки
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, 3.0, resp.Slots[0].TemperatureC)
	assert.Equal(t, domain.ConditionRainy, resp.Slots[0].Condition)
}

func TestExecute_NoConfigUsesDefaults(t *testing.T) {
	configs := &fakeConfigRepo{err: hotelconfigRepo.ErrConfigNotFound}
	weather := &fakeWeatherClient{}
	quotes := newFakeQuoteCache()

	uc := NewUseCase(configs, weather, quotes, &fakeMetrics{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), twoNightRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultOccupancyPct, resp.OccupancyPct)
	assert.Equal(t, domain.SeasonPeak, resp.Season)
	require.Len(t, resp.Slots, 8)

	// Дефолтная конфигурация без города не ходит во внешний сервис погоды
	assert.Equal(t, 0, weather.calls)
	assert.Equal(t, 0, configs.updateForecasts)
}

func TestExecute_EmptyWindowYieldsNoSlots(t *testing.T) {
	configs := &fakeConfigRepo{cfg: storedConfig()}
	weather := &fakeWeatherClient{err: weatherservice.ErrServiceDegraded}

	uc := NewUseCase(configs, weather, newFakeQuoteCache(), &fakeMetrics{}, nopLogger{})

	req := twoNightRequest()
	req.CheckOut = req.CheckIn

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
	assert.Equal(t, 0, resp.Nights)
}

func TestExecute_ValidationFailures(t *testing.T) {
	uc := NewUseCase(&fakeConfigRepo{cfg: storedConfig()}, &fakeWeatherClient{}, newFakeQuoteCache(), &fakeMetrics{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero hotel id", func(r *Request) { r.HotelID = 0 }},
		{"missing check-in", func(r *Request) { r.CheckIn = time.Time{} }},
		{"negative guests", func(r *Request) { r.Guests = -1 }},
		{"stay too long", func(r *Request) { r.CheckOut = r.CheckIn.AddDate(0, 0, domain.MaxStayNights+1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := twoNightRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
