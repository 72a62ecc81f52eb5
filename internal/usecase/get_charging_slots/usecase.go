package get_charging_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/electristay/ES-ChargingService/internal/domain"
	"github.com/electristay/ES-ChargingService/internal/infra/cache"
	configRepo "github.com/electristay/ES-ChargingService/internal/infra/storage/hotelconfig"
	"github.com/electristay/ES-ChargingService/internal/integrations/weatherservice"
	"github.com/electristay/ES-ChargingService/internal/pricing"
)

// UseCase use case расчёта котировок зарядных слотов на окно проживания
type UseCase struct {
	configRepo    ConfigRepository
	weatherClient WeatherClient
	quoteCache    QuoteCache
	metrics       MetricsRecorder
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	configRepo ConfigRepository,
	weatherClient WeatherClient,
	quoteCache QuoteCache,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		configRepo:    configRepo,
		weatherClient: weatherClient,
		quoteCache:    quoteCache,
		metrics:       metrics,
		logger:        logger,
	}
}

// Execute выполняет расчёт котировок
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetChargingSlots: user=%d, hotel=%d, checkIn=%s, checkOut=%s, guests=%d, tier=%s",
		req.UserID, req.HotelID, req.CheckIn.Format(domain.DateFormat),
		req.CheckOut.Format(domain.DateFormat), req.Guests, req.Tier)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetChargingSlots: validation failed: %v", err)
		return nil, err
	}

	tier := domain.ParseMembershipTier(req.Tier)
	window := domain.StayWindow{CheckIn: req.CheckIn, CheckOut: req.CheckOut, Guests: req.Guests}

	// 2. Получаем конфигурацию отеля, отель без конфигурации работает на значениях по умолчанию
	cfg, err := uc.configRepo.GetByHotelID(ctx, req.HotelID)
	if err != nil {
		if !errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Error("GetChargingSlots: failed to get config for hotel=%d: %v", req.HotelID, err)
			return nil, fmt.Errorf("%w: failed to get hotel config: %v", ErrInternal, err)
		}
		uc.logger.Info("GetChargingSlots: hotel=%d has no stored config, using defaults", req.HotelID)
		cfg = domain.DefaultHotelEnergyConfig(req.HotelID)
	}

	resp := &Response{
		HotelID:      req.HotelID,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		Nights:       window.Nights(),
		OccupancyPct: cfg.OccupancyPct,
		Season:       cfg.Season,
		Tier:         tier,
	}

	// 3. Проверяем кеш котировок
	key := cache.QuoteKey(req.HotelID, window, tier)
	if slots, ok := uc.quoteCache.Get(ctx, key); ok {
		uc.logger.Info("GetChargingSlots: cache hit for hotel=%d, slots=%d", req.HotelID, len(slots))
		resp.Slots = slots
		resp.FromCache = true
		return resp, nil
	}

	// 4. Освежаем прогноз из внешнего сервиса, при недоступности
	// работаем на сохранённом прогнозе отеля
	forecast := uc.resolveForecast(ctx, cfg)

	// 5. Запускаем движок ценообразования
	days := pricing.BuildDailyContexts(window, forecast, cfg.OccupancyPct, cfg.Season)
	slots := pricing.ComputeSlots(window, days, domain.GuestProfile{
		Tier:         tier,
		VehicleModel: req.VehicleModel,
	})
	uc.metrics.ObserveSlotComputation(len(slots))

	// 6. Кешируем и отвечаем
	uc.quoteCache.Set(ctx, key, slots)

	uc.logger.Info("GetChargingSlots: computed %d slots for hotel=%d, nights=%d",
		len(slots), req.HotelID, window.Nights())

	resp.Slots = slots
	return resp, nil
}

// resolveForecast возвращает актуальный недельный прогноз: свежий из
// WeatherService, а при его недоступности - сохранённый прогноз отеля.
// Свежий прогноз попутно сохраняется как будущий fallback.
func (uc *UseCase) resolveForecast(ctx context.Context, cfg *domain.HotelEnergyConfig) []domain.ForecastEntry {
	if cfg.City == "" {
		return cfg.Forecast
	}

	fresh, err := uc.weatherClient.GetWeeklyForecastWithGracefulDegradation(ctx, cfg.City)
	if err != nil {
		if errors.Is(err, weatherservice.ErrServiceDegraded) {
			uc.logger.Warn("GetChargingSlots: weather degraded for hotel=%d, using stored forecast", cfg.HotelID)
		} else {
			// Город не знаком сервису погоды - тоже работаем на сохранённом прогнозе
			uc.logger.Warn("GetChargingSlots: no forecast for city=%s, using stored forecast", cfg.City)
		}
		return cfg.Forecast
	}

	if len(fresh) == 0 {
		return cfg.Forecast
	}

	// Лучшее знание о погоде сохраняем как fallback на случай деградации.
	// Отель без сохранённой конфигурации пропускаем - некуда писать.
	if !cfg.CreatedAt.IsZero() {
		if err := uc.configRepo.UpdateForecast(ctx, cfg.HotelID, fresh); err != nil {
			uc.logger.Warn("GetChargingSlots: failed to persist fresh forecast for hotel=%d: %v", cfg.HotelID, err)
		}
	}

	return fresh
}
