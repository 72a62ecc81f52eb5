package hotelconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/electristay/ES-ChargingService/internal/domain"
	configRepo "github.com/electristay/ES-ChargingService/internal/infra/storage/hotelconfig"
	"github.com/electristay/ES-ChargingService/internal/service/hotelconfig/models"
)

// Service сервис энергетической конфигурации отелей
type Service struct {
	configRepo ConfigRepository
	quotes     QuoteInvalidator
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(
	configRepo ConfigRepository,
	quotes QuoteInvalidator,
	logger Logger,
) *Service {
	return &Service{
		configRepo: configRepo,
		quotes:     quotes,
		logger:     logger,
	}
}

// Get получает конфигурацию отеля
// Публичный метод - отель без сохранённой конфигурации получает значения по умолчанию,
// чтобы движок цен всегда имел вход
func (s *Service) Get(ctx context.Context, hotelID int64) (*models.ConfigResponse, error) {
	s.logger.Info("Get: fetching config for hotel=%d", hotelID)

	cfg, err := s.configRepo.GetByHotelID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Info("Get: hotel=%d has no stored config, returning defaults", hotelID)
			return models.FromDomainConfig(domain.DefaultHotelEnergyConfig(hotelID)), nil
		}
		s.logger.Error("Get: repository error for hotel=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched config for hotel=%d", hotelID)
	return models.FromDomainConfig(cfg), nil
}

// Update создает или обновляет конфигурацию отеля
// Первый пользователь, сохранивший конфигурацию, становится менеджером отеля.
// Дальше обновлять конфигурацию может только назначенный менеджер.
func (s *Service) Update(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating config for hotel=%d by user=%d", req.HotelID, req.UserID)

	// 1. Валидируем входные данные
	if err := s.validateConfigData(req); err != nil {
		s.logger.Warn("Update: validation failed for hotel=%d: %v", req.HotelID, err)
		return nil, err
	}

	// 2. Проверяем права доступа по сохранённой конфигурации
	existing, err := s.configRepo.GetByHotelID(ctx, req.HotelID)
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		s.logger.Error("Update: failed to check existing config for hotel=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: Update - failed to check existing config: %v", ErrInternal, err)
	}

	domainConfig := req.ToDomainConfig()

	if existing != nil && existing.HasManager() {
		if existing.ManagerUserID != req.UserID {
			s.logger.Warn("Update: user=%d is not a manager of hotel=%d", req.UserID, req.HotelID)
			return nil, ErrAccessDenied
		}
		// Менеджер не переназначается через обычное обновление
		domainConfig.ManagerUserID = existing.ManagerUserID
	}

	// 3. Прогноз не прислали - сохраняем текущий, либо дефолтный для нового отеля
	if len(domainConfig.Forecast) == 0 {
		if existing != nil {
			domainConfig.Forecast = existing.Forecast
		} else {
			domainConfig.Forecast = domain.DefaultForecast
		}
	}

	// 4. Сохраняем конфигурацию
	updated, err := s.configRepo.Upsert(ctx, domainConfig)
	if err != nil {
		s.logger.Error("Update: repository error for hotel=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 5. Конфигурация - вход движка цен, сбрасываем закешированные котировки
	s.quotes.InvalidateHotel(ctx, req.HotelID)

	s.logger.Info("Update: successfully updated config for hotel=%d", req.HotelID)
	return models.FromDomainConfig(updated), nil
}

// validateConfigData проверяет бизнес-правила конфигурации
func (s *Service) validateConfigData(req *models.UpdateConfigRequest) error {
	if req.HotelID <= 0 {
		return fmt.Errorf("%w: hotelId must be positive", ErrInvalidInput)
	}

	if req.OccupancyPct < domain.MinOccupancyPct || req.OccupancyPct > domain.MaxOccupancyPct {
		return fmt.Errorf("%w: occupancyPct must be between %d and %d",
			ErrInvalidInput, domain.MinOccupancyPct, domain.MaxOccupancyPct)
	}

	if req.ChargingStations < domain.MinChargingStations || req.ChargingStations > domain.MaxChargingStations {
		return fmt.Errorf("%w: chargingStations must be between %d and %d",
			ErrInvalidInput, domain.MinChargingStations, domain.MaxChargingStations)
	}

	if req.RoomRate < 0 {
		return fmt.Errorf("%w: roomRate must not be negative", ErrInvalidInput)
	}

	for _, e := range req.Forecast {
		if e.Day == "" {
			return fmt.Errorf("%w: forecast entry day must not be empty", ErrInvalidInput)
		}
	}

	return nil
}
