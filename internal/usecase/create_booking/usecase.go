package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/electristay/ES-ChargingService/internal/domain"
	configRepo "github.com/electristay/ES-ChargingService/internal/infra/storage/hotelconfig"
	"github.com/electristay/ES-ChargingService/internal/pricing"
	"github.com/electristay/ES-ChargingService/pkg/money"
)

// UseCase use case бронирования зарядного слота
type UseCase struct {
	bookingRepo  BookingRepository
	configRepo   ConfigRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	configRepo ConfigRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		configRepo:   configRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет бронирование зарядного слота.
// Слот переоценивается на сервере по текущей конфигурации отеля, цена из
// клиента не принимается. Проверка вместимости и запись идут в сериализуемой
// транзакции, чтобы две гонки за последнюю станцию не прошли обе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, hotel=%d, slot=%s, date=%s",
		req.UserID, req.HotelID, req.Slot, req.SlotDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	slotID, _ := domain.ParseSlotID(req.Slot)
	tier := domain.ParseMembershipTier(req.Tier)

	// 2. Дата слота не в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.SlotDate, now); err != nil {
		uc.logger.Warn("CreateBooking: slot date %s is in the past", req.SlotDate.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Получаем конфигурацию отеля, без неё работаем на значениях по умолчанию
	cfg, err := uc.configRepo.GetByHotelID(ctx, req.HotelID)
	if err != nil {
		if !errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Error("CreateBooking: failed to get config for hotel=%d: %v", req.HotelID, err)
			return nil, fmt.Errorf("%w: failed to get hotel config: %v", ErrInternal, err)
		}
		uc.logger.Info("CreateBooking: hotel=%d has no stored config, using defaults", req.HotelID)
		cfg = domain.DefaultHotelEnergyConfig(req.HotelID)
	}

	// 4. Серверная переоценка слота по сохранённому прогнозу отеля
	priced, err := uc.repriceSlot(req, slotID, tier, cfg)
	if err != nil {
		return nil, err
	}

	var result *domain.ChargingBooking

	// 5. Проверка вместимости и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Считаем активные бронирования слота с блокировкой (FOR UPDATE)
		taken, err := uc.bookingRepo.CountActiveForSlot(txCtx, req.HotelID, req.SlotDate, slotID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count active bookings: %v", err)
			return fmt.Errorf("%w: failed to count active bookings: %v", ErrInternal, err)
		}

		if taken >= cfg.ChargingStations {
			uc.logger.Warn("CreateBooking: slot %s on %s not available, %d/%d stations taken",
				slotID, req.SlotDate.Format(domain.DateFormat), taken, cfg.ChargingStations)
			return ErrSlotNotAvailable
		}

		uc.logger.Info("CreateBooking: slot available, %d/%d stations taken", taken, cfg.ChargingStations)

		// 5.2. Создаем бронирование со снимком цены
		booking := &domain.ChargingBooking{
			Reference: uuid.NewString(),
			UserID:    req.UserID,
			HotelID:   req.HotelID,

			SlotID:       slotID,
			SlotName:     priced.Name,
			SlotDate:     req.SlotDate,
			StartTime:    priced.StartTime,
			NominalHours: nominalHours(slotID),
			Status:       domain.StatusConfirmed,

			MembershipTier: tier,
			BasePrice:      priced.BasePrice,
			DynamicPrice:   priced.DynamicPrice,
			TotalFactor:    priced.TotalFactor,
			EstimatedCost:  priced.EstimatedCost,

			VehicleModel: req.VehicleModel,
			Notes:        req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d ref=%s", result.ID, result.Reference)

	return buildResponse(result, req, cfg), nil
}

// repriceSlot запускает движок на один день слота и берёт котировку нужного окна
func (uc *UseCase) repriceSlot(
	req *Request,
	slotID domain.SlotID,
	tier domain.MembershipTier,
	cfg *domain.HotelEnergyConfig,
) (*domain.PricedSlot, error) {
	window := domain.StayWindow{
		CheckIn:  req.SlotDate,
		CheckOut: req.SlotDate.AddDate(0, 0, 1),
	}

	days := pricing.BuildDailyContexts(window, cfg.Forecast, cfg.OccupancyPct, cfg.Season)
	slots := pricing.ComputeSlots(window, days, domain.GuestProfile{Tier: tier})

	for i := range slots {
		if slots[i].Slot == slotID {
			return &slots[i], nil
		}
	}

	// Каталог фиксированный, сюда можно попасть только при его порче
	uc.logger.Error("CreateBooking: slot %s missing from engine output", slotID)
	return nil, fmt.Errorf("%w: slot %s missing from engine output", ErrInternal, slotID)
}

func nominalHours(slotID domain.SlotID) int {
	tpl, ok := domain.SlotTemplateByID(slotID)
	if !ok {
		return 0
	}
	return tpl.NominalHours
}

// buildResponse собирает ответ, добавляя сводку стоимости при известном окне проживания
func buildResponse(b *domain.ChargingBooking, req *Request, cfg *domain.HotelEnergyConfig) *Response {
	resp := &Response{
		ID:           b.ID,
		Reference:    b.Reference,
		UserID:       b.UserID,
		HotelID:      b.HotelID,
		Slot:         b.SlotID,
		SlotName:     b.SlotName,
		SlotDate:     b.SlotDate,
		StartTime:    b.StartTime,
		NominalHours: b.NominalHours,
		Status:       string(b.Status),

		MembershipTier: b.MembershipTier,
		BasePrice:      b.BasePrice,
		DynamicPrice:   b.DynamicPrice,
		TotalFactor:    b.TotalFactor,
		EstimatedCost:  b.EstimatedCost,

		VehicleModel: b.VehicleModel,
		Notes:        b.Notes,

		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	window := domain.StayWindow{CheckIn: req.CheckIn, CheckOut: req.CheckOut}
	if !req.CheckIn.IsZero() && !req.CheckOut.IsZero() && window.Nights() > 0 {
		nights := window.Nights()
		roomCost := money.Round2(cfg.RoomRate * float64(nights))
		resp.Summary = &StaySummary{
			Nights:       nights,
			RoomRate:     cfg.RoomRate,
			RoomCost:     roomCost,
			ChargingCost: b.EstimatedCost,
			TotalCost:    money.Round2(roomCost + b.EstimatedCost),
		}
	}

	return resp
}
