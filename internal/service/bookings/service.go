package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/electristay/ES-ChargingService/internal/domain"
	bookingRepo "github.com/electristay/ES-ChargingService/internal/infra/storage/booking"
	configRepo "github.com/electristay/ES-ChargingService/internal/infra/storage/hotelconfig"
	"github.com/electristay/ES-ChargingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями зарядных слотов
type Service struct {
	bookingRepo BookingRepository
	configRepo  ConfigRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	configRepo ConfigRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		configRepo:  configRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - гость видит только своё бронирование,
// менеджер отеля видит все бронирования своего отеля
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetHotelBookings получает бронирования отеля с гибкой фильтрацией
// Поддерживает фильтрацию по слоту, периоду, статусу и включение неактивных
// Доступно только менеджеру отеля
//
// Примеры использования:
// - Все активные бронирования: GetHotelBookings(ctx, &GetHotelBookingsRequest{HotelID: 1, UserID: 456})
// - Бронирования одного окна: указать Slot = "night"
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Бронирования за период: StartDate и EndDate указывают на разные даты
// - Только подтвержденные: указать Status = "confirmed"
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetHotelBookings(ctx context.Context, req *models.GetHotelBookingsRequest) (*models.BookingListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := fmt.Sprintf("GetHotelBookings: fetching bookings for hotel=%d, user=%d", req.HotelID, req.UserID)
	if req.Slot != nil {
		logMsg += fmt.Sprintf(", slot=%s", *req.Slot)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Проверяем права доступа менеджера
	if err := s.checkManagerAccess(ctx, req.HotelID, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetHotelBookings: invalid filter for hotel=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	// Получаем бронирования с фильтрацией
	bookings, err := s.bookingRepo.GetByHotelWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetHotelBookings: repository error for hotel=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: GetHotelBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetHotelBookings: successfully fetched %d bookings for hotel=%d", len(bookings), req.HotelID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Гость может отменить только своё бронирование (cancelled_by_guest)
// Менеджер может отменить любое бронирование своего отеля (cancelled_by_hotel)
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Определяем статус отмены в зависимости от прав доступа
	var cancelStatus domain.BookingStatus

	// Проверяем, является ли пользователь владельцем бронирования
	if booking.UserID == req.UserID {
		cancelStatus = domain.StatusCancelledByGuest
	} else {
		// Проверяем, является ли пользователь менеджером отеля
		if err := s.checkManagerAccess(ctx, booking.HotelID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
			return ErrAccessDenied
		}
		cancelStatus = domain.StatusCancelledByHotel
	}

	// Отменяем бронирование
	if err := s.bookingRepo.Cancel(ctx, bookingID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d with status=%s", bookingID, cancelStatus)
	return nil
}

// UpdateStatus обновляет статус бронирования
// Доступно только менеджеру отеля (подтверждение, начало зарядки, завершение, no-show)
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа (только менеджер отеля)
	if err := s.checkManagerAccess(ctx, booking.HotelID, req.UserID); err != nil {
		return err
	}

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	// Обновляем статус
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
// Пользователь видит своё бронирование либо бронирования отеля, которым управляет
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.ChargingBooking, userID int64) error {
	// Если пользователь владелец бронирования - доступ разрешён
	if booking.UserID == userID {
		return nil
	}

	// Проверяем, является ли пользователь менеджером отеля
	if err := s.checkManagerAccess(ctx, booking.HotelID, userID); err != nil {
		// Ошибка уже залогирована в checkManagerAccess
		return ErrAccessDenied
	}

	return nil
}

// checkManagerAccess проверяет, что пользователь является менеджером отеля.
// Менеджер назначается в энергетической конфигурации отеля.
func (s *Service) checkManagerAccess(ctx context.Context, hotelID int64, userID int64) error {
	cfg, err := s.configRepo.GetByHotelID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			// Без конфигурации у отеля нет назначенного менеджера
			s.logger.Warn("checkManagerAccess: hotel=%d has no config, denying user=%d", hotelID, userID)
			return ErrAccessDenied
		}
		s.logger.Error("checkManagerAccess: failed to get config for hotel=%d: %v", hotelID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get hotel config: %v", ErrInternal, err)
	}

	if cfg.HasManager() && cfg.ManagerUserID == userID {
		s.logger.Info("checkManagerAccess: user=%d is manager of hotel=%d", userID, hotelID)
		return nil
	}

	s.logger.Warn("checkManagerAccess: user=%d is not a manager of hotel=%d", userID, hotelID)
	return ErrAccessDenied
}
