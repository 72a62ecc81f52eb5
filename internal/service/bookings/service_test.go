package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electristay/ES-ChargingService/internal/domain"
	bookingRepo "github.com/electristay/ES-ChargingService/internal/infra/storage/booking"
	configRepo "github.com/electristay/ES-ChargingService/internal/infra/storage/hotelconfig"
	"github.com/electristay/ES-ChargingService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.ChargingBooking

	cancelledID     int64
	cancelledStatus domain.BookingStatus
	cancelledReason string
	updatedStatus   domain.BookingStatus
}

func newFakeBookingRepo(bookings ...*domain.ChargingBooking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.ChargingBooking{}}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.ChargingBooking) (*domain.ChargingBooking, error) {
	f.bookings[booking.ID] = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.ChargingBooking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.ChargingBooking, error) {
	var out []*domain.ChargingBooking
	for _, b := range f.bookings {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByHotelWithFilter(_ context.Context, filter domain.HotelBookingsFilter) ([]*domain.ChargingBooking, error) {
	var out []*domain.ChargingBooking
	for _, b := range f.bookings {
		if b.HotelID == filter.HotelID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountActiveForSlot(_ context.Context, hotelID int64, slotDate time.Time, slotID domain.SlotID) (int, error) {
	return 0, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updatedStatus = status
	f.bookings[id].Status = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, status domain.BookingStatus, reason string) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.cancelledID = id
	f.cancelledStatus = status
	f.cancelledReason = reason
	f.bookings[id].Status = status
	return nil
}

type fakeConfigRepo struct {
	configs map[int64]*domain.HotelEnergyConfig
}

func (f *fakeConfigRepo) GetByHotelID(_ context.Context, hotelID int64) (*domain.HotelEnergyConfig, error) {
	cfg, ok := f.configs[hotelID]
	if !ok {
		return nil, configRepo.ErrConfigNotFound
	}
	return cfg, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

const (
	guestID   = int64(7)
	managerID = int64(99)
	hotelID   = int64(42)
)

func managedHotelConfig() *fakeConfigRepo {
	return &fakeConfigRepo{configs: map[int64]*domain.HotelEnergyConfig{
		hotelID: {HotelID: hotelID, ManagerUserID: managerID, ChargingStations: 4},
	}}
}

func confirmedBooking(id int64) *domain.ChargingBooking {
	return &domain.ChargingBooking{
		ID:       id,
		UserID:   guestID,
		HotelID:  hotelID,
		SlotID:   domain.SlotOvernight,
		SlotDate: time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC),
		Status:   domain.StatusConfirmed,
	}
}

func TestService_GetByID_Access(t *testing.T) {
	svc := NewService(newFakeBookingRepo(confirmedBooking(1)), managedHotelConfig(), nopLogger{})

	// Владелец видит своё бронирование
	resp, err := svc.GetByID(context.Background(), 1, guestID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	// Менеджер отеля видит бронирование
	_, err = svc.GetByID(context.Background(), 1, managerID)
	require.NoError(t, err)

	// Посторонний пользователь - нет
	_, err = svc.GetByID(context.Background(), 1, 1234)
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), managedHotelConfig(), nopLogger{})

	_, err := svc.GetByID(context.Background(), 404, guestID)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetUserBookings_InvalidStatus(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), managedHotelConfig(), nopLogger{})

	status := "parked"
	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: guestID,
		Status: &status,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetHotelBookings_ManagerOnly(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(1), confirmedBooking(2))
	svc := NewService(repo, managedHotelConfig(), nopLogger{})

	resp, err := svc.GetHotelBookings(context.Background(), &models.GetHotelBookingsRequest{
		HotelID: hotelID,
		UserID:  managerID,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	_, err = svc.GetHotelBookings(context.Background(), &models.GetHotelBookingsRequest{
		HotelID: hotelID,
		UserID:  guestID,
	})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetHotelBookings_NoConfigDenied(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), &fakeConfigRepo{configs: map[int64]*domain.HotelEnergyConfig{}}, nopLogger{})

	_, err := svc.GetHotelBookings(context.Background(), &models.GetHotelBookingsRequest{
		HotelID: hotelID,
		UserID:  managerID,
	})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Cancel_ByGuest(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(1))
	svc := NewService(repo, managedHotelConfig(), nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID:             guestID,
		CancellationReason: "plans changed",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByGuest, repo.cancelledStatus)
	assert.Equal(t, "plans changed", repo.cancelledReason)
}

func TestService_Cancel_ByHotelManager(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(1))
	svc := NewService(repo, managedHotelConfig(), nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: managerID})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByHotel, repo.cancelledStatus)
}

func TestService_Cancel_StrangerDenied(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(1))
	svc := NewService(repo, managedHotelConfig(), nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 1234})

	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.cancelledID)
}

func TestService_Cancel_CompletedNotCancellable(t *testing.T) {
	booking := confirmedBooking(1)
	booking.Status = domain.StatusCompleted
	svc := NewService(newFakeBookingRepo(booking), managedHotelConfig(), nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: guestID})

	require.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_UpdateStatus(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(1))
	svc := NewService(repo, managedHotelConfig(), nopLogger{})

	// Менеджер переводит бронирование в зарядку
	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: managerID,
		Status: "charging",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCharging, repo.updatedStatus)

	// Гость не управляет статусами
	err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: guestID,
		Status: "completed",
	})
	require.ErrorIs(t, err, ErrAccessDenied)

	// Неизвестный статус отклоняется
	err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: managerID,
		Status: "parked",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}
