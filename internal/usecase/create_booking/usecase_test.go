package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electristay/ES-ChargingService/internal/domain"
)

type fakeBookingRepo struct {
	activeCount int
	created     *domain.ChargingBooking
	countCalls  int
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.ChargingBooking) (*domain.ChargingBooking, error) {
	stored := *booking
	stored.ID = 101
	stored.CreatedAt = time.Date(2025, time.March, 29, 12, 0, 0, 0, time.UTC)
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
}

func (f *fakeBookingRepo) CountActiveForSlot(_ context.Context, _ int64, _ time.Time, _ domain.SlotID) (int, error) {
	f.countCalls++
	return f.activeCount, nil
}

type fakeConfigRepo struct {
	cfg *domain.HotelEnergyConfig
	err error
}

func (f *fakeConfigRepo) GetByHotelID(_ context.Context, _ int64) (*domain.HotelEnergyConfig, error) {
	return f.cfg, f.err
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func peakSundayConfig() *domain.HotelEnergyConfig {
	return &domain.HotelEnergyConfig{
		HotelID:          1,
		OccupancyPct:     78,
		Season:           domain.SeasonPeak,
		ChargingStations: 4,
		RoomRate:         117,
		Forecast: []domain.ForecastEntry{
			{Day: "Sun", TempC: 20, Condition: domain.ConditionSunny},
		},
	}
}

func newTestUseCase(bookings *fakeBookingRepo, configs *fakeConfigRepo, tx *fakeTxManager) *UseCase {
	uc := NewUseCase(bookings, configs, tx, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, time.March, 29, 10, 0, 0, 0, time.UTC)}
	return uc
}

func overnightRequest() *Request {
	return &Request{
		UserID:   42,
		HotelID:  1,
		Slot:     "night",
		SlotDate: time.Date(2025, time.March, 30, 0, 0, 0, 0, time.UTC),
		CheckIn:  time.Date(2025, time.March, 30, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		Tier:     "Gold",
	}
}

func TestExecute_CreatesBookingWithServerSidePrice(t *testing.T) {
	bookings := &fakeBookingRepo{}
	tx := &fakeTxManager{}
	uc := newTestUseCase(bookings, &fakeConfigRepo{cfg: peakSundayConfig()}, tx)

	resp, err := uc.Execute(context.Background(), overnightRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.NotEmpty(t, resp.Reference)
	assert.Equal(t, domain.SlotOvernight, resp.Slot)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 1, tx.calls)

	// Воскресенье, 20°C sunny, Peak, 78%, Gold:
	// -0.25 + 0.15 + 0.10 - 0.10 + 0.20 - 0.10 = 0 => totalFactor 1.0
	assert.Equal(t, 1.0, resp.TotalFactor)
	assert.Equal(t, 10.0, resp.DynamicPrice)
	assert.Equal(t, 80.0, resp.EstimatedCost)
	assert.Equal(t, 8, resp.NominalHours)

	// Сводка стоимости: 2 ночи по 117 + зарядка 80
	require.NotNil(t, resp.Summary)
	assert.Equal(t, 2, resp.Summary.Nights)
	assert.Equal(t, 234.0, resp.Summary.RoomCost)
	assert.Equal(t, 80.0, resp.Summary.ChargingCost)
	assert.Equal(t, 314.0, resp.Summary.TotalCost)

	require.NotNil(t, bookings.created)
	assert.Equal(t, domain.TierGold, bookings.created.MembershipTier)
	assert.Equal(t, "22:00", bookings.created.StartTime.String())
}

func TestExecute_SlotFull(t *testing.T) {
	bookings := &fakeBookingRepo{activeCount: 4}
	uc := newTestUseCase(bookings, &fakeConfigRepo{cfg: peakSundayConfig()}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), overnightRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, bookings.created)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeConfigRepo{cfg: peakSundayConfig()}, &fakeTxManager{})

	req := overnightRequest()
	req.SlotDate = time.Date(2025, time.March, 28, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_UnknownSlotRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeConfigRepo{cfg: peakSundayConfig()}, &fakeTxManager{})

	req := overnightRequest()
	req.Slot = "midday"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_NoSummaryWithoutStayWindow(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeConfigRepo{cfg: peakSundayConfig()}, &fakeTxManager{})

	req := overnightRequest()
	req.CheckIn = time.Time{}
	req.CheckOut = time.Time{}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, resp.Summary)
}
