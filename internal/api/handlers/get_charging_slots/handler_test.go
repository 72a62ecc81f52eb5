package get_charging_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electristay/ES-ChargingService/internal/domain"
	getChargingSlots "github.com/electristay/ES-ChargingService/internal/usecase/get_charging_slots"
)

type fakeUseCase struct {
	lastReq *getChargingSlots.Request
	resp    *getChargingSlots.Response
	err     error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getChargingSlots.Request) (*getChargingSlots.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/hotels/{hotelId}/charging-slots", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandler_Handle_Success(t *testing.T) {
	checkIn := time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	uc := &fakeUseCase{
		resp: &getChargingSlots.Response{
			HotelID:      42,
			CheckIn:      checkIn,
			CheckOut:     checkOut,
			Nights:       1,
			OccupancyPct: 78,
			Season:       domain.SeasonPeak,
			Tier:         domain.TierGold,
			Slots: []domain.PricedSlot{
				{
					ID:           "night-0",
					Slot:         domain.SlotOvernight,
					Name:         "Overnight",
					StartTime:    "22:00",
					EndTime:      "06:00",
					Date:         checkIn,
					BasePrice:    10,
					DynamicPrice: 10,
					TotalFactor:  1.0,
					Recommended:  true,
				},
			},
		},
	}
	handler := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/hotels/42/charging-slots?checkIn=2025-03-30&checkOut=2025-03-31&tier=gold&guests=2", nil)
	rec := httptest.NewRecorder()

	newTestRouter(handler).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChargingSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, int64(42), resp.HotelID)
	assert.Equal(t, "2025-03-30", resp.CheckIn)
	assert.Equal(t, 1, resp.Nights)
	assert.Equal(t, "Peak", resp.Season)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "night-0", resp.Slots[0].ID)
	assert.True(t, resp.Slots[0].Recommended)
	assert.InDelta(t, 10.0, resp.Slots[0].DynamicPrice, 0.001)

	// Запрос к use case собран из path и query параметров
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(42), uc.lastReq.HotelID)
	assert.Equal(t, 2, uc.lastReq.Guests)
	assert.Equal(t, "gold", uc.lastReq.Tier)
}

func TestHandler_Handle_InvalidHotelID(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/hotels/abc/charging-slots?checkIn=2025-03-30&checkOut=2025-03-31", nil)
	rec := httptest.NewRecorder()

	newTestRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_MissingDates(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/hotels/42/charging-slots?checkIn=2025-03-30", nil)
	rec := httptest.NewRecorder()

	newTestRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_BadDateFormat(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/hotels/42/charging-slots?checkIn=30.03.2025&checkOut=31.03.2025", nil)
	rec := httptest.NewRecorder()

	newTestRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_UseCaseValidationError(t *testing.T) {
	handler := NewHandler(&fakeUseCase{err: getChargingSlots.ErrInvalidInput}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/hotels/42/charging-slots?checkIn=2025-03-30&checkOut=2025-03-31", nil)
	rec := httptest.NewRecorder()

	newTestRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_InternalError(t *testing.T) {
	handler := NewHandler(&fakeUseCase{err: getChargingSlots.ErrInternal}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/hotels/42/charging-slots?checkIn=2025-03-30&checkOut=2025-03-31", nil)
	rec := httptest.NewRecorder()

	newTestRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
