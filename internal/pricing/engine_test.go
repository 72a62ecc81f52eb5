package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electristay/ES-ChargingService/internal/domain"
	"github.com/electristay/ES-ChargingService/pkg/money"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var testForecast = []domain.ForecastEntry{
	{Day: "Mon", TempC: 15, Condition: domain.ConditionSunny},
	{Day: "Tue", TempC: 12, Condition: domain.ConditionCloudy},
	{Day: "Wed", TempC: 14, Condition: domain.ConditionPartlyCloudy},
	{Day: "Thu", TempC: 11, Condition: domain.ConditionRainy},
}

func TestBuildDailyContexts_ForecastLookupAndFallback(t *testing.T) {
	// 2025-03-31 понедельник, 2025-04-04 пятница (нет в прогнозе)
	stay := domain.StayWindow{CheckIn: date(2025, 3, 31), CheckOut: date(2025, 4, 5), Guests: 2}

	days := BuildDailyContexts(stay, testForecast, 78, domain.SeasonPeak)
	require.Len(t, days, 5)

	assert.Equal(t, domain.ConditionSunny, days[0].Condition) // Mon
	assert.Equal(t, 15.0, days[0].TemperatureC)
	assert.Equal(t, domain.ConditionCloudy, days[1].Condition)       // Tue
	assert.Equal(t, domain.ConditionPartlyCloudy, days[2].Condition) // Wed
	assert.Equal(t, domain.ConditionRainy, days[3].Condition)        // Thu

	// Пятницы нет в 4-дневном прогнозе - берётся первая запись
	assert.Equal(t, domain.ConditionSunny, days[4].Condition)
	assert.Equal(t, 15.0, days[4].TemperatureC)

	for _, d := range days {
		assert.Equal(t, 78.0, d.OccupancyPct)
		assert.Equal(t, domain.SeasonPeak, d.Season)
	}
}

func TestBuildDailyContexts_EmptyWindow(t *testing.T) {
	stay := domain.StayWindow{CheckIn: date(2025, 3, 30), CheckOut: date(2025, 3, 30)}
	days := BuildDailyContexts(stay, testForecast, 78, domain.SeasonPeak)
	assert.NotNil(t, days)
	assert.Empty(t, days)
}

func TestComputeSlots_TwoNightStayProducesEightOrderedSlots(t *testing.T) {
	stay := domain.StayWindow{CheckIn: date(2025, 3, 30), CheckOut: date(2025, 4, 1), Guests: 2}
	days := BuildDailyContexts(stay, testForecast, 78, domain.SeasonPeak)
	require.Len(t, days, 2)

	slots := ComputeSlots(stay, days, domain.GuestProfile{Tier: domain.TierStandard})
	require.Len(t, slots, 8)

	wantIDs := []string{
		"morning-0", "afternoon-0", "evening-0", "night-0",
		"morning-1", "afternoon-1", "evening-1", "night-1",
	}
	for i, want := range wantIDs {
		assert.Equal(t, want, slots[i].ID)
	}

	// Дата возрастает, внутри дня порядок шаблонов фиксированный
	assert.Equal(t, date(2025, 3, 30), slots[0].Date)
	assert.Equal(t, date(2025, 3, 31), slots[4].Date)
}

func TestComputeSlots_TotalFactorInvariant(t *testing.T) {
	stay := domain.StayWindow{CheckIn: date(2025, 3, 30), CheckOut: date(2025, 4, 1), Guests: 2}
	days := BuildDailyContexts(stay, testForecast, 78, domain.SeasonPeak)

	slots := ComputeSlots(stay, days, domain.GuestProfile{Tier: domain.TierGold})
	require.NotEmpty(t, slots)

	for _, slot := range slots {
		require.Len(t, slot.Factors, 6)

		// Фиксированный порядок факторов
		for i, name := range domain.FactorOrder {
			assert.Equal(t, name, slot.Factors[i].Name, "slot %s", slot.ID)
		}

		sum := 0.0
		for _, f := range slot.Factors {
			sum += f.Value
		}
		assert.InDelta(t, 1+sum, slot.TotalFactor, 1e-9, "slot %s", slot.ID)
		assert.InDelta(t, money.Round2(slot.BasePrice*slot.TotalFactor), slot.DynamicPrice, 1e-9, "slot %s", slot.ID)

		// Членский фактор всегда скидка
		membership := slot.Factors[5]
		assert.LessOrEqual(t, membership.Value, 0.0)
	}
}

func TestComputeSlots_OccupancyAppliesToEverySlot(t *testing.T) {
	stay := domain.StayWindow{CheckIn: date(2025, 3, 30), CheckOut: date(2025, 4, 1), Guests: 2}
	days := BuildDailyContexts(stay, testForecast, 78, domain.SeasonPeak)

	slots := ComputeSlots(stay, days, domain.GuestProfile{Tier: domain.TierStandard})
	for _, slot := range slots {
		assert.Equal(t, 0.15, slot.Factors[1].Value, "slot %s", slot.ID)
		assert.Equal(t, "78% occupancy - High demand", slot.Factors[1].Description)
	}
}

func TestComputeSlots_PlatinumPricing(t *testing.T) {
	// 2025-03-30 воскресенье: выходной +0.10, загрузка 78% +0.15,
	// Peak +0.20, погода 20°C sunny -0.10, утро 0, Platinum -0.15.
	// totalFactor = 1.20, Morning base 14: dynamic 14.70, original 16.80.
	forecast := []domain.ForecastEntry{
		{Day: "Sun", TempC: 20, Condition: domain.ConditionSunny},
	}
	stay := domain.StayWindow{CheckIn: date(2025, 3, 30), CheckOut: date(2025, 3, 31), Guests: 2}
	days := BuildDailyContexts(stay, forecast, 78, domain.SeasonPeak)

	slots := ComputeSlots(stay, days, domain.GuestProfile{Tier: domain.TierPlatinum})
	require.Len(t, slots, 4)

	morning := slots[0]
	assert.Equal(t, domain.SlotMorning, morning.Slot)
	assert.InDelta(t, 1.20, morning.TotalFactor, 1e-9)
	assert.InDelta(t, 14.70, morning.DynamicPrice, 1e-9)
	assert.InDelta(t, 16.80, morning.OriginalPrice, 1e-9)
	assert.Equal(t, 15, morning.MembershipDiscountPct)

	// originalPrice - dynamicPrice == round2(base x discount)
	assert.InDelta(t,
		money.Round2(morning.BasePrice*0.15),
		money.Round2(morning.OriginalPrice-morning.DynamicPrice), 1e-9)
}

func TestComputeSlots_OvernightSlot(t *testing.T) {
	stay := domain.StayWindow{CheckIn: date(2025, 3, 30), CheckOut: date(2025, 4, 1), Guests: 2}
	days := BuildDailyContexts(stay, testForecast, 78, domain.SeasonPeak)

	slots := ComputeSlots(stay, days, domain.GuestProfile{Tier: domain.TierStandard})

	for _, slot := range slots {
		if slot.Slot == domain.SlotOvernight {
			assert.True(t, slot.Recommended, "slot %s", slot.ID)
			assert.Equal(t, 75, slot.RenewablePct)
			assert.Equal(t, 100, slot.EstimatedFullCharge)
			assert.Equal(t, "Low", slot.GridLoad)
			assert.Equal(t, 7.2, slot.ChargingSpeedKW)

			// Ночной слот переходит на следующий день
			wantNext := slot.Date.AddDate(0, 0, 1).Format(domain.DateLabelFormat)
			assert.Equal(t, wantNext, slot.NextDateLabel)

			// 8 номинальных часов вместо 4
			assert.InDelta(t, money.Round2(slot.DynamicPrice*8), slot.EstimatedCost, 1e-9)
		} else {
			assert.False(t, slot.Recommended, "slot %s", slot.ID)
			assert.Empty(t, slot.NextDateLabel)
			assert.InDelta(t, money.Round2(slot.DynamicPrice*4), slot.EstimatedCost, 1e-9)
		}
	}
}

func TestComputeSlots_EstimatedFullChargeFollowsEfficiency(t *testing.T) {
	// Холодный день: эффективность 0.85 -> round(80 x 0.85) = 68%
	forecast := []domain.ForecastEntry{
		{Day: "Mon", TempC: 3, Condition: domain.ConditionCloudy},
	}
	stay := domain.StayWindow{CheckIn: date(2025, 3, 31), CheckOut: date(2025, 4, 1), Guests: 1}
	days := BuildDailyContexts(stay, forecast, 60, domain.SeasonShoulder)

	slots := ComputeSlots(stay, days, domain.GuestProfile{Tier: domain.TierStandard})
	require.Len(t, slots, 4)

	assert.Equal(t, 68, slots[0].EstimatedFullCharge) // Morning
	assert.Equal(t, 100, slots[3].EstimatedFullCharge)

	// Углеродная интенсивность: baseline x погодный множитель
	// Morning 0.9 x (1.15 x 1.05) = 1.08675 -> 1.09
	assert.InDelta(t, 1.09, slots[0].CarbonIntensity, 1e-9)
}

func TestComputeSlots_EmptyWindowIsValid(t *testing.T) {
	stay := domain.StayWindow{CheckIn: date(2025, 3, 30), CheckOut: date(2025, 3, 30)}
	days := BuildDailyContexts(stay, testForecast, 78, domain.SeasonPeak)

	slots := ComputeSlots(stay, days, domain.GuestProfile{Tier: domain.TierStandard})
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestComputeSlots_Deterministic(t *testing.T) {
	stay := domain.StayWindow{CheckIn: date(2025, 3, 30), CheckOut: date(2025, 4, 2), Guests: 2}
	days := BuildDailyContexts(stay, testForecast, 62, domain.SeasonHoliday)
	guest := domain.GuestProfile{Tier: domain.TierSilver}

	first := ComputeSlots(stay, days, guest)
	second := ComputeSlots(stay, days, guest)
	assert.Equal(t, first, second)
}
