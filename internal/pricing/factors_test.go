package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/electristay/ES-ChargingService/internal/domain"
)

func TestTimeOfDayFactor(t *testing.T) {
	tests := []struct {
		hour int
		want float64
	}{
		{hour: 0, want: -0.25},
		{hour: 5, want: -0.25},
		{hour: 6, want: 0},
		{hour: 12, want: 0},
		{hour: 15, want: 0},
		{hour: 16, want: 0.25},
		{hour: 17, want: 0.25},
		{hour: 21, want: 0.25},
		{hour: 22, want: -0.25},
		{hour: 23, want: -0.25},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TimeOfDayFactor(tt.hour), "hour %d", tt.hour)
	}
}

func TestOccupancyFactor(t *testing.T) {
	tests := []struct {
		occupancy float64
		want      float64
	}{
		{occupancy: 0, want: -0.10},
		{occupancy: 49, want: -0.10},
		{occupancy: 50, want: 0},
		{occupancy: 60, want: 0},
		{occupancy: 75, want: 0},
		{occupancy: 76, want: 0.15},
		{occupancy: 78, want: 0.15},
		{occupancy: 100, want: 0.15},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, OccupancyFactor(tt.occupancy), "occupancy %v", tt.occupancy)
	}
}

func TestDayOfWeekFactor(t *testing.T) {
	saturday := time.Date(2025, 3, 29, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0.10, DayOfWeekFactor(saturday))
	assert.Equal(t, 0.10, DayOfWeekFactor(sunday))
	assert.Equal(t, 0.0, DayOfWeekFactor(monday))
}

func TestSeasonFactor(t *testing.T) {
	assert.Equal(t, 0.20, SeasonFactor(domain.SeasonPeak))
	assert.Equal(t, -0.15, SeasonFactor(domain.SeasonOffPeak))
	assert.Equal(t, 0.25, SeasonFactor(domain.SeasonHoliday))
	assert.Equal(t, 0.0, SeasonFactor(domain.SeasonShoulder))

	// Неизвестный сезон - нейтральная ветка, не ошибка
	assert.Equal(t, 0.0, SeasonFactor(domain.Season("monsoon")))
}

func TestMembershipFactor_NeverAPremium(t *testing.T) {
	tiers := []struct {
		tier domain.MembershipTier
		want float64
	}{
		{tier: domain.TierStandard, want: 0},
		{tier: domain.TierSilver, want: -0.05},
		{tier: domain.TierGold, want: -0.10},
		{tier: domain.TierPlatinum, want: -0.15},
	}

	for _, tt := range tiers {
		got := MembershipFactor(tt.tier)
		assert.Equal(t, tt.want, got, "tier %s", tt.tier)
		assert.LessOrEqual(t, got, 0.0, "membership factor must be a discount")
	}
}
