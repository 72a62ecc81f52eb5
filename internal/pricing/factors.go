package pricing

import (
	"fmt"
	"time"

	"github.com/electristay/ES-ChargingService/internal/domain"
)

// Факторные функции движка: чистые, без состояния, по узким входам.
// Все правила кусочные, без интерполяции.

// TimeOfDayFactor фактор времени суток по часу начала слота (0-23).
// Ночные часы [22,24)∪[0,6) - скидка 25%, вечерний пик [16,22) - наценка 25%.
func TimeOfDayFactor(hour int) float64 {
	switch {
	case hour >= 22 || hour < 6:
		return -0.25
	case hour >= 16 && hour < 22:
		return 0.25
	default:
		return 0
	}
}

func timeOfDayDescription(factor float64) string {
	switch {
	case factor < 0:
		return "Off-peak hours discount"
	case factor > 0:
		return "Peak hours premium"
	default:
		return "Standard hours"
	}
}

// OccupancyFactor фактор загрузки отеля (проценты 0-100).
// Выше 75% - наценка 15%, ниже 50% - скидка 10%.
func OccupancyFactor(occupancyPct float64) float64 {
	switch {
	case occupancyPct > 75:
		return 0.15
	case occupancyPct < 50:
		return -0.10
	default:
		return 0
	}
}

func occupancyDescription(occupancyPct, factor float64) string {
	demand := "Normal demand"
	switch {
	case factor > 0:
		demand = "High demand"
	case factor < 0:
		demand = "Low demand"
	}
	return fmt.Sprintf("%.0f%% occupancy - %s", occupancyPct, demand)
}

// DayOfWeekFactor фактор дня недели: выходные дороже на 10%
func DayOfWeekFactor(date time.Time) float64 {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return 0.10
	default:
		return 0
	}
}

func dayOfWeekDescription(factor float64) string {
	if factor > 0 {
		return "Weekend rates"
	}
	return "Weekday rates"
}

// SeasonFactor сезонный фактор. Неизвестный сезон трактуется как Shoulder.
func SeasonFactor(season domain.Season) float64 {
	switch season {
	case domain.SeasonPeak:
		return 0.20
	case domain.SeasonOffPeak:
		return -0.15
	case domain.SeasonHoliday:
		return 0.25
	default:
		return 0
	}
}

// MembershipFactor фактор уровня членства.
// Всегда <= 0: членство даёт только скидку, никогда наценку.
func MembershipFactor(tier domain.MembershipTier) float64 {
	return -tier.Discount()
}
