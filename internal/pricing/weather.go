package pricing

import "github.com/electristay/ES-ChargingService/internal/domain"

// WeatherImpact влияние погоды одного дня на цену, эффективность зарядки
// и углеродный след.
type WeatherImpact struct {
	PriceFactor      float64
	EfficiencyFactor float64
	CarbonMultiplier float64
	Impact           string
	Availability     string
	AvailabilityPeak string
}

const impactSeparator = " • "

// AssessWeather оценивает влияние погодных условий и температуры.
// Температурные диапазоны не пересекаются: срабатывает максимум один
// (порядок проверки: холод, жара, оптимум). Вклад условия аддитивен
// к температурному.
func AssessWeather(condition domain.WeatherCondition, tempC float64) WeatherImpact {
	w := WeatherImpact{
		EfficiencyFactor: 1,
		CarbonMultiplier: 1,
		Availability:     "High",
		AvailabilityPeak: "Medium",
	}

	switch {
	case tempC < 5:
		w.PriceFactor += 0.10
		w.EfficiencyFactor = 0.85
		w.CarbonMultiplier = 1.15
		w.Impact = "Cold temperatures reduce battery efficiency by 15%"
	case tempC > 30:
		w.PriceFactor += 0.10
		w.EfficiencyFactor = 0.92
		w.CarbonMultiplier = 1.05
		w.Impact = "High temperatures slightly reduce battery efficiency"
	case tempC >= 15 && tempC <= 25:
		w.PriceFactor -= 0.05
		w.EfficiencyFactor = 1.05
		w.CarbonMultiplier = 0.95
		w.Impact = "Optimal temperature increases charging efficiency by 5%"
	}

	switch condition {
	case domain.ConditionRainy:
		w.PriceFactor += 0.05
		w.CarbonMultiplier *= 1.1
		w.Availability = "Medium"
		w.AvailabilityPeak = "Low"
		w.appendImpact("Rain may affect outdoor charging equipment")
	case domain.ConditionCloudy:
		w.CarbonMultiplier *= 1.05
	case domain.ConditionSunny:
		w.PriceFactor -= 0.05
		w.CarbonMultiplier *= 0.9
		w.appendImpact("Sunny conditions increase solar energy production")
	}

	return w
}

func (w *WeatherImpact) appendImpact(clause string) {
	if w.Impact != "" {
		w.Impact += impactSeparator
	}
	w.Impact += clause
}
