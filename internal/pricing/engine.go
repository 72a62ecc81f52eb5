// Package pricing реализует движок динамического ценообразования зарядных
// слотов: шесть независимых мультипликативных факторов (время суток,
// загрузка отеля, день недели, погода, сезон, уровень членства) поверх
// фиксированного каталога дневных слотов.
//
// Движок полностью чистый: не держит состояния, не делает I/O и на
// одинаковых входах всегда выдаёт одинаковую упорядоченную последовательность
// слотов, поэтому может вызываться конкурентно без координации.
package pricing

import (
	"fmt"
	"math"
	"time"

	"github.com/electristay/ES-ChargingService/internal/domain"
	"github.com/electristay/ES-ChargingService/pkg/money"
)

// BuildDailyContexts строит контекст ценообразования на каждый день
// проживания. Погода ищется в недельном прогнозе по короткому имени дня
// недели; если записи нет - берётся первая запись прогноза (детерминированный
// fallback, не ошибка). Пустой прогноз заменяется встроенным по умолчанию.
func BuildDailyContexts(
	stay domain.StayWindow,
	forecast []domain.ForecastEntry,
	occupancyPct float64,
	season domain.Season,
) []domain.DailyContext {
	if len(forecast) == 0 {
		forecast = domain.DefaultForecast
	}

	days := make([]domain.DailyContext, 0, stay.Nights())
	for d := 0; d < stay.Nights(); d++ {
		date := stay.CheckIn.AddDate(0, 0, d)
		entry := lookupForecast(forecast, date)

		days = append(days, domain.DailyContext{
			Date:         date,
			Condition:    entry.Condition,
			TemperatureC: entry.TempC,
			OccupancyPct: occupancyPct,
			Season:       season,
		})
	}
	return days
}

func lookupForecast(forecast []domain.ForecastEntry, date time.Time) domain.ForecastEntry {
	weekday := date.Format(domain.WeekdayFormat)
	for _, entry := range forecast {
		if entry.Day == weekday {
			return entry
		}
	}
	return forecast[0]
}

// ComputeSlots генерирует полную упорядоченную последовательность слотов:
// по дню на каждый календарный день окна (заезд включительно, выезд
// исключительно), по всем четырём шаблонам каталога, в порядке
// дата-возрастание, затем шаблон-возрастание (Morning, Afternoon, Evening,
// Overnight).
//
// Окно с checkOut <= checkIn даёт пустой (не nil) список - это валидный
// результат, не ошибка.
func ComputeSlots(
	stay domain.StayWindow,
	days []domain.DailyContext,
	guest domain.GuestProfile,
) []domain.PricedSlot {
	slots := make([]domain.PricedSlot, 0, len(days)*len(domain.SlotTemplates))

	discount := guest.Tier.Discount()
	membershipFactor := MembershipFactor(guest.Tier)

	for dayIdx, day := range days {
		weather := AssessWeather(day.Condition, day.TemperatureC)

		occupancyFactor := OccupancyFactor(day.OccupancyPct)
		dayOfWeekFactor := DayOfWeekFactor(day.Date)
		seasonFactor := SeasonFactor(day.Season)

		for _, tpl := range domain.SlotTemplates {
			todFactor := TimeOfDayFactor(tpl.StartHour())

			factors := []domain.PricingFactor{
				{
					Name:        domain.FactorTimeOfDay,
					Value:       todFactor,
					Description: timeOfDayDescription(todFactor),
				},
				{
					Name:        domain.FactorOccupancy,
					Value:       occupancyFactor,
					Description: occupancyDescription(day.OccupancyPct, occupancyFactor),
				},
				{
					Name:        domain.FactorDayOfWeek,
					Value:       dayOfWeekFactor,
					Description: dayOfWeekDescription(dayOfWeekFactor),
				},
				{
					Name:        domain.FactorWeather,
					Value:       weather.PriceFactor,
					Description: fmt.Sprintf("%s, %g°C", day.Condition, day.TemperatureC),
				},
				{
					Name:        domain.FactorSeason,
					Value:       seasonFactor,
					Description: fmt.Sprintf("%s season", day.Season),
				},
				{
					Name:        domain.FactorMembership,
					Value:       membershipFactor,
					Description: fmt.Sprintf("%s tier", guest.Tier),
				},
			}

			totalFactor := 1.0
			for _, f := range factors {
				totalFactor += f.Value
			}

			dynamicPrice := money.Round2(tpl.BasePrice * totalFactor)
			// Цена того же слота без членской скидки - для зачёркнутого
			// референса на витрине.
			originalPrice := money.Round2(tpl.BasePrice * (totalFactor + discount))

			slot := domain.PricedSlot{
				ID:        fmt.Sprintf("%s-%d", tpl.ID, dayIdx),
				Slot:      tpl.ID,
				Name:      tpl.Name,
				StartTime: tpl.StartTime,
				EndTime:   tpl.EndTime,

				Date:      day.Date,
				DateLabel: day.Date.Format(domain.DateLabelFormat),

				BasePrice:     tpl.BasePrice,
				DynamicPrice:  dynamicPrice,
				OriginalPrice: originalPrice,
				TotalFactor:   totalFactor,
				Factors:       factors,

				MembershipTier:        guest.Tier,
				MembershipDiscountPct: int(math.Round(discount * 100)),
				DiscountAmount:        money.Round2(tpl.BasePrice * discount * (totalFactor + discount)),

				EstimatedCost: money.Round2(dynamicPrice * float64(tpl.NominalHours)),
				OriginalCost:  money.Round2(originalPrice * float64(tpl.NominalHours)),

				Recommended:     tpl.ID == domain.SlotOvernight,
				ChargingSpeedKW: tpl.ChargingSpeedKW,
				GridLoad:        tpl.GridLoad,

				WeatherImpact:       weather.Impact,
				TemperatureC:        day.TemperatureC,
				Condition:           day.Condition,
				EstimatedFullCharge: estimatedFullCharge(tpl, weather),
				RenewablePct:        tpl.RenewablePct,
				CarbonIntensity:     money.Round2(tpl.CarbonBaseline * weather.CarbonMultiplier),
				OccupancyPct:        day.OccupancyPct,
				Season:              day.Season,
			}

			if tpl.Extended {
				slot.NextDateLabel = day.Date.AddDate(0, 0, 1).Format(domain.DateLabelFormat)
			}

			slots = append(slots, slot)
		}
	}

	return slots
}

// estimatedFullCharge ожидаемый уровень заряда к концу слота.
// Ночной слот успевает до 100%, дневные - 80% с поправкой на
// погодную эффективность.
func estimatedFullCharge(tpl domain.SlotTemplate, weather WeatherImpact) int {
	if tpl.ID == domain.SlotOvernight {
		return 100
	}
	return int(math.Round(80 * weather.EfficiencyFactor))
}
