package domain

// WeatherCondition is a closed set of weather conditions the pricing rules
// understand. Values arriving from external feeds are parsed with
// ParseWeatherCondition; anything unknown maps to ConditionOther, which is
// priced as the neutral branch.
type WeatherCondition string

const (
	ConditionSunny        WeatherCondition = "sunny"
	ConditionCloudy       WeatherCondition = "cloudy"
	ConditionPartlyCloudy WeatherCondition = "partly-cloudy"
	ConditionRainy        WeatherCondition = "rainy"
	ConditionOther        WeatherCondition = "other"
)

// ParseWeatherCondition maps an externally-sourced condition string to the
// closed enum. Unknown values fall back to ConditionOther, never an error.
func ParseWeatherCondition(s string) WeatherCondition {
	switch WeatherCondition(s) {
	case ConditionSunny, ConditionCloudy, ConditionPartlyCloudy, ConditionRainy:
		return WeatherCondition(s)
	default:
		return ConditionOther
	}
}

// Season is the hotel's pricing season.
type Season string

const (
	SeasonOffPeak  Season = "Off-Peak"
	SeasonShoulder Season = "Shoulder"
	SeasonPeak     Season = "Peak"
	SeasonHoliday  Season = "Holiday"
)

// ParseSeason maps a season string to the closed enum. Unknown values fall
// back to SeasonShoulder (the zero-adjustment branch).
func ParseSeason(s string) Season {
	switch Season(s) {
	case SeasonOffPeak, SeasonPeak, SeasonHoliday:
		return Season(s)
	default:
		return SeasonShoulder
	}
}

// ForecastEntry is one day of the weekly weather forecast, keyed by the
// short weekday name ("Mon".."Sun").
type ForecastEntry struct {
	Day       string           `json:"day"`
	TempC     float64          `json:"temp"`
	Condition WeatherCondition `json:"condition"`
}

// DefaultForecast is the built-in forecast used when a hotel has no stored
// forecast and the weather feed is unreachable.
var DefaultForecast = []ForecastEntry{
	{Day: "Mon", TempC: 15, Condition: ConditionSunny},
	{Day: "Tue", TempC: 12, Condition: ConditionCloudy},
	{Day: "Wed", TempC: 14, Condition: ConditionPartlyCloudy},
	{Day: "Thu", TempC: 11, Condition: ConditionRainy},
}
