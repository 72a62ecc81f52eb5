package domain

import (
	"time"

	"github.com/electristay/ES-ChargingService/pkg/types"
)

// SlotID identifies one of the four daily charging windows.
type SlotID string

const (
	SlotMorning   SlotID = "morning"
	SlotAfternoon SlotID = "afternoon"
	SlotEvening   SlotID = "evening"
	SlotOvernight SlotID = "night"
)

// ParseSlotID валидирует идентификатор слота
func ParseSlotID(s string) (SlotID, bool) {
	switch SlotID(s) {
	case SlotMorning, SlotAfternoon, SlotEvening, SlotOvernight:
		return SlotID(s), true
	default:
		return "", false
	}
}

// SlotTemplate is one entry of the fixed daily slot catalog. BasePrice is
// EUR per kWh. The catalog is defined once and never mutated.
type SlotTemplate struct {
	ID              SlotID
	Name            string
	StartTime       types.TimeString
	EndTime         types.TimeString
	BasePrice       float64
	Extended        bool // spans midnight into the next calendar day
	NominalHours    int  // fixed nominal session duration used for cost estimates
	CarbonBaseline  float64
	RenewablePct    int
	ChargingSpeedKW float64
	GridLoad        string
}

// StartHour returns the slot's start hour (0-23).
func (t SlotTemplate) StartHour() int {
	h, err := t.StartTime.Hour()
	if err != nil {
		return 0
	}
	return h
}

// SlotTemplates is the fixed, ordered catalog of daily charging windows.
// Treat as immutable.
var SlotTemplates = []SlotTemplate{
	{
		ID: SlotMorning, Name: "Morning",
		StartTime: "06:00", EndTime: "10:00",
		BasePrice: 14, NominalHours: 4,
		CarbonBaseline: 0.9, RenewablePct: 60,
		ChargingSpeedKW: 11, GridLoad: "Medium",
	},
	{
		ID: SlotAfternoon, Name: "Afternoon",
		StartTime: "12:00", EndTime: "16:00",
		BasePrice: 18, NominalHours: 4,
		CarbonBaseline: 1.5, RenewablePct: 40,
		ChargingSpeedKW: 11, GridLoad: "High",
	},
	{
		ID: SlotEvening, Name: "Evening",
		StartTime: "17:00", EndTime: "21:00",
		BasePrice: 16, NominalHours: 4,
		CarbonBaseline: 1.2, RenewablePct: 45,
		ChargingSpeedKW: 11, GridLoad: "High",
	},
	{
		ID: SlotOvernight, Name: "Overnight",
		StartTime: "22:00", EndTime: "06:00",
		BasePrice: 10, Extended: true, NominalHours: 8,
		CarbonBaseline: 0.7, RenewablePct: 75,
		ChargingSpeedKW: 7.2, GridLoad: "Low",
	},
}

// SlotTemplateByID возвращает шаблон слота из каталога
func SlotTemplateByID(id SlotID) (SlotTemplate, bool) {
	for _, t := range SlotTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return SlotTemplate{}, false
}

// FactorName is the name of one pricing dimension.
type FactorName string

const (
	FactorTimeOfDay  FactorName = "Time of Day"
	FactorOccupancy  FactorName = "Hotel Occupancy"
	FactorDayOfWeek  FactorName = "Day of Week"
	FactorWeather    FactorName = "Weather"
	FactorSeason     FactorName = "Season"
	FactorMembership FactorName = "Membership"
)

// FactorOrder is the fixed order pricing factors appear in on every slot.
var FactorOrder = []FactorName{
	FactorTimeOfDay,
	FactorOccupancy,
	FactorDayOfWeek,
	FactorWeather,
	FactorSeason,
	FactorMembership,
}

// PricingFactor is one signed fractional price adjustment with a
// human-readable explanation (+0.25 = +25%).
type PricingFactor struct {
	Name        FactorName
	Value       float64
	Description string
}

// PricedSlot is the engine output: one offered charging window on one stay
// day with the full pricing breakdown. Computed fresh on every input change
// and never mutated afterwards.
type PricedSlot struct {
	ID        string // "<slot>-<dayIndex>", e.g. "night-1"
	Slot      SlotID
	Name      string
	StartTime types.TimeString
	EndTime   types.TimeString

	Date          time.Time
	DateLabel     string
	NextDateLabel string // set only for overnight slots

	BasePrice     float64
	DynamicPrice  float64
	OriginalPrice float64 // price without the membership discount
	TotalFactor   float64 // 1 + sum of factor values
	Factors       []PricingFactor

	MembershipTier        MembershipTier
	MembershipDiscountPct int
	DiscountAmount        float64

	EstimatedCost float64 // DynamicPrice x nominal hours
	OriginalCost  float64 // OriginalPrice x nominal hours

	Recommended     bool
	ChargingSpeedKW float64
	GridLoad        string

	WeatherImpact       string
	TemperatureC        float64
	Condition           WeatherCondition
	EstimatedFullCharge int // percent
	RenewablePct        int
	CarbonIntensity     float64 // kg CO2 per kWh
	OccupancyPct        float64
	Season              Season
}
