package domain

import "time"

// StayWindow is a guest's stay: check-in inclusive, check-out exclusive.
type StayWindow struct {
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

// Nights returns the whole-day difference between check-out and check-in.
// Non-positive windows have zero nights.
func (w StayWindow) Nights() int {
	in := truncateToDay(w.CheckIn)
	out := truncateToDay(w.CheckOut)
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}

// IsEmpty returns true if the window contains no nights.
// An empty window is a valid input yielding an empty slot list, not an error.
func (w StayWindow) IsEmpty() bool {
	return w.Nights() == 0
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DailyContext is the pricing context for one calendar day of a stay.
// Occupancy and season are modelled per day even though the current hotel
// configuration applies a single value across the stay.
type DailyContext struct {
	Date         time.Time
	Condition    WeatherCondition
	TemperatureC float64
	OccupancyPct float64
	Season       Season
}

// MembershipTier is the guest's subscription level. Each tier grants a fixed
// discount fraction; the membership pricing factor is always a discount,
// never a premium.
type MembershipTier string

const (
	TierStandard MembershipTier = "Standard"
	TierSilver   MembershipTier = "Silver"
	TierGold     MembershipTier = "Gold"
	TierPlatinum MembershipTier = "Platinum"
)

// ParseMembershipTier maps a tier string to the closed enum.
// Unknown values fall back to TierStandard (no discount).
func ParseMembershipTier(s string) MembershipTier {
	switch MembershipTier(s) {
	case TierSilver, TierGold, TierPlatinum:
		return MembershipTier(s)
	default:
		return TierStandard
	}
}

// Discount returns the tier's discount fraction (0 .. 0.15).
func (t MembershipTier) Discount() float64 {
	switch t {
	case TierPlatinum:
		return 0.15
	case TierGold:
		return 0.10
	case TierSilver:
		return 0.05
	default:
		return 0
	}
}

// GuestProfile is the engine's view of the booking guest.
type GuestProfile struct {
	Tier         MembershipTier
	VehicleModel string
}
