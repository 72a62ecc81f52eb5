package get_charging_slots

import (
	"strconv"
	"time"

	"github.com/electristay/ES-ChargingService/internal/domain"
	getChargingSlots "github.com/electristay/ES-ChargingService/internal/usecase/get_charging_slots"
)

// ChargingSlotsResponse HTTP response model
type ChargingSlotsResponse struct {
	HotelID      int64          `json:"hotelId"`
	CheckIn      string         `json:"checkIn"`
	CheckOut     string         `json:"checkOut"`
	Nights       int            `json:"nights"`
	OccupancyPct float64        `json:"occupancyPct"`
	Season       string         `json:"season"`
	Tier         string         `json:"tier"`
	FromCache    bool           `json:"fromCache"`
	Slots        []ChargingSlot `json:"slots"`
}

// ChargingSlot котировка одного зарядного окна на один день проживания
type ChargingSlot struct {
	ID            string `json:"id"`
	Slot          string `json:"slot"`
	Name          string `json:"name"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Date          string `json:"date"`
	DateLabel     string `json:"dateLabel"`
	NextDateLabel string `json:"nextDateLabel,omitempty"`

	BasePrice     float64  `json:"basePrice"`
	DynamicPrice  float64  `json:"dynamicPrice"`
	OriginalPrice float64  `json:"originalPrice"`
	TotalFactor   float64  `json:"totalFactor"`
	Factors       []Factor `json:"factors"`

	MembershipTier        string  `json:"membershipTier"`
	MembershipDiscountPct int     `json:"membershipDiscountPct"`
	DiscountAmount        float64 `json:"discountAmount"`

	EstimatedCost float64 `json:"estimatedCost"`
	OriginalCost  float64 `json:"originalCost"`

	Recommended     bool    `json:"recommended"`
	ChargingSpeedKW float64 `json:"chargingSpeedKW"`
	GridLoad        string  `json:"gridLoad"`

	WeatherImpact       string  `json:"weatherImpact"`
	TemperatureC        float64 `json:"temperature"`
	Condition           string  `json:"condition"`
	EstimatedFullCharge int     `json:"estimatedFullCharge"`
	RenewablePct        int     `json:"renewablePct"`
	CarbonIntensity     float64 `json:"carbonIntensity"`
	OccupancyPct        float64 `json:"occupancyPct"`
	Season              string  `json:"season"`
}

// Factor одна составляющая цены с объяснением
type Factor struct {
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getChargingSlots.Response) *ChargingSlotsResponse {
	slots := make([]ChargingSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		factors := make([]Factor, len(slot.Factors))
		for j, f := range slot.Factors {
			factors[j] = Factor{
				Name:        string(f.Name),
				Value:       f.Value,
				Description: f.Description,
			}
		}

		slots[i] = ChargingSlot{
			ID:            slot.ID,
			Slot:          string(slot.Slot),
			Name:          slot.Name,
			StartTime:     slot.StartTime.String(),
			EndTime:       slot.EndTime.String(),
			Date:          slot.Date.Format(domain.DateFormat),
			DateLabel:     slot.DateLabel,
			NextDateLabel: slot.NextDateLabel,

			BasePrice:     slot.BasePrice,
			DynamicPrice:  slot.DynamicPrice,
			OriginalPrice: slot.OriginalPrice,
			TotalFactor:   slot.TotalFactor,
			Factors:       factors,

			MembershipTier:        string(slot.MembershipTier),
			MembershipDiscountPct: slot.MembershipDiscountPct,
			DiscountAmount:        slot.DiscountAmount,

			EstimatedCost: slot.EstimatedCost,
			OriginalCost:  slot.OriginalCost,

			Recommended:     slot.Recommended,
			ChargingSpeedKW: slot.ChargingSpeedKW,
			GridLoad:        slot.GridLoad,

			WeatherImpact:       slot.WeatherImpact,
			TemperatureC:        slot.TemperatureC,
			Condition:           string(slot.Condition),
			EstimatedFullCharge: slot.EstimatedFullCharge,
			RenewablePct:        slot.RenewablePct,
			CarbonIntensity:     slot.CarbonIntensity,
			OccupancyPct:        slot.OccupancyPct,
			Season:              string(slot.Season),
		}
	}

	return &ChargingSlotsResponse{
		HotelID:      resp.HotelID,
		CheckIn:      resp.CheckIn.Format(domain.DateFormat),
		CheckOut:     resp.CheckOut.Format(domain.DateFormat),
		Nights:       resp.Nights,
		OccupancyPct: resp.OccupancyPct,
		Season:       string(resp.Season),
		Tier:         string(resp.Tier),
		FromCache:    resp.FromCache,
		Slots:        slots,
	}
}

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(hotelID int64, userID int64, checkInStr, checkOutStr, tier, guestsStr, vehicle string) (*getChargingSlots.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, checkInStr)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, checkOutStr)
	if err != nil {
		return nil, err
	}

	guests := 1
	if guestsStr != "" {
		guests, err = strconv.Atoi(guestsStr)
		if err != nil {
			return nil, err
		}
	}

	return &getChargingSlots.Request{
		UserID:       userID,
		HotelID:      hotelID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Guests:       guests,
		Tier:         tier,
		VehicleModel: vehicle,
	}, nil
}
