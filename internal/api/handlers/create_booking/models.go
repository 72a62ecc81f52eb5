package create_booking

import (
	"time"

	"github.com/electristay/ES-ChargingService/internal/domain"
	createBooking "github.com/electristay/ES-ChargingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model.
// Цена в запросе не принимается: слот переоценивается на сервере.
type CreateBookingRequest struct {
	HotelID      int64   `json:"hotelId"`
	Slot         string  `json:"slot"`     // "morning", "afternoon", "evening", "night"
	SlotDate     string  `json:"slotDate"` // "2025-03-30"
	CheckIn      string  `json:"checkIn,omitempty"`
	CheckOut     string  `json:"checkOut,omitempty"`
	Tier         string  `json:"tier,omitempty"`
	VehicleModel *string `json:"vehicleModel,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// StaySummaryResponse сводка стоимости проживания с зарядкой
type StaySummaryResponse struct {
	Nights       int     `json:"nights"`
	RoomRate     float64 `json:"roomRate"`
	RoomCost     float64 `json:"roomCost"`
	ChargingCost float64 `json:"chargingCost"`
	TotalCost    float64 `json:"totalCost"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64  `json:"id"`
	Reference    string `json:"reference"`
	UserID       int64  `json:"userId"`
	HotelID      int64  `json:"hotelId"`
	Slot         string `json:"slot"`
	SlotName     string `json:"slotName"`
	SlotDate     string `json:"slotDate"`
	StartTime    string `json:"startTime"`
	NominalHours int    `json:"nominalHours"`
	Status       string `json:"status"`

	MembershipTier string  `json:"membershipTier"`
	BasePrice      float64 `json:"basePrice"`
	DynamicPrice   float64 `json:"dynamicPrice"`
	TotalFactor    float64 `json:"totalFactor"`
	EstimatedCost  float64 `json:"estimatedCost"`

	VehicleModel *string `json:"vehicleModel,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	Summary *StaySummaryResponse `json:"summary,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	slotDate, err := time.Parse(domain.DateFormat, r.SlotDate)
	if err != nil {
		return nil, err
	}

	req := &createBooking.Request{
		UserID:       userID,
		HotelID:      r.HotelID,
		Slot:         r.Slot,
		SlotDate:     slotDate,
		Tier:         r.Tier,
		VehicleModel: r.VehicleModel,
		Notes:        r.Notes,
	}

	// Окно проживания опционально, нужно только для сводки стоимости
	if r.CheckIn != "" && r.CheckOut != "" {
		checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
		if err != nil {
			return nil, err
		}
		checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
		if err != nil {
			return nil, err
		}
		req.CheckIn = checkIn
		req.CheckOut = checkOut
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:           resp.ID,
		Reference:    resp.Reference,
		UserID:       resp.UserID,
		HotelID:      resp.HotelID,
		Slot:         string(resp.Slot),
		SlotName:     resp.SlotName,
		SlotDate:     resp.SlotDate.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		NominalHours: resp.NominalHours,
		Status:       resp.Status,

		MembershipTier: string(resp.MembershipTier),
		BasePrice:      resp.BasePrice,
		DynamicPrice:   resp.DynamicPrice,
		TotalFactor:    resp.TotalFactor,
		EstimatedCost:  resp.EstimatedCost,

		VehicleModel: resp.VehicleModel,
		Notes:        resp.Notes,

		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.Summary != nil {
		out.Summary = &StaySummaryResponse{
			Nights:       resp.Summary.Nights,
			RoomRate:     resp.Summary.RoomRate,
			RoomCost:     resp.Summary.RoomCost,
			ChargingCost: resp.Summary.ChargingCost,
			TotalCost:    resp.Summary.TotalCost,
		}
	}

	return out
}
