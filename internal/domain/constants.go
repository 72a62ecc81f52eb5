package domain

// Default hotel energy configuration values
const (
	DefaultOccupancyPct     = 78.0
	DefaultChargingStations = 4
	DefaultRoomRate         = 117.0
)

// Business validation constants
const (
	MinOccupancyPct             = 0
	MaxOccupancyPct             = 100
	MinChargingStations         = 1
	MaxChargingStations         = 50
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxStayNights               = 30
)

// Time format constants
const (
	TimeFormat      = "15:04"      // HH:MM
	DateFormat      = "2006-01-02" // YYYY-MM-DD
	DateLabelFormat = "Mon, Jan 2" // display label, e.g. "Sun, Mar 30"
	WeekdayFormat   = "Mon"        // forecast lookup key
)

// InactiveStatuses список статусов неактивных бронирований.
// Используется при подсчёте занятости станций.
var InactiveStatuses = []BookingStatus{
	StatusCancelledByGuest,
	StatusCancelledByHotel,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCharging,
	StatusCompleted,
}
