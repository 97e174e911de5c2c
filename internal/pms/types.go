package pms

import "github.com/google/uuid"

// DateLayout is the ISO date format used for stay dates throughout the PMS.
const DateLayout = "2006-01-02"

// RoomAvailability describes one room type that can host the requested stay.
type RoomAvailability struct {
	RoomType      string  `json:"room_type"`
	Description   string  `json:"description"`
	PricePerNight float64 `json:"price_per_night"`
	MaxGuests     int     `json:"max_guests"`
	RoomsLeft     int     `json:"rooms_left"`
	Nights        int     `json:"nights"`
	TotalPrice    float64 `json:"total_price"`
}

// AvailabilityResult is the outcome of an availability check. Available is
// false when no room type has both capacity for the party and rooms left.
type AvailabilityResult struct {
	Available bool               `json:"available"`
	Checkin   string             `json:"checkin_date"`
	Checkout  string             `json:"checkout_date"`
	NumGuests int                `json:"num_guests"`
	Options   []RoomAvailability `json:"options"`
}

// CreateBookingInput carries everything needed to create a booking.
type CreateBookingInput struct {
	HotelID         uuid.UUID
	GuestName       string
	GuestPhone      string
	GuestEmail      string
	CheckinDate     string
	CheckoutDate    string
	RoomType        string
	NumGuests       int
	SpecialRequests string
}
