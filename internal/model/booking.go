package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
)

// Active reports whether the booking still occupies a room.
func (s BookingStatus) Active() bool {
	return s == BookingConfirmed || s == BookingCheckedIn
}

// Booking is a guest reservation. Dates are ISO "2006-01-02" strings, the
// format the PMS and the model exchange use.
type Booking struct {
	ID                 uuid.UUID     `json:"id"`
	ConfirmationNumber string        `json:"confirmation_number"`
	HotelID            uuid.UUID     `json:"hotel_id"`
	GuestName          string        `json:"guest_name"`
	GuestPhone         string        `json:"guest_phone"`
	GuestEmail         string        `json:"guest_email,omitempty"`
	CheckinDate        string        `json:"checkin_date"`
	CheckoutDate       string        `json:"checkout_date"`
	RoomType           string        `json:"room_type"`
	NumGuests          int           `json:"num_guests"`
	SpecialRequests    string        `json:"special_requests,omitempty"`
	Status             BookingStatus `json:"status"`
	CreatedAt          time.Time     `json:"created_at"`
}

// ServiceRequest is a guest service ticket created through the agent.
type ServiceRequest struct {
	ID          uuid.UUID `json:"id"`
	BookingID   uuid.UUID `json:"booking_id"`
	RequestType string    `json:"request_type"` // towels, late_checkout, wake_up_call, room_service, cleaning, pillow, other
	Details     string    `json:"details"`
	Status      string    `json:"status"` // pending, in_progress, done
	CreatedAt   time.Time `json:"created_at"`
}
