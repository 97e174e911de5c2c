package model

import (
	"time"

	"github.com/google/uuid"
)

// Hotel holds the property master data the agent answers from.
// Amenities, policies and FAQ are kept schemaless — they are serialized into
// the model prompt and into tool results as-is.
type Hotel struct {
	ID           uuid.UUID              `json:"id"`
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	Amenities    map[string]interface{} `json:"amenities"`
	Policies     map[string]interface{} `json:"policies"`
	FAQ          []FAQEntry             `json:"faq"`
	ContactPhone string                 `json:"contact_phone"`
	Address      string                 `json:"address"`
}

// FAQEntry is a single question/answer pair of the hotel FAQ.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// RoomType describes a bookable room category.
type RoomType struct {
	ID            uuid.UUID `json:"id"`
	HotelID       uuid.UUID `json:"hotel_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PricePerNight float64   `json:"price_per_night"`
	MaxGuests     int       `json:"max_guests"`
	TotalRooms    int       `json:"total_rooms"`
}

// UpsellOffer is an add-on the agent may propose to a guest with a booking.
type UpsellOffer struct {
	ID          uuid.UUID `json:"id"`
	HotelID     uuid.UUID `json:"hotel_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	OfferType   string    `json:"offer_type"` // upgrade, breakfast, late_checkout, spa, early_checkin
	IsActive    bool      `json:"is_active"`
}

// UpsellConversion records a guest's response to an upsell offer.
type UpsellConversion struct {
	ID          uuid.UUID  `json:"id"`
	BookingID   uuid.UUID  `json:"booking_id"`
	OfferID     uuid.UUID  `json:"offer_id"`
	Status      string     `json:"status"` // offered, accepted, declined
	OfferedAt   time.Time  `json:"offered_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}
