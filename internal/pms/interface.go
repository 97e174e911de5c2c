package pms

import (
	"context"

	"github.com/google/uuid"

	"hotel-concierge-agent/internal/model"
)

// Service is the property-management data provider. Every lookup either
// returns a value or ErrNotFound; implementations never panic past this
// boundary, since tool execution wraps these calls directly.
type Service interface {
	// GetHotel returns hotel master data.
	GetHotel(ctx context.Context, hotelID uuid.UUID) (*model.Hotel, error)

	// GetDefaultHotel returns the single configured hotel.
	GetDefaultHotel(ctx context.Context) (*model.Hotel, error)

	// GetBookingByConfirmation looks a booking up by confirmation number
	// (case-insensitive).
	GetBookingByConfirmation(ctx context.Context, code string) (*model.Booking, error)

	// GetBookingByPhone looks a booking up by guest phone, exact first and
	// then by last-8-digit suffix.
	GetBookingByPhone(ctx context.Context, phone string) (*model.Booking, error)

	// GetRoomTypes lists the hotel's room categories.
	GetRoomTypes(ctx context.Context, hotelID uuid.UUID) ([]model.RoomType, error)

	// CheckAvailability reports which room types can host the stay.
	CheckAvailability(ctx context.Context, hotelID uuid.UUID, checkin, checkout string, numGuests int) (*AvailabilityResult, error)

	// CreateBooking creates a confirmed booking after re-validating availability.
	CreateBooking(ctx context.Context, input CreateBookingInput) (*model.Booking, error)

	// GetAmenities returns the hotel amenities block.
	GetAmenities(ctx context.Context, hotelID uuid.UUID) (map[string]interface{}, error)

	// GetPolicies returns the hotel policies block.
	GetPolicies(ctx context.Context, hotelID uuid.UUID) (map[string]interface{}, error)

	// GetFAQ returns the hotel FAQ entries.
	GetFAQ(ctx context.Context, hotelID uuid.UUID) ([]model.FAQEntry, error)

	// CreateServiceRequest registers a guest service ticket.
	CreateServiceRequest(ctx context.Context, bookingID uuid.UUID, requestType, details string) (*model.ServiceRequest, error)

	// GetUpsellOffers lists active offers, excluding ones the booking already
	// responded to when bookingID is given.
	GetUpsellOffers(ctx context.Context, hotelID uuid.UUID, bookingID *uuid.UUID) ([]model.UpsellOffer, error)

	// RecordUpsellResponse stores a guest's accept/decline of an offer.
	RecordUpsellResponse(ctx context.Context, bookingID, offerID uuid.UUID, accepted bool) (*model.UpsellConversion, error)

	// ListUpsellConversions returns all recorded conversions (analytics read side).
	ListUpsellConversions(ctx context.Context, hotelID uuid.UUID) ([]model.UpsellConversion, error)
}
