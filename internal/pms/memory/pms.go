package memory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"hotel-concierge-agent/internal/model"
	"hotel-concierge-agent/internal/pms"
)

func (s *Store) GetHotel(ctx context.Context, hotelID uuid.UUID) (*model.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.hotel == nil || s.hotel.ID != hotelID {
		return nil, pms.ErrNotFound
	}
	h := *s.hotel
	return &h, nil
}

func (s *Store) GetDefaultHotel(ctx context.Context) (*model.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.hotel == nil {
		return nil, pms.ErrNotFound
	}
	h := *s.hotel
	return &h, nil
}

func (s *Store) GetBookingByConfirmation(ctx context.Context, code string) (*model.Booking, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, pms.ErrNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if strings.ToUpper(b.ConfirmationNumber) == code {
			cp := *b
			return &cp, nil
		}
	}
	return nil, pms.ErrNotFound
}

func (s *Store) GetBookingByPhone(ctx context.Context, phone string) (*model.Booking, error) {
	digits := digitsOf(phone)
	if digits == "" {
		return nil, pms.ErrNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	// Exact digit match wins.
	for _, b := range s.bookings {
		if digitsOf(b.GuestPhone) == digits {
			cp := *b
			return &cp, nil
		}
	}

	// Fall back to matching the last 8 digits, which survives country-code
	// and formatting differences between what the guest typed and what the
	// booking stored.
	if len(digits) >= 8 {
		suffix := digits[len(digits)-8:]
		for _, b := range s.bookings {
			stored := digitsOf(b.GuestPhone)
			if len(stored) >= 8 && stored[len(stored)-8:] == suffix {
				cp := *b
				return &cp, nil
			}
		}
	}
	return nil, pms.ErrNotFound
}

func digitsOf(phone string) string {
	var sb strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func (s *Store) GetRoomTypes(ctx context.Context, hotelID uuid.UUID) ([]model.RoomType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.RoomType, 0, len(s.roomTypes))
	for _, rt := range s.roomTypes {
		if rt.HotelID == hotelID {
			out = append(out, rt)
		}
	}
	if len(out) == 0 {
		return nil, pms.ErrNotFound
	}
	return out, nil
}

func (s *Store) GetAmenities(ctx context.Context, hotelID uuid.UUID) (map[string]interface{}, error) {
	h, err := s.GetHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	return h.Amenities, nil
}

func (s *Store) GetPolicies(ctx context.Context, hotelID uuid.UUID) (map[string]interface{}, error) {
	h, err := s.GetHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	return h.Policies, nil
}

func (s *Store) GetFAQ(ctx context.Context, hotelID uuid.UUID) ([]model.FAQEntry, error) {
	h, err := s.GetHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	return h.FAQ, nil
}

func (s *Store) CreateServiceRequest(ctx context.Context, bookingID uuid.UUID, requestType, details string) (*model.ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[bookingID]; !ok {
		return nil, pms.ErrNotFound
	}

	req := &model.ServiceRequest{
		ID:          uuid.New(),
		BookingID:   bookingID,
		RequestType: requestType,
		Details:     details,
		Status:      "pending",
		CreatedAt:   time.Now(),
	}
	s.requests[req.ID] = req

	s.l.Infof(ctx, "pms.memory.CreateServiceRequest: %s for booking %s", requestType, bookingID)
	cp := *req
	return &cp, nil
}
