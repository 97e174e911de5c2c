package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hotel-concierge-agent/internal/model"
	"hotel-concierge-agent/internal/pms"
)

func (s *Store) CheckAvailability(ctx context.Context, hotelID uuid.UUID, checkin, checkout string, numGuests int) (*pms.AvailabilityResult, error) {
	ci, co, nights, err := parseStay(checkin, checkout)
	if err != nil {
		return nil, err
	}
	if numGuests < 1 {
		numGuests = 1
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := &pms.AvailabilityResult{
		Checkin:   ci.Format(pms.DateLayout),
		Checkout:  co.Format(pms.DateLayout),
		NumGuests: numGuests,
	}

	for _, rt := range s.roomTypes {
		if rt.HotelID != hotelID || rt.MaxGuests < numGuests {
			continue
		}
		left := rt.TotalRooms - s.occupiedLocked(rt.Name, ci, co)
		if left <= 0 {
			continue
		}
		result.Options = append(result.Options, pms.RoomAvailability{
			RoomType:      rt.Name,
			Description:   rt.Description,
			PricePerNight: rt.PricePerNight,
			MaxGuests:     rt.MaxGuests,
			RoomsLeft:     left,
			Nights:        nights,
			TotalPrice:    rt.PricePerNight * float64(nights),
		})
	}
	result.Available = len(result.Options) > 0
	return result, nil
}

func (s *Store) CreateBooking(ctx context.Context, input pms.CreateBookingInput) (*model.Booking, error) {
	ci, co, _, err := parseStay(input.CheckinDate, input.CheckoutDate)
	if err != nil {
		return nil, err
	}
	if input.GuestName == "" || input.GuestPhone == "" {
		return nil, fmt.Errorf("guest name and phone are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var rt *model.RoomType
	for i := range s.roomTypes {
		if s.roomTypes[i].HotelID == input.HotelID && strings.EqualFold(s.roomTypes[i].Name, input.RoomType) {
			rt = &s.roomTypes[i]
			break
		}
	}
	if rt == nil {
		return nil, pms.ErrUnknownRoomType
	}
	if input.NumGuests > rt.MaxGuests {
		return nil, pms.ErrCapacityExceeded
	}
	if rt.TotalRooms-s.occupiedLocked(rt.Name, ci, co) <= 0 {
		return nil, pms.ErrNoAvailability
	}

	s.bookingSeq++
	b := &model.Booking{
		ID:                 uuid.New(),
		ConfirmationNumber: fmt.Sprintf("PLR-%d-%03d", time.Now().Year(), s.bookingSeq),
		HotelID:            input.HotelID,
		GuestName:          input.GuestName,
		GuestPhone:         input.GuestPhone,
		GuestEmail:         input.GuestEmail,
		CheckinDate:        ci.Format(pms.DateLayout),
		CheckoutDate:       co.Format(pms.DateLayout),
		RoomType:           rt.Name,
		NumGuests:          input.NumGuests,
		SpecialRequests:    input.SpecialRequests,
		Status:             model.BookingConfirmed,
		CreatedAt:          time.Now(),
	}
	s.bookings[b.ID] = b

	s.l.Infof(ctx, "pms.memory.CreateBooking: %s %s %s -> %s", b.ConfirmationNumber, b.RoomType, b.CheckinDate, b.CheckoutDate)
	cp := *b
	return &cp, nil
}

// occupiedLocked counts active bookings of the room type whose stay overlaps
// [ci, co). Callers hold at least the read lock.
func (s *Store) occupiedLocked(roomType string, ci, co time.Time) int {
	n := 0
	for _, b := range s.bookings {
		if b.RoomType != roomType || !b.Status.Active() {
			continue
		}
		bci, err1 := time.Parse(pms.DateLayout, b.CheckinDate)
		bco, err2 := time.Parse(pms.DateLayout, b.CheckoutDate)
		if err1 != nil || err2 != nil {
			continue
		}
		// Half-open ranges overlap when each starts before the other ends.
		if bci.Before(co) && ci.Before(bco) {
			n++
		}
	}
	return n
}

func parseStay(checkin, checkout string) (ci, co time.Time, nights int, err error) {
	ci, err = time.Parse(pms.DateLayout, strings.TrimSpace(checkin))
	if err != nil {
		return time.Time{}, time.Time{}, 0, pms.ErrInvalidDates
	}
	co, err = time.Parse(pms.DateLayout, strings.TrimSpace(checkout))
	if err != nil {
		return time.Time{}, time.Time{}, 0, pms.ErrInvalidDates
	}
	if !co.After(ci) {
		return time.Time{}, time.Time{}, 0, pms.ErrInvalidDates
	}
	nights = int(co.Sub(ci).Hours() / 24)
	return ci, co, nights, nil
}
