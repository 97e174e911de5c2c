package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"hotel-concierge-agent/internal/pms"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestStore() *Store {
	return New(&mockLogger{})
}

// day returns today+offset formatted like the seeded stay dates.
func day(t *testing.T, offset int) string {
	t.Helper()
	return time.Now().AddDate(0, 0, offset).Format(pms.DateLayout)
}

func TestGetBookingByConfirmation(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	t.Run("case insensitive with whitespace", func(t *testing.T) {
		b, err := s.GetBookingByConfirmation(ctx, "  plr-2024-001 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.GuestName != "Juan Perez" {
			t.Errorf("guest = %q, want Juan Perez", b.GuestName)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		if _, err := s.GetBookingByConfirmation(ctx, "PLR-2024-999"); !errors.Is(err, pms.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("empty code", func(t *testing.T) {
		if _, err := s.GetBookingByConfirmation(ctx, "   "); !errors.Is(err, pms.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestGetBookingByPhone(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	t.Run("exact digits through formatting", func(t *testing.T) {
		b, err := s.GetBookingByPhone(ctx, "+54 9 11 1234-5678")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.ID != BookingJuanID {
			t.Errorf("booking = %s, want Juan's", b.ID)
		}
	})

	t.Run("last eight digit suffix", func(t *testing.T) {
		// Local number without the country code still finds the booking.
		b, err := s.GetBookingByPhone(ctx, "11 1234 5678")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.ID != BookingJuanID {
			t.Errorf("booking = %s, want Juan's", b.ID)
		}
	})

	t.Run("unknown phone", func(t *testing.T) {
		if _, err := s.GetBookingByPhone(ctx, "+1 202 555 0100"); !errors.Is(err, pms.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("no digits", func(t *testing.T) {
		if _, err := s.GetBookingByPhone(ctx, "abc"); !errors.Is(err, pms.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestGetRoomTypes(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	rts, err := s.GetRoomTypes(ctx, HotelID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rts) != 3 {
		t.Errorf("room types = %d, want 3", len(rts))
	}

	if _, err := s.GetRoomTypes(ctx, uuid.New()); !errors.Is(err, pms.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound for unknown hotel", err)
	}
}

func TestCheckAvailability(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	t.Run("prices scale with nights", func(t *testing.T) {
		res, err := s.CheckAvailability(ctx, HotelID, day(t, 30), day(t, 33), 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Available {
			t.Fatal("expected availability far in the future")
		}
		if len(res.Options) != 3 {
			t.Fatalf("options = %d, want all 3 room types", len(res.Options))
		}
		for _, opt := range res.Options {
			if opt.Nights != 3 {
				t.Errorf("%s nights = %d, want 3", opt.RoomType, opt.Nights)
			}
			if want := opt.PricePerNight * 3; opt.TotalPrice != want {
				t.Errorf("%s total = %.2f, want %.2f", opt.RoomType, opt.TotalPrice, want)
			}
		}
	})

	t.Run("party size filters room types", func(t *testing.T) {
		res, err := s.CheckAvailability(ctx, HotelID, day(t, 30), day(t, 31), 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Options) != 1 || res.Options[0].RoomType != "Suite" {
			t.Errorf("options = %+v, want only Suite for 4 guests", res.Options)
		}
	})

	t.Run("party larger than every room type", func(t *testing.T) {
		res, err := s.CheckAvailability(ctx, HotelID, day(t, 30), day(t, 31), 6)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Available || len(res.Options) != 0 {
			t.Errorf("result = %+v, want no availability for 6 guests", res)
		}
	})

	t.Run("zero guests treated as one", func(t *testing.T) {
		res, err := s.CheckAvailability(ctx, HotelID, day(t, 30), day(t, 31), 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.NumGuests != 1 {
			t.Errorf("num guests = %d, want 1", res.NumGuests)
		}
	})

	t.Run("reversed dates", func(t *testing.T) {
		if _, err := s.CheckAvailability(ctx, HotelID, day(t, 5), day(t, 3), 2); !errors.Is(err, pms.ErrInvalidDates) {
			t.Errorf("err = %v, want ErrInvalidDates", err)
		}
	})

	t.Run("unparsable dates", func(t *testing.T) {
		if _, err := s.CheckAvailability(ctx, HotelID, "manana", "pasado", 2); !errors.Is(err, pms.ErrInvalidDates) {
			t.Errorf("err = %v, want ErrInvalidDates", err)
		}
	})
}

func TestCreateBooking(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	base := pms.CreateBookingInput{
		HotelID:      HotelID,
		GuestName:    "Ana Lopez",
		GuestPhone:   "+5491144440000",
		CheckinDate:  day(t, 10),
		CheckoutDate: day(t, 12),
		RoomType:     "deluxe", // matched case-insensitively
		NumGuests:    2,
	}

	t.Run("happy path assigns next confirmation number", func(t *testing.T) {
		b, err := s.CreateBooking(ctx, base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := fmt.Sprintf("PLR-%d-004", time.Now().Year())
		if b.ConfirmationNumber != want {
			t.Errorf("confirmation = %s, want %s", b.ConfirmationNumber, want)
		}
		if b.RoomType != "Deluxe" {
			t.Errorf("room type = %s, want canonical Deluxe", b.RoomType)
		}

		got, err := s.GetBookingByConfirmation(ctx, b.ConfirmationNumber)
		if err != nil {
			t.Fatalf("created booking not findable: %v", err)
		}
		if got.GuestName != "Ana Lopez" {
			t.Errorf("guest = %q, want Ana Lopez", got.GuestName)
		}
	})

	t.Run("unknown room type", func(t *testing.T) {
		in := base
		in.RoomType = "Penthouse"
		if _, err := s.CreateBooking(ctx, in); !errors.Is(err, pms.ErrUnknownRoomType) {
			t.Errorf("err = %v, want ErrUnknownRoomType", err)
		}
	})

	t.Run("party exceeds capacity", func(t *testing.T) {
		in := base
		in.RoomType = "Suite"
		in.NumGuests = 5
		if _, err := s.CreateBooking(ctx, in); !errors.Is(err, pms.ErrCapacityExceeded) {
			t.Errorf("err = %v, want ErrCapacityExceeded", err)
		}
	})

	t.Run("missing guest name", func(t *testing.T) {
		in := base
		in.GuestName = ""
		if _, err := s.CreateBooking(ctx, in); err == nil {
			t.Error("expected an error for missing guest name")
		}
	})
}

func TestCreateBooking_NoRoomsLeft(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	// The Suite has 3 rooms and Maria holds one during her stay. Two more
	// overlapping bookings exhaust the category.
	in := pms.CreateBookingInput{
		HotelID:      HotelID,
		GuestPhone:   "+5491144440001",
		CheckinDate:  day(t, 2),
		CheckoutDate: day(t, 4),
		RoomType:     "Suite",
		NumGuests:    2,
	}
	for i := 0; i < 2; i++ {
		in.GuestName = fmt.Sprintf("Guest %d", i)
		if _, err := s.CreateBooking(ctx, in); err != nil {
			t.Fatalf("booking %d: unexpected error: %v", i, err)
		}
	}

	in.GuestName = "Guest 2"
	if _, err := s.CreateBooking(ctx, in); !errors.Is(err, pms.ErrNoAvailability) {
		t.Errorf("err = %v, want ErrNoAvailability once the category is full", err)
	}

	res, err := s.CheckAvailability(ctx, HotelID, day(t, 2), day(t, 4), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Available {
		t.Error("availability should be false for 4 guests when every Suite is taken")
	}

	// A stay that starts the day the others end does not overlap.
	in.CheckinDate = day(t, 6)
	in.CheckoutDate = day(t, 8)
	if _, err := s.CreateBooking(ctx, in); err != nil {
		t.Errorf("non-overlapping stay rejected: %v", err)
	}
}

func TestCreateServiceRequest(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		req, err := s.CreateServiceRequest(ctx, BookingCarlosID, "towels", "2 toallas extra")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Status != "pending" {
			t.Errorf("status = %s, want pending", req.Status)
		}
		if req.BookingID != BookingCarlosID {
			t.Errorf("booking = %s, want Carlos's", req.BookingID)
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		if _, err := s.CreateServiceRequest(ctx, uuid.New(), "towels", ""); !errors.Is(err, pms.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestUpsellFlow(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	offers, err := s.GetUpsellOffers(ctx, HotelID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offers) != 6 {
		t.Fatalf("offers = %d, want 6 seeded offers", len(offers))
	}

	conv, err := s.RecordUpsellResponse(ctx, BookingJuanID, OfferBreakfastID, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conv.Status != "accepted" {
		t.Errorf("status = %s, want accepted", conv.Status)
	}
	if conv.RespondedAt == nil {
		t.Error("responded_at should be set")
	}

	t.Run("responded offers are excluded per booking", func(t *testing.T) {
		offers, err := s.GetUpsellOffers(ctx, HotelID, &BookingJuanID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(offers) != 5 {
			t.Errorf("offers = %d, want 5 after one response", len(offers))
		}
		for _, o := range offers {
			if o.ID == OfferBreakfastID {
				t.Error("breakfast offer should no longer be shown to Juan")
			}
		}

		// Other bookings still see the full catalog.
		offers, err = s.GetUpsellOffers(ctx, HotelID, &BookingMariaID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(offers) != 6 {
			t.Errorf("offers = %d, want 6 for a booking with no responses", len(offers))
		}
	})

	t.Run("second response updates in place", func(t *testing.T) {
		conv, err := s.RecordUpsellResponse(ctx, BookingJuanID, OfferBreakfastID, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if conv.Status != "declined" {
			t.Errorf("status = %s, want declined after changing the answer", conv.Status)
		}

		all, err := s.ListUpsellConversions(ctx, HotelID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(all) != 1 {
			t.Errorf("conversions = %d, want 1 updated record", len(all))
		}
	})

	t.Run("unknown booking or offer", func(t *testing.T) {
		if _, err := s.RecordUpsellResponse(ctx, uuid.New(), OfferSpaID, true); !errors.Is(err, pms.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound for unknown booking", err)
		}
		if _, err := s.RecordUpsellResponse(ctx, BookingJuanID, uuid.New(), true); !errors.Is(err, pms.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound for unknown offer", err)
		}
	})
}
