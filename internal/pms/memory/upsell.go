package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hotel-concierge-agent/internal/model"
	"hotel-concierge-agent/internal/pms"
)

func (s *Store) GetUpsellOffers(ctx context.Context, hotelID uuid.UUID, bookingID *uuid.UUID) ([]model.UpsellOffer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	responded := map[uuid.UUID]bool{}
	if bookingID != nil {
		for _, c := range s.conversions {
			if c.BookingID == *bookingID && c.RespondedAt != nil {
				responded[c.OfferID] = true
			}
		}
	}

	out := make([]model.UpsellOffer, 0, len(s.offers))
	for _, o := range s.offers {
		if o.HotelID != hotelID || !o.IsActive || responded[o.ID] {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (s *Store) RecordUpsellResponse(ctx context.Context, bookingID, offerID uuid.UUID, accepted bool) (*model.UpsellConversion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[bookingID]; !ok {
		return nil, pms.ErrNotFound
	}
	var offer *model.UpsellOffer
	for i := range s.offers {
		if s.offers[i].ID == offerID {
			offer = &s.offers[i]
			break
		}
	}
	if offer == nil {
		return nil, pms.ErrNotFound
	}

	status := "declined"
	if accepted {
		status = "accepted"
	}
	now := time.Now()

	// A second response to the same offer updates the existing record.
	for _, c := range s.conversions {
		if c.BookingID == bookingID && c.OfferID == offerID {
			c.Status = status
			c.RespondedAt = &now
			cp := *c
			return &cp, nil
		}
	}

	c := &model.UpsellConversion{
		ID:          uuid.New(),
		BookingID:   bookingID,
		OfferID:     offerID,
		Status:      status,
		OfferedAt:   now,
		RespondedAt: &now,
	}
	s.conversions[c.ID] = c

	s.l.Infof(ctx, "pms.memory.RecordUpsellResponse: booking %s offer %q %s", bookingID, offer.Name, status)
	cp := *c
	return &cp, nil
}

func (s *Store) ListUpsellConversions(ctx context.Context, hotelID uuid.UUID) ([]model.UpsellConversion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.UpsellConversion, 0, len(s.conversions))
	for _, c := range s.conversions {
		out = append(out, *c)
	}
	return out, nil
}
