package tools

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"hotel-concierge-agent/internal/agent"
	"hotel-concierge-agent/internal/pms"
	pkgLog "hotel-concierge-agent/pkg/log"
)

// GetUpsellOffersTool lists active add-on offers for the hotel.
type GetUpsellOffersTool struct {
	pms     pms.Service
	hotelID uuid.UUID
	l       pkgLog.Logger
}

// NewGetUpsellOffersTool creates a new upsell offers tool.
func NewGetUpsellOffersTool(svc pms.Service, hotelID uuid.UUID, l pkgLog.Logger) *GetUpsellOffersTool {
	return &GetUpsellOffersTool{pms: svc, hotelID: hotelID, l: l}
}

func (t *GetUpsellOffersTool) Name() string {
	return "get_upsell_offers"
}

func (t *GetUpsellOffersTool) Description() string {
	return "Lista las ofertas adicionales activas del hotel (upgrades, desayuno " +
		"premium, late checkout, spa). Si pasas booking_id se excluyen las " +
		"ofertas que el huesped ya respondio."
}

func (t *GetUpsellOffersTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"booking_id": map[string]interface{}{
				"type":        "string",
				"description": "UUID de la reserva del huesped (opcional)",
			},
		},
	}
}

func (t *GetUpsellOffersTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var bookingID *uuid.UUID
	if s, ok := input["booking_id"].(string); ok && s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("booking_id is not a valid UUID: %w", err)
		}
		bookingID = &id
	}

	t.l.Infof(ctx, "tool get_upsell_offers")

	offers, err := t.pms.GetUpsellOffers(ctx, t.hotelID, bookingID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"offers": offers,
	}, nil
}

var _ agent.Tool = (*GetUpsellOffersTool)(nil)
