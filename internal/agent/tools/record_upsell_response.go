package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"hotel-concierge-agent/internal/agent"
	"hotel-concierge-agent/internal/pms"
	pkgLog "hotel-concierge-agent/pkg/log"
)

// RecordUpsellResponseTool stores a guest's accept/decline of an offer.
type RecordUpsellResponseTool struct {
	pms pms.Service
	l   pkgLog.Logger
}

// NewRecordUpsellResponseTool creates a new upsell response tool.
func NewRecordUpsellResponseTool(svc pms.Service, l pkgLog.Logger) *RecordUpsellResponseTool {
	return &RecordUpsellResponseTool{pms: svc, l: l}
}

func (t *RecordUpsellResponseTool) Name() string {
	return "record_upsell_response"
}

func (t *RecordUpsellResponseTool) Description() string {
	return "Registra si el huesped acepto o rechazo una oferta adicional. " +
		"Usalo inmediatamente despues de que el huesped responda a una oferta."
}

func (t *RecordUpsellResponseTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"booking_id": map[string]interface{}{
				"type":        "string",
				"description": "UUID de la reserva del huesped",
			},
			"offer_id": map[string]interface{}{
				"type":        "string",
				"description": "UUID de la oferta",
			},
			"accepted": map[string]interface{}{
				"type":        "boolean",
				"description": "true si el huesped acepto la oferta",
			},
		},
		"required": []string{"booking_id", "offer_id", "accepted"},
	}
}

func (t *RecordUpsellResponseTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	bookingIDStr, _ := input["booking_id"].(string)
	offerIDStr, _ := input["offer_id"].(string)
	accepted, _ := input["accepted"].(bool)
	if bookingIDStr == "" || offerIDStr == "" {
		return nil, fmt.Errorf("booking_id and offer_id parameters are required")
	}

	bookingID, err := uuid.Parse(bookingIDStr)
	if err != nil {
		return nil, fmt.Errorf("booking_id is not a valid UUID: %w", err)
	}
	offerID, err := uuid.Parse(offerIDStr)
	if err != nil {
		return nil, fmt.Errorf("offer_id is not a valid UUID: %w", err)
	}

	t.l.Infof(ctx, "tool record_upsell_response: booking %s offer %s accepted=%v", bookingID, offerID, accepted)

	conv, err := t.pms.RecordUpsellResponse(ctx, bookingID, offerID, accepted)
	if errors.Is(err, pms.ErrNotFound) {
		return map[string]interface{}{
			"success": false,
			"message": "No se encontro la reserva o la oferta indicada",
		}, nil
	}
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"success":    true,
		"conversion": conv,
	}, nil
}

var _ agent.Tool = (*RecordUpsellResponseTool)(nil)
