package tools

import (
	"context"
	"errors"
	"fmt"

	"hotel-concierge-agent/internal/agent"
	"hotel-concierge-agent/internal/pms"
	pkgLog "hotel-concierge-agent/pkg/log"
)

// GetBookingDetailsTool looks a booking up by confirmation number.
type GetBookingDetailsTool struct {
	pms pms.Service
	l   pkgLog.Logger
}

// NewGetBookingDetailsTool creates a new booking lookup tool.
func NewGetBookingDetailsTool(svc pms.Service, l pkgLog.Logger) *GetBookingDetailsTool {
	return &GetBookingDetailsTool{pms: svc, l: l}
}

func (t *GetBookingDetailsTool) Name() string {
	return "get_booking_details"
}

func (t *GetBookingDetailsTool) Description() string {
	return "Busca una reserva por numero de confirmacion. " +
		"Usalo cuando el huesped pregunte por su reserva, check-in/out, " +
		"habitacion, o cualquier detalle de la reserva."
}

func (t *GetBookingDetailsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"confirmation_number": map[string]interface{}{
				"type":        "string",
				"description": "Numero de confirmacion de la reserva (ej: PLR-2024-001)",
			},
		},
		"required": []string{"confirmation_number"},
	}
}

func (t *GetBookingDetailsTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	code, ok := input["confirmation_number"].(string)
	if !ok || code == "" {
		return nil, fmt.Errorf("confirmation_number parameter is required")
	}

	t.l.Infof(ctx, "tool get_booking_details: %s", code)

	booking, err := t.pms.GetBookingByConfirmation(ctx, code)
	if errors.Is(err, pms.ErrNotFound) {
		return map[string]interface{}{
			"found":   false,
			"message": fmt.Sprintf("No se encontro reserva con confirmacion %s", code),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"found":   true,
		"booking": booking,
	}, nil
}

var _ agent.Tool = (*GetBookingDetailsTool)(nil)
