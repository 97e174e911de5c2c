package tools

import (
	"context"
	"errors"
	"fmt"

	"hotel-concierge-agent/internal/agent"
	"hotel-concierge-agent/internal/pms"
	pkgLog "hotel-concierge-agent/pkg/log"
)

// GetBookingByPhoneTool looks a booking up by guest phone number.
type GetBookingByPhoneTool struct {
	pms pms.Service
	l   pkgLog.Logger
}

// NewGetBookingByPhoneTool creates a new phone lookup tool.
func NewGetBookingByPhoneTool(svc pms.Service, l pkgLog.Logger) *GetBookingByPhoneTool {
	return &GetBookingByPhoneTool{pms: svc, l: l}
}

func (t *GetBookingByPhoneTool) Name() string {
	return "get_booking_by_phone"
}

func (t *GetBookingByPhoneTool) Description() string {
	return "Busca una reserva por numero de telefono del huesped. " +
		"Usalo como alternativa cuando no se tiene numero de confirmacion."
}

func (t *GetBookingByPhoneTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"phone": map[string]interface{}{
				"type":        "string",
				"description": "Numero de telefono del huesped",
			},
		},
		"required": []string{"phone"},
	}
}

func (t *GetBookingByPhoneTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	phone, ok := input["phone"].(string)
	if !ok || phone == "" {
		return nil, fmt.Errorf("phone parameter is required")
	}

	t.l.Infof(ctx, "tool get_booking_by_phone: %s", phone)

	booking, err := t.pms.GetBookingByPhone(ctx, phone)
	if errors.Is(err, pms.ErrNotFound) {
		return map[string]interface{}{
			"found":   false,
			"message": fmt.Sprintf("No se encontro reserva para el telefono %s", phone),
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

var _ agent.Tool = (*GetBookingByPhoneTool)(nil)
