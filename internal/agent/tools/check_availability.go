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

// CheckAvailabilityTool reports which room types can host a requested stay.
type CheckAvailabilityTool struct {
	pms     pms.Service
	hotelID uuid.UUID
	l       pkgLog.Logger
}

// NewCheckAvailabilityTool creates a new availability tool.
func NewCheckAvailabilityTool(svc pms.Service, hotelID uuid.UUID, l pkgLog.Logger) *CheckAvailabilityTool {
	return &CheckAvailabilityTool{pms: svc, hotelID: hotelID, l: l}
}

func (t *CheckAvailabilityTool) Name() string {
	return "check_availability"
}

func (t *CheckAvailabilityTool) Description() string {
	return "Consulta disponibilidad de habitaciones para fechas concretas. " +
		"Usalo cuando el huesped quiera reservar o pregunte si hay lugar."
}

func (t *CheckAvailabilityTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"checkin": map[string]interface{}{
				"type":        "string",
				"description": "Fecha de entrada en formato YYYY-MM-DD",
			},
			"checkout": map[string]interface{}{
				"type":        "string",
				"description": "Fecha de salida en formato YYYY-MM-DD",
			},
			"num_guests": map[string]interface{}{
				"type":        "integer",
				"description": "Cantidad de huespedes",
			},
		},
		"required": []string{"checkin", "checkout", "num_guests"},
	}
}

func (t *CheckAvailabilityTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	checkin, _ := input["checkin"].(string)
	checkout, _ := input["checkout"].(string)
	if checkin == "" || checkout == "" {
		return nil, fmt.Errorf("checkin and checkout parameters are required")
	}
	numGuests := 1
	if n, ok := input["num_guests"].(float64); ok {
		numGuests = int(n)
	}

	t.l.Infof(ctx, "tool check_availability: %s -> %s, %d guests", checkin, checkout, numGuests)

	result, err := t.pms.CheckAvailability(ctx, t.hotelID, checkin, checkout, numGuests)
	if errors.Is(err, pms.ErrInvalidDates) {
		return map[string]interface{}{
			"available": false,
			"message":   "Las fechas no son validas. Usa formato YYYY-MM-DD con checkout posterior al checkin.",
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

var _ agent.Tool = (*CheckAvailabilityTool)(nil)
