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

// CreateServiceRequestTool registers a guest service ticket.
type CreateServiceRequestTool struct {
	pms pms.Service
	l   pkgLog.Logger
}

// NewCreateServiceRequestTool creates a new service request tool.
func NewCreateServiceRequestTool(svc pms.Service, l pkgLog.Logger) *CreateServiceRequestTool {
	return &CreateServiceRequestTool{pms: svc, l: l}
}

func (t *CreateServiceRequestTool) Name() string {
	return "create_service_request"
}

func (t *CreateServiceRequestTool) Description() string {
	return "Registra un pedido de servicio del huesped " +
		"(toallas extra, late checkout, wake-up call, etc). " +
		"Requiere booking_id del huesped."
}

func (t *CreateServiceRequestTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"booking_id": map[string]interface{}{
				"type":        "string",
				"description": "UUID de la reserva del huesped",
			},
			"request_type": map[string]interface{}{
				"type":        "string",
				"description": "Tipo de pedido (towels, late_checkout, wake_up_call, room_service, cleaning, pillow, other)",
			},
			"details": map[string]interface{}{
				"type":        "string",
				"description": "Detalles del pedido en texto libre",
			},
		},
		"required": []string{"booking_id", "request_type", "details"},
	}
}

func (t *CreateServiceRequestTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	bookingIDStr, _ := input["booking_id"].(string)
	requestType, _ := input["request_type"].(string)
	details, _ := input["details"].(string)
	if bookingIDStr == "" || requestType == "" {
		return nil, fmt.Errorf("booking_id and request_type parameters are required")
	}

	bookingID, err := uuid.Parse(bookingIDStr)
	if err != nil {
		return nil, fmt.Errorf("booking_id is not a valid UUID: %w", err)
	}

	t.l.Infof(ctx, "tool create_service_request: booking %s type %s", bookingID, requestType)

	req, err := t.pms.CreateServiceRequest(ctx, bookingID, requestType, details)
	if errors.Is(err, pms.ErrNotFound) {
		return map[string]interface{}{
			"success": false,
			"message": fmt.Sprintf("No existe una reserva con id %s", bookingID),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"success": true,
		"request": req,
	}, nil
}

var _ agent.Tool = (*CreateServiceRequestTool)(nil)
