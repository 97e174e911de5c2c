package tools

import (
	"context"

	"github.com/google/uuid"

	"hotel-concierge-agent/internal/agent"
	"hotel-concierge-agent/internal/pms"
	pkgLog "hotel-concierge-agent/pkg/log"
)

// GetRoomTypesTool lists the hotel's room categories with prices.
type GetRoomTypesTool struct {
	pms     pms.Service
	hotelID uuid.UUID
	l       pkgLog.Logger
}

// NewGetRoomTypesTool creates a new room types tool.
func NewGetRoomTypesTool(svc pms.Service, hotelID uuid.UUID, l pkgLog.Logger) *GetRoomTypesTool {
	return &GetRoomTypesTool{pms: svc, hotelID: hotelID, l: l}
}

func (t *GetRoomTypesTool) Name() string {
	return "get_room_types"
}

func (t *GetRoomTypesTool) Description() string {
	return "Obtiene los tipos de habitacion del hotel con precios por noche y " +
		"capacidad. Usalo cuando pregunten por habitaciones o tarifas."
}

func (t *GetRoomTypesTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (t *GetRoomTypesTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	t.l.Infof(ctx, "tool get_room_types")

	roomTypes, err := t.pms.GetRoomTypes(ctx, t.hotelID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"room_types": roomTypes,
	}, nil
}

var _ agent.Tool = (*GetRoomTypesTool)(nil)
