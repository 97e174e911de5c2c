package tools

import (
	"context"

	"github.com/google/uuid"

	"hotel-concierge-agent/internal/agent"
	"hotel-concierge-agent/internal/pms"
	pkgLog "hotel-concierge-agent/pkg/log"
)

// GetHotelAmenitiesTool returns the hotel amenities block.
type GetHotelAmenitiesTool struct {
	pms     pms.Service
	hotelID uuid.UUID
	l       pkgLog.Logger
}

// NewGetHotelAmenitiesTool creates a new amenities tool.
func NewGetHotelAmenitiesTool(svc pms.Service, hotelID uuid.UUID, l pkgLog.Logger) *GetHotelAmenitiesTool {
	return &GetHotelAmenitiesTool{pms: svc, hotelID: hotelID, l: l}
}

func (t *GetHotelAmenitiesTool) Name() string {
	return "get_hotel_amenities"
}

func (t *GetHotelAmenitiesTool) Description() string {
	return "Obtiene informacion de todos los amenities del hotel " +
		"(WiFi, desayuno, piscina, gym, parking, spa). " +
		"Usalo cuando pregunten por servicios o instalaciones."
}

func (t *GetHotelAmenitiesTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (t *GetHotelAmenitiesTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	t.l.Infof(ctx, "tool get_hotel_amenities")

	amenities, err := t.pms.GetAmenities(ctx, t.hotelID)
	if err != nil {
		return nil, err
	}
	return amenities, nil
}

var _ agent.Tool = (*GetHotelAmenitiesTool)(nil)
