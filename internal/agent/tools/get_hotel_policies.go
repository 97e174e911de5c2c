package tools

import (
	"context"

	"github.com/google/uuid"

	"hotel-concierge-agent/internal/agent"
	"hotel-concierge-agent/internal/pms"
	pkgLog "hotel-concierge-agent/pkg/log"
)

// GetHotelPoliciesTool returns the hotel policies block.
type GetHotelPoliciesTool struct {
	pms     pms.Service
	hotelID uuid.UUID
	l       pkgLog.Logger
}

// NewGetHotelPoliciesTool creates a new policies tool.
func NewGetHotelPoliciesTool(svc pms.Service, hotelID uuid.UUID, l pkgLog.Logger) *GetHotelPoliciesTool {
	return &GetHotelPoliciesTool{pms: svc, hotelID: hotelID, l: l}
}

func (t *GetHotelPoliciesTool) Name() string {
	return "get_hotel_policies"
}

func (t *GetHotelPoliciesTool) Description() string {
	return "Obtiene las politicas del hotel (horarios de check-in/out, " +
		"cancelacion, late checkout, etc)."
}

func (t *GetHotelPoliciesTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (t *GetHotelPoliciesTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	t.l.Infof(ctx, "tool get_hotel_policies")

	policies, err := t.pms.GetPolicies(ctx, t.hotelID)
	if err != nil {
		return nil, err
	}
	return policies, nil
}

var _ agent.Tool = (*GetHotelPoliciesTool)(nil)
