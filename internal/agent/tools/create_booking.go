package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"hotel-concierge-agent/internal/agent"
	"hotel-concierge-agent/internal/pms"
	pkgLog "hotel-concierge-agent/pkg/log"
)

// CreateBookingTool creates a new confirmed booking.
type CreateBookingTool struct {
	pms     pms.Service
	hotelID uuid.UUID
	l       pkgLog.Logger
}

// NewCreateBookingTool creates a new booking creation tool.
func NewCreateBookingTool(svc pms.Service, hotelID uuid.UUID, l pkgLog.Logger) *CreateBookingTool {
	return &CreateBookingTool{pms: svc, hotelID: hotelID, l: l}
}

func (t *CreateBookingTool) Name() string {
	return "create_booking"
}

func (t *CreateBookingTool) Description() string {
	return "Crea una nueva reserva confirmada. Usalo SOLO cuando ya tengas " +
		"nombre, telefono, fechas, tipo de habitacion y cantidad de huespedes, " +
		"y el huesped haya confirmado que quiere reservar."
}

func (t *CreateBookingTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"guest_name": map[string]interface{}{
				"type":        "string",
				"description": "Nombre completo del huesped",
			},
			"guest_phone": map[string]interface{}{
				"type":        "string",
				"description": "Telefono del huesped",
			},
			"checkin": map[string]interface{}{
				"type":        "string",
				"description": "Fecha de entrada en formato YYYY-MM-DD",
			},
			"checkout": map[string]interface{}{
				"type":        "string",
				"description": "Fecha de salida en formato YYYY-MM-DD",
			},
			"room_type": map[string]interface{}{
				"type":        "string",
				"description": "Tipo de habitacion (Standard, Deluxe, Suite)",
			},
			"num_guests": map[string]interface{}{
				"type":        "integer",
				"description": "Cantidad de huespedes",
			},
			"guest_email": map[string]interface{}{
				"type":        "string",
				"description": "Email del huesped (opcional)",
			},
			"special_requests": map[string]interface{}{
				"type":        "string",
				"description": "Pedidos especiales (opcional)",
			},
		},
		"required": []string{"guest_name", "guest_phone", "checkin", "checkout", "room_type", "num_guests"},
	}
}

type createBookingInput struct {
	GuestName       string  `json:"guest_name"`
	GuestPhone      string  `json:"guest_phone"`
	Checkin         string  `json:"checkin"`
	Checkout        string  `json:"checkout"`
	RoomType        string  `json:"room_type"`
	NumGuests       float64 `json:"num_guests"`
	GuestEmail      string  `json:"guest_email"`
	SpecialRequests string  `json:"special_requests"`
}

func (t *CreateBookingTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}
	var params createBookingInput
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}
	if params.GuestName == "" || params.GuestPhone == "" {
		return nil, fmt.Errorf("guest_name and guest_phone parameters are required")
	}

	t.l.Infof(ctx, "tool create_booking: %s %s %s -> %s", params.GuestName, params.RoomType, params.Checkin, params.Checkout)

	booking, err := t.pms.CreateBooking(ctx, pms.CreateBookingInput{
		HotelID:         t.hotelID,
		GuestName:       params.GuestName,
		GuestPhone:      params.GuestPhone,
		GuestEmail:      params.GuestEmail,
		CheckinDate:     params.Checkin,
		CheckoutDate:    params.Checkout,
		RoomType:        params.RoomType,
		NumGuests:       int(params.NumGuests),
		SpecialRequests: params.SpecialRequests,
	})
	switch {
	case errors.Is(err, pms.ErrInvalidDates):
		return map[string]interface{}{
			"success": false,
			"message": "Las fechas no son validas. Usa formato YYYY-MM-DD con checkout posterior al checkin.",
		}, nil
	case errors.Is(err, pms.ErrUnknownRoomType):
		return map[string]interface{}{
			"success": false,
			"message": fmt.Sprintf("No existe el tipo de habitacion %q.", params.RoomType),
		}, nil
	case errors.Is(err, pms.ErrCapacityExceeded):
		return map[string]interface{}{
			"success": false,
			"message": "La cantidad de huespedes supera la capacidad de ese tipo de habitacion.",
		}, nil
	case errors.Is(err, pms.ErrNoAvailability):
		return map[string]interface{}{
			"success": false,
			"message": "No hay disponibilidad para esas fechas en ese tipo de habitacion.",
		}, nil
	case err != nil:
		return nil, err
	}

	return map[string]interface{}{
		"success": true,
		"booking": booking,
	}, nil
}

var _ agent.Tool = (*CreateBookingTool)(nil)
