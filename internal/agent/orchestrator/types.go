package orchestrator

import (
	"github.com/google/uuid"

	"hotel-concierge-agent/internal/model"
)

// ProcessInput is one guest turn to run through the dialogue graph.
type ProcessInput struct {
	ConversationID uuid.UUID
	GuestPhone     string
	Message        string
}

// ProcessOutput is the agent's answer for one turn.
type ProcessOutput struct {
	Response string
	Intent   string
	Metadata map[string]interface{}
}

// turnContext carries everything loaded for one turn through the handlers.
type turnContext struct {
	input   ProcessInput
	hotel   *model.Hotel
	history []model.Message
	booking *model.Booking // nil when the guest has no linked booking
}
