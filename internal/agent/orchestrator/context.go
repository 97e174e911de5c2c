package orchestrator

import (
	"encoding/json"
	"fmt"

	"hotel-concierge-agent/internal/model"
	"hotel-concierge-agent/pkg/anthropic"
)

// assembleContext builds the system prompt and message transcript for the
// model. Order: filtered bounded history, then the synthetic booking-context
// pair when a booking is linked, then the live user message last.
func (o *Orchestrator) assembleContext(tc *turnContext) (string, []anthropic.Message) {
	hotelInfo, err := json.MarshalIndent(tc.hotel, "", "  ")
	if err != nil {
		hotelInfo = []byte("{}")
	}
	system := fmt.Sprintf(systemPromptTemplate, tc.hotel.Name, hotelInfo)

	messages := make([]anthropic.Message, 0, len(tc.history)+3)
	for _, msg := range tc.history {
		if msg.Role != model.RoleUser && msg.Role != model.RoleAssistant {
			continue
		}
		messages = append(messages, anthropic.NewTextMessage(string(msg.Role), msg.Content))
	}

	if tc.booking != nil {
		raw, err := json.Marshal(tc.booking)
		if err == nil {
			messages = append(messages,
				anthropic.NewTextMessage("user", fmt.Sprintf(
					"[Contexto interno - reserva encontrada para este huesped: %s]", raw)),
				anthropic.NewTextMessage("assistant", bookingContextAck),
			)
		}
	}

	messages = append(messages, anthropic.NewTextMessage("user", tc.input.Message))
	return system, messages
}
