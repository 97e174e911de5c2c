package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"hotel-concierge-agent/internal/agent"
	"hotel-concierge-agent/internal/conversation"
	pkgLog "hotel-concierge-agent/pkg/log"
)

// EscalateToHumanTool hands the conversation off to reception staff.
type EscalateToHumanTool struct {
	store conversation.Store
	l     pkgLog.Logger
}

// NewEscalateToHumanTool creates a new escalation tool.
func NewEscalateToHumanTool(store conversation.Store, l pkgLog.Logger) *EscalateToHumanTool {
	return &EscalateToHumanTool{store: store, l: l}
}

func (t *EscalateToHumanTool) Name() string {
	return "escalate_to_human"
}

func (t *EscalateToHumanTool) Description() string {
	return "Escala la conversacion a un agente humano (recepcion). " +
		"Usalo cuando no puedas resolver la consulta del huesped."
}

func (t *EscalateToHumanTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"reason": map[string]interface{}{
				"type":        "string",
				"description": "Razon de la escalacion",
			},
			"conversation_id": map[string]interface{}{
				"type":        "string",
				"description": "UUID de la conversacion (opcional, por defecto la actual)",
			},
		},
		"required": []string{"reason"},
	}
}

func (t *EscalateToHumanTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	reason, ok := input["reason"].(string)
	if !ok || reason == "" {
		return nil, fmt.Errorf("reason parameter is required")
	}

	var conversationID uuid.UUID
	if s, ok := input["conversation_id"].(string); ok && s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("conversation_id is not a valid UUID: %w", err)
		}
		conversationID = id
	} else if id, ok := agent.ConversationIDFromContext(ctx); ok {
		conversationID = id
	} else {
		return nil, fmt.Errorf("no conversation to escalate")
	}

	t.l.Infof(ctx, "tool escalate_to_human: conversation %s reason %q", conversationID, reason)

	err := t.store.Escalate(ctx, conversationID)
	if errors.Is(err, conversation.ErrNotFound) {
		return map[string]interface{}{
			"success": false,
			"message": "No se encontro la conversacion indicada",
		}, nil
	}
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"success": true,
		"message": "Conversacion escalada a recepcion",
	}, nil
}

var _ agent.Tool = (*EscalateToHumanTool)(nil)
