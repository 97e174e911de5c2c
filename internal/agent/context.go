package agent

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

const conversationIDKey ctxKey = iota

// WithConversationID stamps the current conversation on the context so tools
// that act on "the current conversation" can find it without it appearing in
// their input schema.
func WithConversationID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, conversationIDKey, id)
}

// ConversationIDFromContext returns the conversation id set by
// WithConversationID, if any.
func ConversationIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(conversationIDKey).(uuid.UUID)
	return id, ok
}
