package conversation

import "hotel-concierge-agent/internal/model"

// AddMessageInput carries one message to append to a conversation.
type AddMessageInput struct {
	Role     model.MessageRole
	Content  string
	Intent   string
	Metadata map[string]interface{}
}
