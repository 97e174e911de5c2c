package anthropic

import "context"

// IClient defines the interface for the Anthropic Messages API client.
// Implementations are safe for concurrent use.
type IClient interface {
	// CreateMessage sends one Messages API request and returns the reply.
	CreateMessage(ctx context.Context, req MessagesRequest) (*MessagesResponse, error)

	// Model returns the model being used.
	Model() string
}
