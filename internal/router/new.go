package router

import (
	"context"

	"hotel-concierge-agent/pkg/anthropic"
	"hotel-concierge-agent/pkg/log"
)

// Router is the interface for intent resolution.
type Router interface {
	// Resolve returns the intent of a guest message. It is total: every
	// failure of the model tier degrades to the keyword classifier.
	Resolve(ctx context.Context, message string) Resolution
}

// IntentResolver resolves intent with a model classification call backed by
// the keyword fallback classifier.
type IntentResolver struct {
	llm anthropic.IClient
	l   log.Logger
}

// Ensure IntentResolver implements Router.
var _ Router = (*IntentResolver)(nil)

// New creates a new IntentResolver.
func New(llm anthropic.IClient, l log.Logger) *IntentResolver {
	return &IntentResolver{
		llm: llm,
		l:   l,
	}
}
