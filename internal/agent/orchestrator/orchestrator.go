package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-concierge-agent/internal/agent"
	"hotel-concierge-agent/internal/pms"
	"hotel-concierge-agent/internal/router"
)

// ProcessMessage runs one guest turn and always returns a usable answer:
// every failure path inside the graph degrades to a canned reply instead of
// surfacing an error to the delivery layer.
func (o *Orchestrator) ProcessMessage(ctx context.Context, input ProcessInput) (*ProcessOutput, error) {
	start := time.Now()
	ctx = agent.WithConversationID(ctx, input.ConversationID)

	o.l.Infof(ctx, "%s: conversation %s message %q", LogPrefixProcessMessage, input.ConversationID, truncate(input.Message, 80))

	tc, err := o.loadContext(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("load context: %w", err)
	}

	res := o.resolver.Resolve(ctx, input.Message)

	handler, ok := o.handlers[res.Intent]
	if !ok {
		// New() guarantees the table is exhaustive over declared intents, so
		// this only trips on an invalid Intent value.
		return nil, fmt.Errorf("no handler for intent %q", res.Intent)
	}

	response, metadata := handler(ctx, tc)

	return o.finalize(string(res.Intent), response, metadata, start), nil
}

// loadContext pulls hotel facts, bounded history, and the guest's booking.
// A guest without a booking is a normal case, not an error.
func (o *Orchestrator) loadContext(ctx context.Context, input ProcessInput) (*turnContext, error) {
	hotel, err := o.pms.GetHotel(ctx, o.hotelID)
	if err != nil {
		return nil, fmt.Errorf("get hotel: %w", err)
	}

	history, err := o.convs.GetHistory(ctx, input.ConversationID, o.maxHistory)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}

	tc := &turnContext{input: input, hotel: hotel, history: history}

	booking, err := o.pms.GetBookingByPhone(ctx, input.GuestPhone)
	switch {
	case errors.Is(err, pms.ErrNotFound):
		// no linked booking
	case err != nil:
		o.l.Warnf(ctx, "%s: booking lookup failed: %v", LogPrefixLoadContext, err)
	default:
		tc.booking = booking
	}
	return tc, nil
}

// handleGreeting answers directly without the model, personalized when a
// booking is linked.
func (o *Orchestrator) handleGreeting(ctx context.Context, tc *turnContext) (string, map[string]interface{}) {
	metadata := map[string]interface{}{"handler": "greeting"}
	if tc.booking != nil && tc.booking.GuestName != "" {
		return fmt.Sprintf(greetingKnownGuest, tc.booking.GuestName, tc.hotel.Name), metadata
	}
	return fmt.Sprintf(greetingAnonymous, tc.hotel.Name), metadata
}

// toolLoopHandler builds the handler for intents answered through the
// model with tools.
func (o *Orchestrator) toolLoopHandler(intent router.Intent) handlerFunc {
	return func(ctx context.Context, tc *turnContext) (string, map[string]interface{}) {
		return o.runToolLoop(ctx, tc, string(intent))
	}
}

// finalize stamps intent and latency metadata and substitutes a default
// apology when the handler produced nothing.
func (o *Orchestrator) finalize(intent, response string, metadata map[string]interface{}, start time.Time) *ProcessOutput {
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	metadata["intent"] = intent
	metadata["latency_ms"] = time.Since(start).Milliseconds()

	if response == "" {
		response = defaultFallbackResponse
	}
	return &ProcessOutput{
		Response: response,
		Intent:   intent,
		Metadata: metadata,
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
