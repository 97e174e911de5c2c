package orchestrator

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"hotel-concierge-agent/internal/agent"
	"hotel-concierge-agent/internal/conversation"
	"hotel-concierge-agent/internal/pms"
	"hotel-concierge-agent/internal/router"
	"hotel-concierge-agent/pkg/anthropic"
	pkgLog "hotel-concierge-agent/pkg/log"
)

type handlerFunc func(ctx context.Context, tc *turnContext) (string, map[string]interface{})

// Orchestrator runs one guest turn through the dialogue graph:
// loadContext, classify, intent handler, finalize.
type Orchestrator struct {
	llm      anthropic.IClient
	resolver router.Router
	registry *agent.ToolRegistry
	pms      pms.Service
	convs    conversation.Store
	l        pkgLog.Logger

	hotelID       uuid.UUID
	maxToolRounds int
	maxHistory    int
	maxTokens     int

	handlers map[router.Intent]handlerFunc
}

// Config carries the orchestrator's dependencies.
type Config struct {
	LLM           anthropic.IClient
	Resolver      router.Router
	Registry      *agent.ToolRegistry
	PMS           pms.Service
	Conversations conversation.Store
	Logger        pkgLog.Logger

	HotelID       uuid.UUID
	MaxToolRounds int
	MaxHistory    int
	MaxTokens     int
}

// New creates an Orchestrator. It fails when a declared intent has no
// handler, so an incomplete dispatch table is caught at startup rather than
// on the first guest message that hits the gap.
func New(cfg Config) (*Orchestrator, error) {
	if cfg.LLM == nil || cfg.Resolver == nil || cfg.Registry == nil || cfg.PMS == nil || cfg.Conversations == nil {
		return nil, fmt.Errorf("orchestrator: missing dependency")
	}
	if cfg.MaxToolRounds <= 0 {
		cfg.MaxToolRounds = DefaultMaxToolRounds
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = DefaultMaxHistory
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}

	o := &Orchestrator{
		llm:           cfg.LLM,
		resolver:      cfg.Resolver,
		registry:      cfg.Registry,
		pms:           cfg.PMS,
		convs:         cfg.Conversations,
		l:             cfg.Logger,
		hotelID:       cfg.HotelID,
		maxToolRounds: cfg.MaxToolRounds,
		maxHistory:    cfg.MaxHistory,
		maxTokens:     cfg.MaxTokens,
	}

	o.handlers = map[router.Intent]handlerFunc{
		router.IntentGreeting:       o.handleGreeting,
		router.IntentBookingInfo:    o.toolLoopHandler(router.IntentBookingInfo),
		router.IntentNewBooking:     o.toolLoopHandler(router.IntentNewBooking),
		router.IntentAmenitiesQuery: o.toolLoopHandler(router.IntentAmenitiesQuery),
		router.IntentServiceRequest: o.toolLoopHandler(router.IntentServiceRequest),
		router.IntentFAQGeneral:     o.toolLoopHandler(router.IntentFAQGeneral),
		router.IntentOutOfScope:     o.toolLoopHandler(router.IntentOutOfScope),
	}

	for _, intent := range router.Intents {
		if _, ok := o.handlers[intent]; !ok {
			return nil, fmt.Errorf("orchestrator: no handler for intent %q", intent)
		}
	}
	return o, nil
}
