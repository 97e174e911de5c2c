package analytics

import (
	"context"

	"github.com/google/uuid"

	"hotel-concierge-agent/internal/conversation"
	"hotel-concierge-agent/internal/pms"
	pkgLog "hotel-concierge-agent/pkg/log"
)

// Service computes dashboard metrics from the conversation store and the PMS.
type Service interface {
	// GetDashboardMetrics computes all dashboard metrics in one call.
	GetDashboardMetrics(ctx context.Context) (*DashboardMetrics, error)

	// ListConversations returns conversation summaries, most recent first.
	ListConversations(ctx context.Context, limit, offset int) ([]ConversationSummary, error)

	// GetConversationDetail returns a conversation with its transcript.
	GetConversationDetail(ctx context.Context, id uuid.UUID) (*ConversationDetail, error)
}

type service struct {
	convs   conversation.Store
	pms     pms.Service
	hotelID uuid.UUID
	l       pkgLog.Logger
}

// Ensure service implements Service.
var _ Service = (*service)(nil)

// New creates an analytics service.
func New(convs conversation.Store, pmsSvc pms.Service, hotelID uuid.UUID, l pkgLog.Logger) Service {
	return &service{
		convs:   convs,
		pms:     pmsSvc,
		hotelID: hotelID,
		l:       l,
	}
}
