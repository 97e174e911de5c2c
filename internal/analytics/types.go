package analytics

import (
	"time"

	"github.com/google/uuid"

	"hotel-concierge-agent/internal/model"
)

// DashboardMetrics is the aggregate view served to the dashboard.
type DashboardMetrics struct {
	TotalConversationsToday   int                `json:"total_conversations_today"`
	AutoResolvedToday         int                `json:"auto_resolved_today"`
	AutoResolvedPct           float64            `json:"auto_resolved_pct"`
	AvgResponseTimeMs         int64              `json:"avg_response_time_ms"`
	TopIntents                []IntentCount      `json:"top_intents"`
	HourlyDistribution        []HourBucket       `json:"hourly_distribution"`
	Outcomes                  Outcomes           `json:"outcomes"`
	UpsellRevenue             float64            `json:"upsell_revenue"`
	UpsellConversionRate      float64            `json:"upsell_conversion_rate"`
	UpsellByOffer             []OfferPerformance `json:"upsell_by_offer"`
	TotalConversationsAllTime int                `json:"total_conversations_all_time"`
	AutoResolvedAllTimePct    float64            `json:"auto_resolved_all_time_pct"`
}

// IntentCount is one row of the top-intents ranking.
type IntentCount struct {
	Intent string `json:"intent"`
	Count  int    `json:"count"`
}

// HourBucket counts conversations started in one hour of the day.
type HourBucket struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// Outcomes buckets conversations by how they stand.
type Outcomes struct {
	Escalated int `json:"escalated"`
	Resolved  int `json:"resolved"`
	Active    int `json:"active"`
}

// OfferPerformance breaks upsell results down per offer.
type OfferPerformance struct {
	OfferName     string  `json:"offer_name"`
	OfferType     string  `json:"offer_type"`
	OfferedCount  int     `json:"offered_count"`
	AcceptedCount int     `json:"accepted_count"`
	Revenue       float64 `json:"revenue"`
}

// ConversationSummary is one row of the dashboard conversation list.
type ConversationSummary struct {
	ID             uuid.UUID                `json:"id"`
	GuestPhone     string                   `json:"guest_phone"`
	Platform       model.Platform           `json:"platform"`
	Status         model.ConversationStatus `json:"status"`
	ResolutionType model.ResolutionType     `json:"resolution_type,omitempty"`
	StartedAt      time.Time                `json:"started_at"`
	LastMessageAt  time.Time                `json:"last_message_at"`
	MessageCount   int                      `json:"message_count"`
}

// ConversationDetail is a conversation with its full transcript.
type ConversationDetail struct {
	Conversation model.Conversation `json:"conversation"`
	Messages     []model.Message    `json:"messages"`
}
