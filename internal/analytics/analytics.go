package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"hotel-concierge-agent/internal/model"
)

func (s *service) GetDashboardMetrics(ctx context.Context) (*DashboardMetrics, error) {
	convs, err := s.convs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	m := &DashboardMetrics{
		TotalConversationsAllTime: len(convs),
	}

	autoAllTime := 0
	hours := make([]int, 24)
	for _, c := range convs {
		if !c.StartedAt.Before(todayStart) {
			m.TotalConversationsToday++
			if c.ResolutionType == model.ResolutionAutomated {
				m.AutoResolvedToday++
			}
		}
		if c.ResolutionType == model.ResolutionAutomated {
			autoAllTime++
		}
		hours[c.StartedAt.Hour()]++

		switch c.Status {
		case model.ConversationEscalated:
			m.Outcomes.Escalated++
		case model.ConversationResolved:
			m.Outcomes.Resolved++
		case model.ConversationActive:
			m.Outcomes.Active++
		}
	}

	if m.TotalConversationsToday > 0 {
		m.AutoResolvedPct = round1(float64(m.AutoResolvedToday) / float64(m.TotalConversationsToday) * 100)
	}
	if len(convs) > 0 {
		m.AutoResolvedAllTimePct = round1(float64(autoAllTime) / float64(len(convs)) * 100)
	}
	for h, count := range hours {
		m.HourlyDistribution = append(m.HourlyDistribution, HourBucket{Hour: h, Count: count})
	}

	intentCounts := map[string]int{}
	var latencies []int64
	for _, c := range convs {
		history, err := s.convs.GetHistory(ctx, c.ID, 0)
		if err != nil {
			continue
		}
		for _, msg := range history {
			if msg.Intent != "" {
				intentCounts[msg.Intent]++
			}
			if msg.Role == model.RoleAssistant {
				if ms, ok := latencyOf(msg.Metadata); ok {
					latencies = append(latencies, ms)
				}
			}
		}
	}
	m.TopIntents = topIntents(intentCounts, 8)
	if len(latencies) > 0 {
		var sum int64
		for _, ms := range latencies {
			sum += ms
		}
		m.AvgResponseTimeMs = sum / int64(len(latencies))
	}

	if err := s.fillUpsellMetrics(ctx, m); err != nil {
		s.l.Warnf(ctx, "internal.analytics.GetDashboardMetrics: upsell metrics failed: %v", err)
	}
	return m, nil
}

func (s *service) ListConversations(ctx context.Context, limit, offset int) ([]ConversationSummary, error) {
	convs, err := s.convs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}

	if offset > len(convs) {
		offset = len(convs)
	}
	convs = convs[offset:]
	if limit > 0 && len(convs) > limit {
		convs = convs[:limit]
	}

	out := make([]ConversationSummary, 0, len(convs))
	for _, c := range convs {
		history, err := s.convs.GetHistory(ctx, c.ID, 0)
		if err != nil {
			continue
		}
		out = append(out, ConversationSummary{
			ID:             c.ID,
			GuestPhone:     c.GuestPhone,
			Platform:       c.Platform,
			Status:         c.Status,
			ResolutionType: c.ResolutionType,
			StartedAt:      c.StartedAt,
			LastMessageAt:  c.LastMessageAt,
			MessageCount:   len(history),
		})
	}
	return out, nil
}

func (s *service) GetConversationDetail(ctx context.Context, id uuid.UUID) (*ConversationDetail, error) {
	conv, err := s.convs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	messages, err := s.convs.GetHistory(ctx, id, 0)
	if err != nil {
		return nil, err
	}
	return &ConversationDetail{Conversation: *conv, Messages: messages}, nil
}

func (s *service) fillUpsellMetrics(ctx context.Context, m *DashboardMetrics) error {
	conversions, err := s.pms.ListUpsellConversions(ctx, s.hotelID)
	if err != nil {
		return err
	}
	offers, err := s.pms.GetUpsellOffers(ctx, s.hotelID, nil)
	if err != nil {
		return err
	}

	offerByID := map[uuid.UUID]model.UpsellOffer{}
	for _, o := range offers {
		offerByID[o.ID] = o
	}

	perOffer := map[uuid.UUID]*OfferPerformance{}
	accepted := 0
	for _, c := range conversions {
		offer, ok := offerByID[c.OfferID]
		if !ok {
			continue
		}
		p, ok := perOffer[c.OfferID]
		if !ok {
			p = &OfferPerformance{OfferName: offer.Name, OfferType: offer.OfferType}
			perOffer[c.OfferID] = p
		}
		p.OfferedCount++
		if c.Status == "accepted" {
			p.AcceptedCount++
			p.Revenue = round2(p.Revenue + offer.Price)
			m.UpsellRevenue = round2(m.UpsellRevenue + offer.Price)
			accepted++
		}
	}
	if len(conversions) > 0 {
		m.UpsellConversionRate = round1(float64(accepted) / float64(len(conversions)) * 100)
	}

	for _, p := range perOffer {
		m.UpsellByOffer = append(m.UpsellByOffer, *p)
	}
	sort.Slice(m.UpsellByOffer, func(i, j int) bool {
		if m.UpsellByOffer[i].OfferedCount != m.UpsellByOffer[j].OfferedCount {
			return m.UpsellByOffer[i].OfferedCount > m.UpsellByOffer[j].OfferedCount
		}
		return m.UpsellByOffer[i].OfferName < m.UpsellByOffer[j].OfferName
	})
	return nil
}

// latencyOf extracts latency_ms from message metadata. The value is an int64
// in-process but arrives as float64 after a JSON round trip.
func latencyOf(metadata map[string]interface{}) (int64, bool) {
	v, ok := metadata["latency_ms"]
	if !ok {
		return 0, false
	}
	switch ms := v.(type) {
	case int64:
		return ms, true
	case int:
		return int64(ms), true
	case float64:
		return int64(ms), true
	}
	return 0, false
}

func topIntents(counts map[string]int, limit int) []IntentCount {
	out := make([]IntentCount, 0, len(counts))
	for intent, count := range counts {
		out = append(out, IntentCount{Intent: intent, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Intent < out[j].Intent
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
