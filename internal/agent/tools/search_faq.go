package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"hotel-concierge-agent/internal/agent"
	"hotel-concierge-agent/internal/model"
	"hotel-concierge-agent/internal/pms"
	pkgLog "hotel-concierge-agent/pkg/log"
)

// SearchFAQTool searches the hotel FAQ by keyword.
type SearchFAQTool struct {
	pms     pms.Service
	hotelID uuid.UUID
	l       pkgLog.Logger
}

// NewSearchFAQTool creates a new FAQ search tool.
func NewSearchFAQTool(svc pms.Service, hotelID uuid.UUID, l pkgLog.Logger) *SearchFAQTool {
	return &SearchFAQTool{pms: svc, hotelID: hotelID, l: l}
}

func (t *SearchFAQTool) Name() string {
	return "search_faq"
}

func (t *SearchFAQTool) Description() string {
	return "Busca en las preguntas frecuentes del hotel. " +
		"Usalo para preguntas generales como transporte, mascotas, etc."
}

func (t *SearchFAQTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Pregunta o terminos de busqueda",
			},
		},
		"required": []string{"query"},
	}
}

func (t *SearchFAQTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	query, ok := input["query"].(string)
	if !ok || query == "" {
		return nil, fmt.Errorf("query parameter is required")
	}

	t.l.Infof(ctx, "tool search_faq: %q", query)

	faqs, err := t.pms.GetFAQ(ctx, t.hotelID)
	if err != nil {
		return nil, err
	}

	// Keyword matching over question and answer; one- and two-letter tokens
	// carry no signal in Spanish (de, la, el) and are skipped.
	var matches []model.FAQEntry
	words := strings.Fields(strings.ToLower(query))
	for _, faq := range faqs {
		question := strings.ToLower(faq.Question)
		answer := strings.ToLower(faq.Answer)
		for _, w := range words {
			if len(w) <= 2 {
				continue
			}
			if strings.Contains(question, w) || strings.Contains(answer, w) {
				matches = append(matches, faq)
				break
			}
		}
	}

	t.l.Debugf(ctx, "tool search_faq: %q returned %d matches", query, len(matches))
	return map[string]interface{}{
		"count":   len(matches),
		"results": matches,
	}, nil
}

var _ agent.Tool = (*SearchFAQTool)(nil)
