package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hotel-concierge-agent/internal/conversation"
	pkgResponse "hotel-concierge-agent/pkg/response"
)

// GetMetrics serves the aggregated dashboard metrics.
func (h *handler) GetMetrics(c *gin.Context) {
	ctx := c.Request.Context()

	metrics, err := h.uc.GetDashboardMetrics(ctx)
	if err != nil {
		h.l.Errorf(ctx, "analytics handler: GetDashboardMetrics failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}
	pkgResponse.OK(c, metrics)
}

// ListConversations serves the dashboard conversation list. Supports limit
// and offset query parameters; limit defaults to 50.
func (h *handler) ListConversations(c *gin.Context) {
	ctx := c.Request.Context()

	limit := queryInt(c, "limit", 50)
	offset := queryInt(c, "offset", 0)

	items, err := h.uc.ListConversations(ctx, limit, offset)
	if err != nil {
		h.l.Errorf(ctx, "analytics handler: ListConversations failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}
	pkgResponse.OK(c, items)
}

// GetConversation serves one conversation with its transcript.
func (h *handler) GetConversation(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}

	detail, err := h.uc.GetConversationDetail(ctx, id)
	if errors.Is(err, conversation.ErrNotFound) {
		pkgResponse.NotFound(c, "conversation not found")
		return
	}
	if err != nil {
		h.l.Errorf(ctx, "analytics handler: GetConversationDetail failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}
	pkgResponse.OK(c, detail)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
