package http

import (
	"github.com/gin-gonic/gin"

	"hotel-concierge-agent/internal/analytics"
	pkgLog "hotel-concierge-agent/pkg/log"
)

// Handler is the interface for the analytics HTTP handler.
type Handler interface {
	GetMetrics(c *gin.Context)
	ListConversations(c *gin.Context)
	GetConversation(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc analytics.Service
}

// New creates a new analytics HTTP handler.
func New(l pkgLog.Logger, uc analytics.Service) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
