package telegram

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hotel-concierge-agent/internal/agent/orchestrator"
	"hotel-concierge-agent/internal/conversation"
	"hotel-concierge-agent/internal/pms"
	pkgLog "hotel-concierge-agent/pkg/log"
	pkgTelegram "hotel-concierge-agent/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l        pkgLog.Logger
	orch     *orchestrator.Orchestrator
	convs    conversation.Store
	pms      pms.Service
	bot      *pkgTelegram.Bot
	security *securityValidator
	hotelID  uuid.UUID
}

// Config carries the handler's dependencies.
type Config struct {
	Logger          pkgLog.Logger
	Orchestrator    *orchestrator.Orchestrator
	Conversations   conversation.Store
	PMS             pms.Service
	Bot             *pkgTelegram.Bot
	HotelID         uuid.UUID
	RateLimitPerMin int
}

// New creates a new Telegram delivery handler.
func New(cfg Config) Handler {
	return &handler{
		l:        cfg.Logger,
		orch:     cfg.Orchestrator,
		convs:    cfg.Conversations,
		pms:      cfg.PMS,
		bot:      cfg.Bot,
		security: newSecurityValidator(cfg.RateLimitPerMin),
		hotelID:  cfg.HotelID,
	}
}
