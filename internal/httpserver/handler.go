package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"hotel-concierge-agent/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "server mode: production")
	} else {
		srv.l.Infof(ctx, "server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}

	if srv.analyticsHandler != nil {
		api := srv.gin.Group("/api")
		api.GET("/metrics", srv.analyticsHandler.GetMetrics)
		api.GET("/conversations", srv.analyticsHandler.ListConversations)
		api.GET("/conversations/:id", srv.analyticsHandler.GetConversation)
		srv.l.Infof(ctx, "Analytics routes registered under /api")
	} else {
		srv.l.Infof(ctx, "Analytics handler not configured, skipping dashboard routes")
	}

	return nil
}
