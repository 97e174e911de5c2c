package main

import (
	"context"
	"fmt"
	"time"

	"hotel-concierge-agent/config"
	"hotel-concierge-agent/internal/agent"
	"hotel-concierge-agent/internal/agent/orchestrator"
	"hotel-concierge-agent/internal/agent/tools"
	"hotel-concierge-agent/internal/analytics"
	analyticsDelivery "hotel-concierge-agent/internal/analytics/delivery/http"
	tgDelivery "hotel-concierge-agent/internal/conversation/delivery/telegram"
	convMemory "hotel-concierge-agent/internal/conversation/memory"
	"hotel-concierge-agent/internal/httpserver"
	pmsMemory "hotel-concierge-agent/internal/pms/memory"
	"hotel-concierge-agent/internal/router"
	"hotel-concierge-agent/pkg/anthropic"
	"hotel-concierge-agent/pkg/log"
	"hotel-concierge-agent/pkg/telegram"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Hotel Concierge Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Stores
	pmsStore := pmsMemory.New(logger)
	convStore := convMemory.New(logger, time.Duration(cfg.Agent.ConversationTimeoutHours)*time.Hour)
	hotelID := pmsMemory.HotelID

	// 4. Agent pipeline
	var telegramHandler tgDelivery.Handler

	if cfg.Telegram.BotToken != "" && cfg.Anthropic.APIKey != "" {
		logger.Info(ctx, "Initializing agent components...")

		bot := telegram.NewBot(cfg.Telegram.BotToken)
		llm := anthropic.NewClient(cfg.Anthropic.APIKey, cfg.Anthropic.Model)
		resolver := router.New(llm, logger)

		registry := agent.NewToolRegistry()
		registry.Register(tools.NewGetBookingDetailsTool(pmsStore, logger))
		registry.Register(tools.NewGetBookingByPhoneTool(pmsStore, logger))
		registry.Register(tools.NewGetRoomTypesTool(pmsStore, hotelID, logger))
		registry.Register(tools.NewCheckAvailabilityTool(pmsStore, hotelID, logger))
		registry.Register(tools.NewCreateBookingTool(pmsStore, hotelID, logger))
		registry.Register(tools.NewGetHotelAmenitiesTool(pmsStore, hotelID, logger))
		registry.Register(tools.NewGetHotelPoliciesTool(pmsStore, hotelID, logger))
		registry.Register(tools.NewSearchFAQTool(pmsStore, hotelID, logger))
		registry.Register(tools.NewCreateServiceRequestTool(pmsStore, logger))
		registry.Register(tools.NewGetUpsellOffersTool(pmsStore, hotelID, logger))
		registry.Register(tools.NewRecordUpsellResponseTool(pmsStore, logger))
		registry.Register(tools.NewEscalateToHumanTool(convStore, logger))

		orch, err := orchestrator.New(orchestrator.Config{
			LLM:           llm,
			Resolver:      resolver,
			Registry:      registry,
			PMS:           pmsStore,
			Conversations: convStore,
			Logger:        logger,
			HotelID:       hotelID,
			MaxToolRounds: cfg.Agent.MaxToolRounds,
			MaxHistory:    cfg.Agent.MaxHistory,
			MaxTokens:     cfg.Anthropic.MaxTokens,
		})
		if err != nil {
			logger.Error(ctx, "Failed to build orchestrator: ", err)
			return
		}

		telegramHandler = tgDelivery.New(tgDelivery.Config{
			Logger:          logger,
			Orchestrator:    orch,
			Conversations:   convStore,
			PMS:             pmsStore,
			Bot:             bot,
			HotelID:         hotelID,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		})

		if cfg.Telegram.WebhookURL != "" {
			if whErr := bot.SetWebhook(cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}

		logger.Info(ctx, "Agent components initialized")
	} else {
		logger.Warn(ctx, "Agent disabled: TELEGRAM_BOT_TOKEN or ANTHROPIC_API_KEY is missing")
	}

	// 5. Analytics
	analyticsUC := analytics.New(convStore, pmsStore, hotelID, logger)
	analyticsHandler := analyticsDelivery.New(logger, analyticsUC)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		TelegramHandler:  telegramHandler,
		AnalyticsHandler: analyticsHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
