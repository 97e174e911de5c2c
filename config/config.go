package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Hotel Concierge specifics
	Telegram  TelegramConfig
	Anthropic AnthropicConfig
	Agent     AgentConfig
	Webhook   WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

// AnthropicConfig configures the Claude model client.
type AnthropicConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
}

// AgentConfig holds the dialogue agent knobs. These are threaded into the
// orchestrator at construction, never read as globals.
type AgentConfig struct {
	MaxToolRounds            int
	MaxHistory               int
	ConversationTimeoutHours int
}

type WebhookConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Anthropic
	cfg.Anthropic.APIKey = viper.GetString("anthropic.api_key")
	cfg.Anthropic.Model = viper.GetString("anthropic.model")
	cfg.Anthropic.MaxTokens = viper.GetInt("anthropic.max_tokens")
	if apiKey := viper.GetString("anthropic_api_key"); apiKey != "" {
		cfg.Anthropic.APIKey = apiKey
	}

	// Agent
	cfg.Agent.MaxToolRounds = viper.GetInt("agent.max_tool_rounds")
	cfg.Agent.MaxHistory = viper.GetInt("agent.max_history")
	cfg.Agent.ConversationTimeoutHours = viper.GetInt("agent.conversation_timeout_hours")

	// Webhook
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("anthropic.model", "claude-sonnet-4-20250514")
	viper.SetDefault("anthropic.max_tokens", 1024)
	viper.SetDefault("agent.max_tool_rounds", 3)
	viper.SetDefault("agent.max_history", 10)
	viper.SetDefault("agent.conversation_timeout_hours", 2)
	viper.SetDefault("webhook.rate_limit_per_min", 30)
}
