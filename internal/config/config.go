package config

import (
	"strings"

	"github.com/tom-damari/pharmacy-ai-agent/pkg/config"
	"github.com/tom-damari/pharmacy-ai-agent/pkg/logging"
)

// Config holds all deploy-time settings for the agent service.
type Config struct {
	Port string

	LLMProvider  string
	LLMModel     string
	LLMAPIKey    string
	LLMAPIURL    string
	LLMMaxTokens int

	// MaxToolRounds caps tool-execution rounds within a single chat turn so a
	// misbehaving model cannot loop forever.
	MaxToolRounds int

	// MaxHistoryMessages bounds the conversation window sent to the model.
	MaxHistoryMessages int

	// FrontendDir, when set, is served as static files at the root path.
	FrontendDir string

	KafkaBrokers    []string
	KafkaUsageTopic string
	MeteringEnabled bool
}

func Load(logger logging.Logger) *Config {
	config.LoadEnv(logger)

	cfg := &Config{
		Port: config.GetEnv("AGENT_PORT", "8000"),

		LLMProvider:  config.GetEnv("AGENT_LLM_PROVIDER", "openai"),
		LLMModel:     config.GetEnv("AGENT_LLM_MODEL", "gpt-4o-mini"),
		LLMAPIKey:    config.GetEnv("OPENAI_API_KEY", config.GetEnv("ANTHROPIC_API_KEY", "")),
		LLMAPIURL:    config.GetEnv("AGENT_LLM_API_URL", ""),
		LLMMaxTokens: config.GetEnvInt("AGENT_LLM_MAX_TOKENS", 2048),

		MaxToolRounds:      config.GetEnvInt("AGENT_MAX_TOOL_ROUNDS", 8),
		MaxHistoryMessages: config.GetEnvInt("AGENT_MAX_HISTORY_MESSAGES", 40),

		FrontendDir: config.GetEnv("AGENT_FRONTEND_DIR", ""),

		KafkaUsageTopic: config.GetEnv("AGENT_KAFKA_USAGE_TOPIC", "agent.usage"),
		MeteringEnabled: config.GetEnvBool("AGENT_METERING_ENABLED", false),
	}

	if brokers := config.GetEnv("AGENT_KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	return cfg
}
