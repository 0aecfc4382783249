package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/tom-damari/pharmacy-ai-agent/internal/chat"
	"github.com/tom-damari/pharmacy-ai-agent/internal/config"
	"github.com/tom-damari/pharmacy-ai-agent/internal/metering"
	"github.com/tom-damari/pharmacy-ai-agent/internal/pharmacy"
	"github.com/tom-damari/pharmacy-ai-agent/internal/tools"
	"github.com/tom-damari/pharmacy-ai-agent/pkg/kafka"
	"github.com/tom-damari/pharmacy-ai-agent/pkg/llm"
	"github.com/tom-damari/pharmacy-ai-agent/pkg/logging"
	"github.com/tom-damari/pharmacy-ai-agent/pkg/monitoring"
	"github.com/tom-damari/pharmacy-ai-agent/pkg/server"
	"github.com/tom-damari/pharmacy-ai-agent/pkg/version"
)

const serviceName = "pharmacy-agent"

func main() {
	logger := logging.NewLoggerWithService(serviceName)
	cfg := config.Load(logger)

	logger.WithFields(logging.Fields{
		"version":  version.Version,
		"commit":   version.GetShortCommit(),
		"provider": cfg.LLMProvider,
		"model":    cfg.LLMModel,
	}).Info("Starting pharmacy agent")

	provider, err := llm.NewProvider(llm.Config{
		Provider:  cfg.LLMProvider,
		Model:     cfg.LLMModel,
		APIKey:    cfg.LLMAPIKey,
		APIURL:    cfg.LLMAPIURL,
		MaxTokens: cfg.LLMMaxTokens,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to configure LLM provider")
	}

	store := pharmacy.NewStore()
	registry := tools.NewRegistry(store)

	health := monitoring.NewHealthChecker(serviceName, version.Version)
	health.AddCheck("configuration", monitoring.ConfigurationHealthCheck(map[string]string{
		"llm_provider": cfg.LLMProvider,
		"llm_model":    cfg.LLMModel,
	}))
	// Ollama is the only provider with an unauthenticated root endpoint we
	// can ping; the hosted APIs reject bare GETs.
	if cfg.LLMProvider == "ollama" && cfg.LLMAPIURL != "" {
		health.AddCheck("llm", monitoring.HTTPServiceHealthCheck("ollama", cfg.LLMAPIURL))
	}
	metrics := monitoring.NewMetricsCollector(serviceName, version.Version, version.GitCommit)

	orchestratorOpts := []chat.OrchestratorOption{
		chat.WithMaxToolRounds(cfg.MaxToolRounds),
		chat.WithMaxHistoryMessages(cfg.MaxHistoryMessages),
	}

	if cfg.MeteringEnabled && len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaUsageTopic, logger)
		if err != nil {
			logger.WithError(err).Fatal("Failed to connect to Kafka")
		}
		recorder := metering.NewRecorder(producer, logger)
		defer recorder.Close()
		health.AddCheck("kafka", monitoring.KafkaProducerHealthCheck(producer.Client()))
		orchestratorOpts = append(orchestratorOpts, chat.WithUsageRecorder(recorder))
		logger.WithFields(logging.Fields{"topic": cfg.KafkaUsageTopic}).Info("Usage metering enabled")
	}

	orchestrator := chat.NewOrchestrator(provider, registry, logger, orchestratorOpts...)

	router := server.SetupRouter(logger, health, metrics)
	chat.NewHandler(orchestrator, logger).RegisterRoutes(router)

	if cfg.FrontendDir != "" {
		if _, err := os.Stat(cfg.FrontendDir); err == nil {
			router.StaticFile("/", cfg.FrontendDir+"/index.html")
			router.Static("/static", cfg.FrontendDir)
		} else {
			logger.WithFields(logging.Fields{"dir": cfg.FrontendDir}).Warn("Frontend directory not found; UI disabled")
		}
	} else {
		router.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"service": serviceName, "version": version.Version})
		})
	}

	srvCfg := server.DefaultConfig(serviceName, cfg.Port)
	if err := server.Start(srvCfg, router, logger); err != nil {
		logger.WithError(err).Fatal("Server exited with error")
	}
}
