package chat

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chatRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pharmacy_agent",
		Name:      "chat_requests_total",
		Help:      "Total chat requests received",
	})

	chatRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "pharmacy_agent",
		Name:      "chat_request_duration_seconds",
		Help:      "End-to-end chat turn duration including tool rounds",
		Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
	})

	activeStreams = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "pharmacy_agent",
		Name:      "active_streams",
		Help:      "Chat streams currently open",
	})

	tokensStreamedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pharmacy_agent",
		Name:      "tokens_streamed_total",
		Help:      "Content fragments streamed to clients",
	})

	toolExecutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pharmacy_agent",
		Name:      "tool_executions_total",
		Help:      "Tool executions by tool name",
	}, []string{"tool"})

	policyRefusalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pharmacy_agent",
		Name:      "policy_refusals_total",
		Help:      "Messages refused by the policy gate, by refusal language",
	}, []string{"language"})

	modelErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pharmacy_agent",
		Name:      "model_errors_total",
		Help:      "Completion calls that failed",
	})

	modelRoundsPerTurn = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "pharmacy_agent",
		Name:      "model_rounds_per_turn",
		Help:      "Model calls needed to finish one chat turn",
		Buckets:   []float64{1, 2, 3, 4, 5, 8},
	})
)
