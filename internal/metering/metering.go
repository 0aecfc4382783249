// Package metering publishes per-turn usage events to Kafka for offline
// accounting. It is optional; when no brokers are configured the recorder
// is simply absent.
package metering

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tom-damari/pharmacy-ai-agent/pkg/kafka"
	"github.com/tom-damari/pharmacy-ai-agent/pkg/logging"
)

// UsageEvent summarizes one completed chat turn.
type UsageEvent struct {
	EventID    string    `json:"event_id"`
	Timestamp  time.Time `json:"timestamp"`
	Rounds     int       `json:"rounds"`
	ToolCalls  int       `json:"tool_calls"`
	DurationMS int64     `json:"duration_ms"`
}

// Recorder publishes usage events through a Kafka producer.
type Recorder struct {
	producer *kafka.Producer
	logger   logging.Logger
}

func NewRecorder(producer *kafka.Producer, logger logging.Logger) *Recorder {
	return &Recorder{producer: producer, logger: logger}
}

// RecordTurn emits one usage event. Failures are logged and swallowed;
// metering must never affect the chat path.
func (r *Recorder) RecordTurn(ctx context.Context, rounds, toolCalls int, duration time.Duration) {
	event := UsageEvent{
		EventID:    uuid.New().String(),
		Timestamp:  time.Now().UTC(),
		Rounds:     rounds,
		ToolCalls:  toolCalls,
		DurationMS: duration.Milliseconds(),
	}
	if err := r.producer.Publish(ctx, event.EventID, event); err != nil {
		r.logger.WithError(err).Warn("Failed to publish usage event")
	}
}

// Close flushes and releases the underlying producer.
func (r *Recorder) Close() {
	r.producer.Close()
}
