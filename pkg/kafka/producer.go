package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/tom-damari/pharmacy-ai-agent/pkg/logging"
)

// Producer wraps a franz-go client for fire-and-forget JSON event publishing.
type Producer struct {
	client *kgo.Client
	logger logging.Logger
	topic  string
}

func NewProducer(brokers []string, topic string, logger logging.Logger) (*Producer, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
		kgo.ProducerLinger(50*time.Millisecond),
		kgo.RequestRetries(5),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &Producer{client: client, logger: logger, topic: topic}, nil
}

// Client exposes the underlying connection for health checks.
func (p *Producer) Client() *kgo.Client {
	return p.client
}

// Publish serializes payload as JSON and produces it asynchronously. Delivery
// failures are logged, not returned; event publishing must never block or
// fail a user request.
func (p *Producer) Publish(ctx context.Context, key string, payload interface{}) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(key),
		Value: value,
	}
	p.client.Produce(ctx, record, func(r *kgo.Record, err error) {
		if err != nil {
			p.logger.WithFields(logging.Fields{
				"topic": r.Topic,
				"error": err,
			}).Warn("Failed to deliver event")
		}
	})
	return nil
}

func (p *Producer) Close() {
	p.client.Close()
}
