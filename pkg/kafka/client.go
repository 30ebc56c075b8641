package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

// TopicAccountCreated carries one message per registered account.
const TopicAccountCreated = "account.created"

// Client wraps Kafka operations.
type Client struct {
	brokers []string
	writer  *kafkago.Writer
	logger  *slog.Logger
}

// NewClient returns a Client for the given brokers.
func NewClient(brokers []string, logger *slog.Logger) *Client {
	return &Client{
		brokers: brokers,
		writer: &kafkago.Writer{
			Addr:                   kafkago.TCP(brokers...),
			Balancer:               &kafkago.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
		logger: logger,
	}
}

// EnsureTopics creates topics if they don't already exist (with retry).
func (c *Client) EnsureTopics(ctx context.Context, topics ...string) error {
	for attempt := 1; attempt <= 20; attempt++ {
		conn, err := kafkago.DialContext(ctx, "tcp", c.brokers[0])
		if err != nil {
			c.logger.Info("kafka not ready, retrying in 3s", "attempt", attempt, "of", 20)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(3 * time.Second):
			}
			continue
		}

		configs := make([]kafkago.TopicConfig, len(topics))
		for i, t := range topics {
			configs[i] = kafkago.TopicConfig{
				Topic:             t,
				NumPartitions:     3,
				ReplicationFactor: 1,
			}
		}

		err = conn.CreateTopics(configs...)
		conn.Close()
		if err != nil {
			c.logger.Info("topic creation returned (may already exist)", "error", err)
		}
		c.logger.Info("kafka topics ensured", "topics", topics)
		return nil
	}
	return fmt.Errorf("kafka: could not connect after 20 attempts")
}

// Publish sends a JSON-serialised message to a topic.
func (c *Client) Publish(ctx context.Context, topic, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.writer.WriteMessages(ctx, kafkago.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	})
}

// Close flushes pending writes and closes the writer.
func (c *Client) Close() error { return c.writer.Close() }
