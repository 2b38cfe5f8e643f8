package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"
)

// notificationMessage is the wire payload published to the notifications
// topic. A downstream delivery worker turns these into chat messages.
type notificationMessage struct {
	RecipientID string    `json:"recipientId"`
	Text        string    `json:"text"`
	SentAt      time.Time `json:"sentAt"`
}

// Notifier publishes per-recipient notification messages to a Kafka topic.
// It satisfies the services' Notifier port; delivery from the topic to the
// actual chat transport is out of process.
type Notifier struct {
	producer sarama.SyncProducer
	topic    string
	log      *slog.Logger
}

// NewNotifier creates a Kafka-backed Notifier.
func NewNotifier(brokers []string, topic string, log *slog.Logger) (*Notifier, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Info("kafka notifier created", slog.String("topic", topic), slog.Any("brokers", brokers))

	return &Notifier{
		producer: producer,
		topic:    topic,
		log:      log,
	}, nil
}

// Notify publishes one notification. Messages are keyed by recipient so a
// single recipient's notifications stay ordered.
func (n *Notifier) Notify(ctx context.Context, recipientID, text string) error {
	payload, err := json.Marshal(notificationMessage{
		RecipientID: recipientID,
		Text:        text,
		SentAt:      time.Now(),
	})
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(recipientID),
		Value: sarama.ByteEncoder(payload),
	}

	type result struct {
		partition int32
		offset    int64
		err       error
	}

	resultCh := make(chan result, 1)

	go func() {
		partition, offset, err := n.producer.SendMessage(msg)
		resultCh <- result{partition, offset, err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			n.log.Error("kafka send failed",
				slog.String("recipient_id", recipientID),
				slog.String("error", res.err.Error()))
			return res.err
		}
		n.log.Debug("kafka send success",
			slog.String("recipient_id", recipientID),
			slog.Int("partition", int(res.partition)),
			slog.Int64("offset", res.offset))
		return nil

	case <-ctx.Done():
		n.log.Warn("kafka send cancelled", slog.String("recipient_id", recipientID))
		return ctx.Err()
	}
}

// Close shuts the underlying producer down.
func (n *Notifier) Close() error {
	if n.producer == nil {
		return nil
	}
	return n.producer.Close()
}

// NoOpNotifier logs notifications instead of sending them. Used when no
// Kafka brokers are configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a NoOpNotifier.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// Notify logs the notification and reports success.
func (n *NoOpNotifier) Notify(_ context.Context, recipientID, text string) error {
	n.log.Info("notification (kafka disabled)",
		slog.String("recipient_id", recipientID),
		slog.String("text", text))
	return nil
}
