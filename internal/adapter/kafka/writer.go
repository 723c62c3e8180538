package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/couchcryptid/city-weights/internal/config"
	"github.com/couchcryptid/city-weights/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer publishes annotated cities to a Kafka topic.
// It implements pipeline.Sink.
type Writer struct {
	writer  *kafkago.Writer
	timeout time.Duration
	logger  *slog.Logger
}

// NewWriter creates a Kafka producer for the configured topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &Writer{writer: w, timeout: cfg.KafkaTimeout, logger: logger}
}

// Write publishes all entries in a single WriteMessages call, keyed by city
// name so repeated runs land on the same partition per city.
func (w *Writer) Write(ctx context.Context, entries []domain.CityEntry) error {
	if len(entries) == 0 {
		return nil
	}
	processedAt := domain.Now()
	msgs := make([]kafkago.Message, len(entries))
	for i := range entries {
		msg, err := serializeToMessage(entries[i], processedAt)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}

	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish to %s: %w", w.writer.Topic, err)
	}
	w.logger.Info("published city entries", "topic", w.writer.Topic, "count", len(msgs))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a CityEntry into a Kafka message.
func serializeToMessage(entry domain.CityEntry, processedAt time.Time) (kafkago.Message, error) {
	data, err := json.Marshal(entry)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize city entry: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(entry.Name),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "weight", Value: []byte(strconv.Itoa(entry.Weight))},
			{Key: "processed_at", Value: []byte(processedAt.UTC().Format(time.RFC3339))},
		},
	}, nil
}
