package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/Conte777/NewsFlow/services/announcement-service/config"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/dto"
)

// messageWriter is the part of kafka.Writer the producer relies on
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PublishMetrics records event delivery outcomes
type PublishMetrics interface {
	RecordEventPublished(eventType string, duration time.Duration)
	RecordEventPublishError(eventType string)
}

// Producer publishes announcement events to a single topic
type Producer struct {
	writer       messageWriter
	topic        string
	writeTimeout time.Duration
	metrics      PublishMetrics
	lastFailed   atomic.Bool
	logger       zerolog.Logger
}

// NewProducer creates a Kafka producer for announcement events
func NewProducer(cfg *config.KafkaConfig, m PublishMetrics, logger zerolog.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	logger.Info().
		Strs("brokers", cfg.Brokers).
		Str("topic", cfg.Topic).
		Msg("Kafka producer initialized")

	return newProducer(writer, cfg.Topic, cfg.WriteTimeout, m, logger)
}

func newProducer(w messageWriter, topic string, timeout time.Duration, m PublishMetrics, logger zerolog.Logger) *Producer {
	return &Producer{
		writer:       w,
		topic:        topic,
		writeTimeout: timeout,
		metrics:      m,
		logger:       logger.With().Str("component", "kafka-producer").Logger(),
	}
}

// PublishAnnouncementEvent writes one event keyed by announcement id, so
// every event of an announcement lands on the same partition in order
func (p *Producer) PublishAnnouncementEvent(ctx context.Context, event *dto.AnnouncementEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if p.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.writeTimeout)
		defer cancel()
	}

	start := time.Now()
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(fmt.Sprintf("announcement-%d", event.AnnouncementID)),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		p.lastFailed.Store(true)
		p.metrics.RecordEventPublishError(event.Type)
		p.logger.Error().Err(err).
			Str("event_type", event.Type).
			Uint("announcement_id", event.AnnouncementID).
			Msg("Failed to send announcement event")
		return fmt.Errorf("failed to send message: %w", err)
	}

	p.lastFailed.Store(false)
	p.metrics.RecordEventPublished(event.Type, time.Since(start))
	p.logger.Debug().
		Str("event_type", event.Type).
		Uint("announcement_id", event.AnnouncementID).
		Msg("Announcement event sent")

	return nil
}

// Healthy reports whether the last write succeeded
func (p *Producer) Healthy() bool {
	return !p.lastFailed.Load()
}

// Close flushes pending messages and closes the writer
func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

// NopPublisher drops events; used when Kafka is disabled
type NopPublisher struct {
	logger zerolog.Logger
}

// NewNopPublisher creates a publisher that only logs events at debug level
func NewNopPublisher(logger zerolog.Logger) *NopPublisher {
	return &NopPublisher{logger: logger.With().Str("component", "kafka-producer").Logger()}
}

// PublishAnnouncementEvent logs and discards the event
func (p *NopPublisher) PublishAnnouncementEvent(_ context.Context, event *dto.AnnouncementEvent) error {
	p.logger.Debug().
		Str("event_type", event.Type).
		Uint("announcement_id", event.AnnouncementID).
		Msg("Kafka disabled, event dropped")
	return nil
}

// Healthy always reports true
func (p *NopPublisher) Healthy() bool {
	return true
}

// Close is a no-op
func (p *NopPublisher) Close() error {
	return nil
}
