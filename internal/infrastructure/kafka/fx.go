package kafka

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Conte777/NewsFlow/services/announcement-service/config"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/deps"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/metrics"
)

// Publisher is an event publisher with a lifecycle and health signal
type Publisher interface {
	deps.EventPublisher
	Healthy() bool
	Close() error
}

// Module provides the announcement event publisher for fx DI
var Module = fx.Module("kafka",
	fx.Provide(NewPublisherFx),
	fx.Provide(func(p Publisher) deps.EventPublisher { return p }),
)

// NewPublisherFx creates the Kafka producer, or a no-op publisher when Kafka is disabled
func NewPublisherFx(
	lc fx.Lifecycle,
	cfg *config.KafkaConfig,
	m *metrics.Metrics,
	logger zerolog.Logger,
) Publisher {
	if !cfg.Enabled {
		logger.Warn().Msg("Kafka disabled, announcement events will not be published")
		return NewNopPublisher(logger)
	}

	producer := NewProducer(cfg, m, logger)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return producer.Close()
		},
	})

	return producer
}
