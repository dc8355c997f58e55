package search

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Conte777/NewsFlow/services/announcement-service/config"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/deps"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/metrics"
)

// Module provides the full-text index for fx DI
var Module = fx.Module("search",
	fx.Provide(NewIndexFx),
	fx.Provide(func(i *Index) deps.SearchIndex { return i }),
)

// NewIndexFx opens the index and closes it on shutdown
func NewIndexFx(lc fx.Lifecycle, cfg *config.SearchConfig, m *metrics.Metrics, logger zerolog.Logger) (*Index, error) {
	idx, err := Open(cfg.IndexPath, m, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return idx.Close()
		},
	})

	return idx, nil
}
