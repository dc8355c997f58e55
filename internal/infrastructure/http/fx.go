package http

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Conte777/NewsFlow/services/announcement-service/config"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/http/server"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/metrics"
)

// Module provides HTTP server for fx DI
var Module = fx.Module("http",
	fx.Provide(NewServerFx),
)

// NewServerFx creates HTTP server with lifecycle hooks for fx DI
func NewServerFx(
	lc fx.Lifecycle,
	serviceCfg *config.ServiceConfig,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *server.Server {
	srv := server.NewServer(serviceCfg.Name, serviceCfg.Port, m, logger)
	srv.RegisterMetrics()

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return srv.Start()
		},
		OnStop: func(ctx context.Context) error {
			stopCtx, cancel := context.WithTimeout(ctx, serviceCfg.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(stopCtx)
		},
	})

	return srv
}
