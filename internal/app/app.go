package app

import (
	"go.uber.org/fx"

	"github.com/Conte777/NewsFlow/services/announcement-service/config"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/database"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/http"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/kafka"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/logger"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/metrics"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/search"
)

func CreateApp() fx.Option {
	return fx.Options(
		fx.Provide(config.Out),

		logger.Module,
		metrics.Module,
		database.Module,
		kafka.Module,
		search.Module,
		http.Module,

		domain.Module,
	)
}
