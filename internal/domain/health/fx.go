package health

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Conte777/NewsFlow/services/announcement-service/config"
	healthhttp "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/health/delivery/http"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/http/server"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/kafka"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/search"
)

// Module provides the health endpoint for fx DI
var Module = fx.Module("health",
	fx.Provide(NewHealthHandlerFx),
	fx.Provide(healthhttp.NewRouter),
	fx.Invoke(RegisterRoutes),
)

// NewHealthHandlerFx creates the health handler over the service's backing components
func NewHealthHandlerFx(
	serviceCfg *config.ServiceConfig,
	db *gorm.DB,
	publisher kafka.Publisher,
	index *search.Index,
	logger zerolog.Logger,
) (*healthhttp.HealthHandler, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return healthhttp.NewHealthHandler(serviceCfg.Name, sqlDB, publisher, index, logger), nil
}

// RegisterRoutes registers health routes on the server
func RegisterRoutes(server *server.Server, router *healthhttp.Router) {
	router.RegisterRoutes(server.Router)
}
