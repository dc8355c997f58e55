package domain

import (
	"go.uber.org/fx"

	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/health"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity"
)

var Module = fx.Module(
	"domain",
	identity.Module,
	announcement.Module,
	health.Module,
)
