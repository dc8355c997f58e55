package identity

import (
	"go.uber.org/fx"

	identityhttp "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/delivery/http"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/repository/postgres"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/usecase/business"
)

// Module provides callers, organizations and permission checks
var Module = fx.Module(
	"identity",
	fx.Provide(
		postgres.NewUserRepository,
		postgres.NewOrganizationRepository,
		postgres.NewPermissionRepository,
		business.NewPermissionService,
		business.NewAuthenticator,
		func(a *business.Authenticator) identityhttp.TokenAuthenticator { return a },
		identityhttp.NewAuthMiddleware,
	),
)
