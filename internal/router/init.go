package router

import (
	"github.com/pureherbal/storefront-api/internal/application"
	"github.com/pureherbal/storefront-api/internal/container"
	pginfra "github.com/pureherbal/storefront-api/internal/infrastructure/postgres"
	handlers "github.com/pureherbal/storefront-api/internal/interface/http"
	"github.com/pureherbal/storefront-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup after the container singletons
// are in place.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	repo := pginfra.NewUserRepository(container.GetPGPool())
	audit := application.NewAuditor(container.GetES(), cfg.ESAuditIndex, logger)

	accountSvc := application.NewAccountService(repo, container.GetJWT(), container.GetGCS(), cfg.GCSBucket, logger, audit)
	addressSvc := application.NewAddressService(repo, logger, audit)

	authHandler := handlers.NewAuthHandler(accountSvc, logger, cfg, container.GetRabbitPub())
	profileHandler := handlers.NewProfileHandler(accountSvc, logger, cfg, container.GetRabbitPub())
	addressHandler := handlers.NewAddressHandler(addressSvc, logger)

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewProfileModule(profileHandler, addressHandler, container.GetJWT()))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
