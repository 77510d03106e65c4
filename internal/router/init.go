package router

import (
	"github.com/homelyhq/homely-backend/internal/application"
	"github.com/homelyhq/homely-backend/internal/container"
	pginfra "github.com/homelyhq/homely-backend/internal/infrastructure/postgres"
	handlers "github.com/homelyhq/homely-backend/internal/interface/http"
	"github.com/homelyhq/homely-backend/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	propRepo := pginfra.NewPropertyRepository(pool)
	likeRepo := pginfra.NewLikeRepository(pool)
	contactRepo := pginfra.NewContactRepository(pool)

	authSvc := application.NewAuthService(userRepo, container.GetJWT(), container.GetRedis(), logger)
	propSvc := application.NewPropertyService(
		propRepo,
		likeRepo,
		container.GetRedis(),
		cfg.ListCacheTTL,
		container.GetES(),
		cfg.ESPropertiesIndex,
		container.GetGCS(),
		cfg.GCSBucket,
		logger,
	)
	contactSvc := application.NewContactService(contactRepo, container.GetRabbitPub(), logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure), container.GetJWT()))
	r.Add(modules.NewPropertyModule(handlers.NewPropertyHandler(propSvc, logger)))
	r.Add(modules.NewContactModule(handlers.NewContactHandler(contactSvc, logger)))
}
