// Package app boots the service: config, logging, collaborator selection,
// dependency wiring, and the HTTP server.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"siteworks_backend/database"
	"siteworks_backend/internal/config"
	"siteworks_backend/internal/email"
	"siteworks_backend/internal/handlers"
	"siteworks_backend/internal/identity"
	"siteworks_backend/internal/logger"
	"siteworks_backend/internal/middleware"
	"siteworks_backend/internal/repositories"
	"siteworks_backend/internal/routes"
	"siteworks_backend/internal/services"
	"siteworks_backend/internal/storage"
)

// Run boots the service and blocks serving HTTP.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	collaborators, err := selectCollaborators(cfg)
	if err != nil {
		return err
	}

	router := SetupRouter(cfg, collaborators)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "configured", cfg.Configured())
	return router.Run(addr)
}

// SetupRouter wires the middleware chain, services, and routes.
func SetupRouter(cfg *config.Config, c services.Collaborators) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
	)

	sc := services.NewServiceContainer(c, cfg)
	routes.Setup(router, handlers.NewAppHandlers(sc, c.Storage))
	return router
}

// selectCollaborators picks real or stub implementations exactly once. The
// decision never changes for the life of the process.
func selectCollaborators(cfg *config.Config) (services.Collaborators, error) {
	if !cfg.Configured() {
		logger.Warn("provider not configured, running in stub mode")
		return services.Collaborators{
			Identity: identity.NewStubProvider(),
			Storage:  storage.NewStubStorage(),
			Profiles: repositories.NewStubProfileRepository(),
			Admins:   repositories.NewStubAdminRepository(),
			Mailer:   email.NoopProvider{},
		}, nil
	}

	db, err := database.Open(cfg)
	if err != nil {
		return services.Collaborators{}, fmt.Errorf("open database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return services.Collaborators{}, fmt.Errorf("migrate database: %w", err)
	}

	store, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		return services.Collaborators{}, fmt.Errorf("init storage: %w", err)
	}

	admins := repositories.NewAdminRepository(db)
	if err := services.SeedFirstAdmin(context.Background(), admins, cfg.FirstAdminEmail, cfg.FirstAdminPassword); err != nil {
		return services.Collaborators{}, fmt.Errorf("seed first admin: %w", err)
	}

	var mailer email.Provider = email.NoopProvider{}
	if cfg.Email.SMTPHost != "" {
		mailer = email.NewSMTPProvider(cfg.Email)
	}

	return services.Collaborators{
		Identity: identity.NewHTTPProvider(cfg.Provider.Endpoint, cfg.Provider.ServiceKey, cfg.ProviderTimeout()),
		Storage:  store,
		Profiles: repositories.NewProfileRepository(db),
		Admins:   admins,
		Mailer:   mailer,
	}, nil
}
