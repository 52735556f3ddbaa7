package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"workhive_backend/database"
	"workhive_backend/internal/auth"
	"workhive_backend/internal/config"
	"workhive_backend/internal/email"
	"workhive_backend/internal/handlers"
	"workhive_backend/internal/logger"
	"workhive_backend/internal/middleware"
	"workhive_backend/internal/repositories"
	"workhive_backend/internal/repositories/filestore"
	"workhive_backend/internal/routes"
	"workhive_backend/internal/services"
	"workhive_backend/internal/validator"
)

// App holds the composed application: configuration, the repository bundle
// and the ready-to-serve router.
type App struct {
	Config *config.Config
	Store  *repositories.Store
	Router *gin.Engine
}

// New composes the application from configuration. Every dependency is
// constructed here and injected; nothing else in the tree opens stores or
// reads the environment.
func New(cfg *config.Config) (*App, error) {
	store, err := openStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	tokens, err := auth.NewTokenService(cfg.JWT.Secret)
	if err != nil {
		return nil, err
	}

	emailProvider := buildEmailProvider(cfg)

	authService := services.NewAuthService(store.Users, tokens, emailProvider)
	profileService := services.NewProfileService(store.Profiles, store.Users)
	jobService := services.NewJobService(store.Jobs, store.Profiles)

	v := validator.New()
	appHandlers := handlers.NewAppHandlers(v, tokens, authService, profileService, jobService)

	router := setupRouter(cfg, appHandlers, tokens)

	return &App{Config: cfg, Store: store, Router: router}, nil
}

// Run loads configuration, composes the app and blocks serving HTTP.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger.Init(cfg.Server.Env)

	application, err := New(cfg)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting",
		"addr", addr,
		"env", cfg.Server.Env,
		"store", cfg.Store.Driver,
	)
	return application.Router.Run(addr)
}

func setupRouter(cfg *config.Config, h *handlers.AppHandlers, tokens *auth.TokenService) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware())

	routes.Register(r, h, tokens)
	return r
}

// openStore picks the persistence provider from configuration. Both
// providers satisfy the same repository interfaces, so everything above
// this point is identical either way.
func openStore(cfg *config.Config) (*repositories.Store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverFile:
		fs, err := filestore.Open(cfg.Store.Dir)
		if err != nil {
			return nil, err
		}
		return fs.Repositories(), nil

	case config.StoreDriverPostgres:
		db, err := gorm.Open(postgres.Open(cfg.Store.DSN), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
		return &repositories.Store{
			Users:    repositories.NewUserRepository(db),
			Profiles: repositories.NewProfileRepository(db),
			Jobs:     repositories.NewJobRepository(db),
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// buildEmailProvider returns SMTP when configured and an in-memory capture
// sink otherwise, so local development works without a mail server.
func buildEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("smtp not configured, outgoing email will be captured in memory")
		return email.NewCaptureProvider()
	}
	return email.NewSMTPProvider(&email.SMTPConfig{
		Host:         cfg.Email.SMTPHost,
		Port:         cfg.Email.SMTPPort,
		Username:     cfg.Email.SMTPUsername,
		Password:     cfg.Email.SMTPPassword,
		FromEmail:    cfg.Email.FromEmail,
		FromName:     cfg.Email.FromName,
		ResetBaseURL: cfg.Email.ResetBaseURL,
	})
}
