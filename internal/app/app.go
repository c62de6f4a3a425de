package app

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skaters_backend/internal/auth"
	"skaters_backend/internal/config"
	"skaters_backend/internal/database"
	"skaters_backend/internal/email"
	"skaters_backend/internal/handlers"
	"skaters_backend/internal/imageprocessor"
	"skaters_backend/internal/logger"
	"skaters_backend/internal/middleware"
	"skaters_backend/internal/repositories"
	"skaters_backend/internal/routes"
	"skaters_backend/internal/services"
	"skaters_backend/internal/storage"
	"skaters_backend/internal/validator"
	"skaters_backend/internal/web"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// Infrastructure is everything the router is built on top of.
type Infrastructure struct {
	SkaterRepo repositories.SkaterRepository
	Storage    storage.Storage
	Notifier   email.Notifier
}

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	infra, err := initializeInfrastructure(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize infrastructure", "error", err)
	}

	if err := database.SeedAdmin(ctx, infra.SkaterRepo, cfg.Admin.Email, cfg.Admin.FirstPassword); err != nil {
		logger.Fatal("Failed to seed admin account", "error", err)
	}

	ginRouter, err := SetupRouter(cfg, infra)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      ginRouter,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
}

// SetupRouter builds the services, handlers and routes on top of infra.
func SetupRouter(cfg *config.Config, infra *Infrastructure) (*gin.Engine, error) {
	secret, err := jwtSecret(cfg)
	if err != nil {
		return nil, err
	}
	codec := auth.NewTokenCodec(secret, cfg.TokenTTL())

	// 1. Services
	serviceContainer := initializeServices(cfg, infra, codec)

	// 2. Handlers
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator, cfg.Admin.Email)
	appHandlers := initializeHandlers(cfg, baseHandler, serviceContainer)

	// 3. Gin
	ginRouter, err := initializeGinRouter(cfg)
	if err != nil {
		return nil, err
	}
	if local, ok := infra.Storage.(*storage.LocalStorage); ok {
		ginRouter.Static(local.BaseURL(), local.Root())
	}

	// 4. Routes
	routes.RegisterRoutes(ginRouter, appHandlers, routes.Guards{
		Session: middleware.AuthGate(codec, infra.SkaterRepo, baseHandler.RenderError),
		Admin:   middleware.AdminOnly(cfg.Admin.Email),
	})

	return ginRouter, nil
}

func initializeInfrastructure(ctx context.Context, cfg *config.Config) (*Infrastructure, error) {
	skaterRepo, err := initializeRepository(cfg)
	if err != nil {
		return nil, err
	}

	storageInstance, err := storage.NewStorage(ctx, storage.Config{
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
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	notifier := email.NewNotifier(email.SMTPConfig{
		Host:     cfg.Email.SMTPHost,
		Port:     cfg.Email.SMTPPort,
		Username: cfg.Email.SMTPUsername,
		Password: cfg.Email.SMTPPassword,
		From:     cfg.Email.FromEmail,
	})
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP_HOST is not set. Approval emails are disabled.")
	}

	return &Infrastructure{
		SkaterRepo: skaterRepo,
		Storage:    storageInstance,
		Notifier:   notifier,
	}, nil
}

func initializeRepository(cfg *config.Config) (repositories.SkaterRepository, error) {
	if cfg.Database.Driver == database.DriverMemory {
		logger.Warn("Using the in-memory store. Data is lost on restart.")
		return repositories.NewMemorySkaterRepository(), nil
	}

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(gormDB); err != nil {
		return nil, err
	}
	logger.Info("Database connected")

	return repositories.NewSkaterRepository(gormDB), nil
}

func initializeServices(cfg *config.Config, infra *Infrastructure, codec *auth.TokenCodec) *services.ServiceContainer {
	return services.NewServiceContainer(services.Dependencies{
		SkaterRepo: infra.SkaterRepo,
		Storage:    infra.Storage,
		Processor:  imageprocessor.NewProcessor(cfg.Upload.ImageQuality, cfg.Upload.MaxPixels),
		Codec:      codec,
		Notifier:   infra.Notifier,
		Photo: services.PhotoConfig{
			MaxSize:      cfg.Upload.MaxSize,
			AllowedTypes: cfg.Upload.AllowedTypes,
			MaxDimension: cfg.Upload.MaxDimension,
		},
		AdminEmail: cfg.Admin.Email,
	})
}

func initializeHandlers(cfg *config.Config, base *handlers.BaseHandler, sc *services.ServiceContainer) *handlers.AppHandlers {
	return &handlers.AppHandlers{
		HomeHandler:    handlers.NewHomeHandler(base, sc.SkaterService),
		AuthHandler:    handlers.NewAuthHandler(base, sc.AuthService, cfg.TokenTTL(), cfg.Server.SecureCookies),
		ProfileHandler: handlers.NewProfileHandler(base, sc.SkaterService),
		AdminHandler:   handlers.NewAdminHandler(base, sc.AdminService),
	}
}

func initializeGinRouter(cfg *config.Config) (*gin.Engine, error) {
	switch cfg.Server.Env {
	case config.EnvProduction:
		gin.SetMode(gin.ReleaseMode)
	case config.EnvTest:
		gin.SetMode(gin.TestMode)
	}

	templates, err := web.Templates()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.SetHTMLTemplate(templates)
	router.MaxMultipartMemory = cfg.Upload.MaxSize + 1<<20
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	return router, nil
}

// jwtSecret returns the configured signing key. Local runs without one get
// a random key, so sessions do not survive a restart.
func jwtSecret(cfg *config.Config) ([]byte, error) {
	if cfg.JWT.Secret != "" {
		return []byte(cfg.JWT.Secret), nil
	}
	if cfg.Server.Env != config.EnvDevelopment && cfg.Server.Env != config.EnvTest {
		return nil, errors.New("JWT_SECRET is required")
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate jwt secret: %w", err)
	}
	logger.Warn("JWT_SECRET is not set. Using a random secret for this process.")
	return secret, nil
}
