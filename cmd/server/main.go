package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"leasehub/docs"
	"leasehub/internal/auth"
	"leasehub/internal/bootstrap"
	"leasehub/internal/cache"
	"leasehub/internal/config"
	"leasehub/internal/db"
	"leasehub/internal/handler"
	"leasehub/internal/listing"
	"leasehub/internal/logging"
	"leasehub/internal/repository"
	"leasehub/internal/retry"
	"leasehub/internal/router"
	"leasehub/internal/service"
	"leasehub/internal/upstream"
	"leasehub/internal/wizard"
)

const shutdownTimeout = 10 * time.Second

// @title LeaseHub API
// @version 1.0
// @description Session, search and workflow gateway in front of the property-management API.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	rootCmd := &cobra.Command{
		Use:   "leasehub",
		Short: "LeaseHub gateway",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
		SilenceUsage: true,
	}
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return serve(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return migrate()
			},
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func migrate() error {
	cfg := config.Load()
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	gormDB, err := db.Open(cfg.MySQLDSN)
	if err != nil {
		return fmt.Errorf("database init: %w", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		return err
	}
	logger.Info("migrations applied")
	return nil
}

func serve(ctx context.Context) error {
	cfg := config.Load()
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	if cfg.DefaultSecret() {
		logger.Warn("JWT_SECRET is not set, signing session tokens with the built-in default")
	}

	gormDB, err := db.Open(cfg.MySQLDSN)
	if err != nil {
		return fmt.Errorf("database init: %w", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		return err
	}

	// store caches upstream reads and fails open. state holds sessions,
	// filters and wizards and reports redis failures.
	var (
		store cache.Store
		state cache.StateStore
	)
	if cfg.RedisAddr == "" {
		logger.Warn("REDIS_ADDR is empty, keeping sessions in memory")
		mem := cache.NewMemory()
		store, state = mem, mem
	} else {
		redisClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer redisClient.Close()
		if err := redisClient.Ping(ctx); err != nil {
			logger.Warn("redis unreachable at startup", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		store, state = redisClient, redisClient.Strict()
	}

	api, err := upstream.New(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)
	if err != nil {
		return err
	}
	wizards, err := wizard.Load()
	if err != nil {
		return err
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.SessionTTL)
	sessions := auth.NewSessionStore(state, cfg.SessionTTL)
	resolver := bootstrap.NewResolver(api, retry.Policy{
		Attempts: cfg.SessionRetryAttempts,
		Delay:    cfg.SessionRetryDelay,
	}, logger)

	// Initialize services
	templateRepo := repository.NewTemplateRepository(gormDB)
	filterService := service.NewFilterService(state, cfg.SessionTTL)
	preferenceService := service.NewPreferenceService(api, sessions, store, logger)
	templateService := service.NewTemplateService(templateRepo, store)
	propertyService := service.NewPropertyService(api, sessions, filterService, preferenceService, listing.NewTracker(), store, logger)
	wizardService := service.NewWizardService(wizards, state, cfg.SessionTTL, templateService, preferenceService, api, sessions, logger)
	authService := service.NewAuthService(
		api,
		sessions,
		jwtService,
		resolver,
		[]service.SessionCleaner{filterService, propertyService, wizardService},
		service.AuthOptions{OAuthCallbackURL: service.OAuthCallbackURL(cfg.PublicBaseURL)},
		logger,
	)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, logger, jwtService, authService, router.Handlers{
		Auth:     handler.NewAuthHandler(authService, jwtService, logger),
		Filter:   handler.NewFilterHandler(filterService),
		Property: handler.NewPropertyHandler(propertyService),
		Template: handler.NewTemplateHandler(templateService),
		Wizard:   handler.NewWizardHandler(wizardService),
		Seed:     handler.NewSeedHandler(templateService),
	})

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}
	logger.Info("swagger documentation available", zap.String("url", strings.TrimRight(cfg.PublicBaseURL, "/")+"/swagger/index.html"))

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.ServerPort
		logger.Info("server starting", zap.String("addr", addr), zap.String("upstream", cfg.UpstreamBaseURL))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, failed := <-errCh:
		if failed {
			return fmt.Errorf("server start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
