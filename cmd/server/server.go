package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"github.com/gd03champ/ai-comm-agg/internal/config"
	"github.com/gd03champ/ai-comm-agg/internal/domain/searchlink"
	"github.com/gd03champ/ai-comm-agg/internal/infrastructure/database"
	"github.com/gd03champ/ai-comm-agg/internal/infrastructure/logger"
	"github.com/gd03champ/ai-comm-agg/internal/infrastructure/observability"
	"github.com/gd03champ/ai-comm-agg/internal/infrastructure/platformconfig"
	"github.com/gd03champ/ai-comm-agg/internal/infrastructure/telemetry"
	"github.com/gd03champ/ai-comm-agg/internal/interfaces/httpserver"
)

// @title Commerce Search API
// @version 1.0
// @description Builds platform search links for e-commerce product queries
// @BasePath /
type Application struct {
	httpServer *httpserver.HttpServer
	checker    *database.Checker
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, checker *database.Checker, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		checker:    checker,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	defer func() {
		if err := a.checker.Close(); err != nil {
			a.log.Error().Err(err).Msg("close catalog database")
		}
	}()
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	checker, err := newCatalogChecker(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize catalog database")
	}

	registry, err := platformconfig.NewRegistry(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("load platform registry")
	}

	sanitizer := telemetry.NewSanitizer(telemetry.PIILevel(cfg.QueryLogPIILevel), cfg.ServiceName)
	searchLinkService := searchlink.NewService(registry, sanitizer, log)

	httpServer := httpserver.New(cfg, log, searchLinkService, checker)
	app := NewApplication(httpServer, checker, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

// newCatalogChecker connects and migrates the catalog database when it is enabled.
// A disabled catalog yields a checker that always reports ready.
func newCatalogChecker(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*database.Checker, error) {
	if !cfg.CatalogDBEnabled {
		log.Info().Msg("Catalog database disabled")
		return database.NewChecker(nil), nil
	}

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, err
	}
	return database.NewChecker(db), nil
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
