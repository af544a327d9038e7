package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	apidocs "github.com/gd03champ/ai-comm-agg/docs/swagger"
	"github.com/gd03champ/ai-comm-agg/internal/config"
	"github.com/gd03champ/ai-comm-agg/internal/domain/searchlink"
	"github.com/gd03champ/ai-comm-agg/internal/infrastructure/database"
	"github.com/gd03champ/ai-comm-agg/internal/infrastructure/metrics"
	"github.com/gd03champ/ai-comm-agg/internal/interfaces/httpserver/handlers"
	"github.com/gd03champ/ai-comm-agg/internal/interfaces/httpserver/middlewares"
	v1 "github.com/gd03champ/ai-comm-agg/internal/interfaces/httpserver/routes/v1"
)

// HttpServer wraps the gin engine with graceful shutdown helpers.
type HttpServer struct {
	cfg    *config.Config
	engine *gin.Engine
	log    zerolog.Logger
}

// New constructs the HTTP server with default middleware and routes.
// A nil or disabled checker makes /readyz report ready without a database.
func New(cfg *config.Config, log zerolog.Logger, searchLinkService searchlink.Service, checker *database.Checker) *HttpServer {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		if cfg.AllowsAnyOrigin() {
			log.Warn().Msg("CORS allows any origin in production")
		}
	}
	apidocs.SwaggerInfo.BasePath = "/"

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middlewares.RequestID(),
		middlewares.TracingMiddleware(cfg.ServiceName),
		middlewares.LoggingMiddleware(log),
		middlewares.MetricsMiddleware(),
		middlewares.CORSMiddleware(cfg.CORSAllowedOrigins),
	)

	handlerProvider := handlers.NewProvider(searchLinkService, log)
	routes := v1.NewRoutes(handlerProvider)
	registerCoreRoutes(engine, cfg, handlerProvider, routes, checker)

	return &HttpServer{
		cfg:    cfg,
		engine: engine,
		log:    log,
	}
}

// Handler exposes the configured engine.
func (s *HttpServer) Handler() http.Handler {
	return s.engine
}

// Run starts the HTTP listener and handles graceful shutdown via context cancellation.
func (s *HttpServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr()).Msg("HTTP server listening")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("HTTP server error")
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.log.Info().Msg("Context cancelled, shutting down HTTP server")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func registerCoreRoutes(engine *gin.Engine, cfg *config.Config, provider *handlers.Provider, routes *v1.Routes, checker *database.Checker) {
	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": cfg.ServiceName, "status": "ok"})
	})
	engine.GET("/health", provider.SearchLinks.Health)
	engine.GET("/healthz", provider.SearchLinks.Health)
	engine.GET("/readyz", func(c *gin.Context) {
		if err := checker.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.Register(engine)
}
