//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"

	"github.com/gd03champ/ai-comm-agg/internal/config"
	"github.com/gd03champ/ai-comm-agg/internal/domain/platform"
	"github.com/gd03champ/ai-comm-agg/internal/domain/searchlink"
	"github.com/gd03champ/ai-comm-agg/internal/infrastructure/logger"
	"github.com/gd03champ/ai-comm-agg/internal/infrastructure/platformconfig"
	"github.com/gd03champ/ai-comm-agg/internal/infrastructure/telemetry"
	"github.com/gd03champ/ai-comm-agg/internal/interfaces/httpserver"
)

var searchLinkSet = wire.NewSet(
	platformconfig.NewRegistry,
	wire.Bind(new(searchlink.PlatformRegistry), new(*platform.Registry)),
	newQuerySanitizer,
	wire.Bind(new(searchlink.QuerySanitizer), new(*telemetry.Sanitizer)),
	searchlink.NewService,
)

// BuildApplication assembles the service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		newCatalogChecker,
		searchLinkSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newQuerySanitizer(cfg *config.Config) *telemetry.Sanitizer {
	return telemetry.NewSanitizer(telemetry.PIILevel(cfg.QueryLogPIILevel), cfg.ServiceName)
}
