package handlers

import (
	"github.com/rs/zerolog"

	"github.com/gd03champ/ai-comm-agg/internal/domain/searchlink"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	SearchLinks *SearchLinkHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(searchLinkService searchlink.Service, log zerolog.Logger) *Provider {
	return &Provider{
		SearchLinks: NewSearchLinkHandler(searchLinkService, log),
	}
}
