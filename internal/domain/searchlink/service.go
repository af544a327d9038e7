package searchlink

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/gd03champ/ai-comm-agg/internal/domain/platform"
	"github.com/gd03champ/ai-comm-agg/internal/infrastructure/observability"
	"github.com/gd03champ/ai-comm-agg/internal/utils/platformerrors"
)

const tracerName = "commerce-search-api/searchlink"

// GenericBuildFailureMessage is the only detail callers see for internal build failures.
const GenericBuildFailureMessage = "An error occurred while generating search links"

// QuerySanitizer turns a raw search query into something safe to log.
type QuerySanitizer interface {
	SanitizeQuery(query string) string
	Fingerprint(query string) string
}

// PlatformRegistry is the read-only platform lookup the builder depends on.
type PlatformRegistry interface {
	Resolve(platformID string) (platform.Policy, error)
	List() []platform.Policy
	Default() string
}

// Service describes the search link use cases.
type Service interface {
	BuildLinks(ctx context.Context, req SearchRequest) (SearchLinksResponse, error)
	SupportedPlatforms(ctx context.Context) []platform.Policy
}

type service struct {
	registry  PlatformRegistry
	sanitizer QuerySanitizer
	log       zerolog.Logger
}

// NewService wires the search link builder with its platform registry.
func NewService(registry PlatformRegistry, sanitizer QuerySanitizer, log zerolog.Logger) Service {
	return &service{
		registry:  registry,
		sanitizer: sanitizer,
		log:       log.With().Str("component", "searchlink-service").Logger(),
	}
}

func (s *service) BuildLinks(ctx context.Context, req SearchRequest) (SearchLinksResponse, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "searchlink.BuildLinks")
	defer span.End()

	if req.Query == "" {
		span.SetStatus(codes.Error, "empty query")
		return SearchLinksResponse{}, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"query must not be empty", ErrInvalidRequest, "0c6f4a52-2b1e-4d7a-9e35-6a1d0f8b7c21")
	}
	if req.Page < 1 {
		span.SetStatus(codes.Error, "invalid page")
		return SearchLinksResponse{}, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			fmt.Sprintf("page must be at least 1, got %d", req.Page), ErrInvalidRequest, "5d2e8b17-93c4-4f0a-b6e1-2a7c9d4f3e58")
	}

	platformID := strings.ToLower(strings.TrimSpace(req.Platform))
	if platformID == "" {
		platformID = s.registry.Default()
	}
	span.SetAttributes(observability.SearchLinkAttrs(platformID, req.Page, s.sanitizer.Fingerprint(req.Query))...)

	policy, err := s.registry.Resolve(platformID)
	if err != nil {
		span.SetStatus(codes.Error, "unsupported platform")
		if errors.Is(err, platform.ErrUnsupportedPlatform) {
			return SearchLinksResponse{}, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
				fmt.Sprintf("Unsupported platform: %s", platformID), err, "9a41c3e6-7f28-4b5d-8e0a-c1b2d3e4f5a6",
				map[string]any{"platform": platformID})
		}
		return SearchLinksResponse{}, s.internalError(ctx, platformID, err)
	}

	searchURL, err := buildSearchURL(policy, req.Query, req.Page)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build failed")
		return SearchLinksResponse{}, s.internalError(ctx, policy.ID, err)
	}

	if req.Page > 1 && !policy.SupportsPagination {
		s.log.Debug().
			Str("platform", policy.ID).
			Int("page", req.Page).
			Msg("platform does not support pagination, page parameter omitted")
	}

	s.log.Info().
		Str("platform", policy.ID).
		Int("page", req.Page).
		Str("query", s.sanitizer.SanitizeQuery(req.Query)).
		Str("request_id", platformerrors.RequestIDFromContext(ctx)).
		Msg("search link generated")

	return SearchLinksResponse{
		Links: []SearchLink{{
			Platform:  policy.ID,
			SearchURL: searchURL,
			BaseURL:   policy.BaseURL,
		}},
		Page:     req.Page,
		Platform: policy.ID,
	}, nil
}

func (s *service) SupportedPlatforms(ctx context.Context) []platform.Policy {
	return s.registry.List()
}

func (s *service) internalError(ctx context.Context, platformID string, cause error) *platformerrors.PlatformError {
	err := platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal,
		GenericBuildFailureMessage, fmt.Errorf("%w: %v", ErrInternalBuild, cause), "e7b3f1d9-4c62-4a8e-9f15-3d8c7b2a6e04",
		map[string]any{"platform": platformID})
	platformerrors.LogError(s.log, err)
	return err
}
