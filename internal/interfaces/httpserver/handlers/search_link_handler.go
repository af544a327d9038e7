package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/gd03champ/ai-comm-agg/internal/domain/platform"
	"github.com/gd03champ/ai-comm-agg/internal/domain/searchlink"
	"github.com/gd03champ/ai-comm-agg/internal/infrastructure/metrics"
	"github.com/gd03champ/ai-comm-agg/internal/interfaces/httpserver/requests"
	"github.com/gd03champ/ai-comm-agg/internal/interfaces/httpserver/responses"
)

// SearchLinkHandler serves the search link endpoints.
type SearchLinkHandler struct {
	service searchlink.Service
	log     zerolog.Logger
}

// NewSearchLinkHandler wires dependencies for search link routes.
func NewSearchLinkHandler(service searchlink.Service, log zerolog.Logger) *SearchLinkHandler {
	return &SearchLinkHandler{
		service: service,
		log:     log.With().Str("component", "searchlink-handler").Logger(),
	}
}

// CreateSearchLinks godoc
// @Summary      Build search links
// @Description  Returns a ready-to-use search URL for the requested e-commerce platform.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request  body      requests.SearchLinksRequest  true  "Search request"
// @Success      200      {object}  searchlink.SearchLinksResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /search-links [post]
func (h *SearchLinkHandler) CreateSearchLinks(c *gin.Context) {
	var req requests.SearchLinksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RecordSearchLink("", metrics.OutcomeInvalid)
		responses.HandleValidationError(c, bindErrorMessage(err))
		return
	}

	result, err := h.service.BuildLinks(c.Request.Context(), req.ToDomain())
	if err != nil {
		metrics.RecordSearchLink(result.Platform, outcomeFor(err))
		responses.HandleError(c, err, h.log)
		return
	}

	metrics.RecordSearchLink(result.Platform, metrics.OutcomeSuccess)
	c.JSON(http.StatusOK, result)
}

// ListSupportedPlatforms godoc
// @Summary      List supported platforms
// @Description  Advertises every platform a search link can be built for, in registry order.
// @Tags         products
// @Produce      json
// @Success      200  {object}  responses.SupportedPlatformsResponse
// @Router       /supported-platforms [get]
func (h *SearchLinkHandler) ListSupportedPlatforms(c *gin.Context) {
	c.JSON(http.StatusOK, responses.NewSupportedPlatformsResponse(h.service.SupportedPlatforms(c.Request.Context())))
}

// Health godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  responses.HealthResponse
// @Router       /health [get]
func (h *SearchLinkHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, responses.HealthResponse{Status: "healthy"})
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, platform.ErrUnsupportedPlatform):
		return metrics.OutcomeUnsupported
	case errors.Is(err, searchlink.ErrInvalidRequest):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeInternal
	}
}

func bindErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fields = append(fields, fmt.Sprintf("%s is %s", strings.ToLower(fieldErr.Field()), fieldErr.Tag()))
		}
		return strings.Join(fields, "; ")
	}
	return "invalid request body"
}
