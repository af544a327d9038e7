package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/gd03champ/ai-comm-agg/internal/interfaces/httpserver/handlers"
)

// productPrefixes are the mount points of the product routes. The bare root
// serves the unversioned paths existing clients already call.
var productPrefixes = []string{"/", "/v1/products", "/api/v1/products"}

// Routes encapsulates versioned route registration.
type Routes struct {
	handlers *handlers.Provider
}

func NewRoutes(provider *handlers.Provider) *Routes {
	return &Routes{handlers: provider}
}

// Register attaches the product routes under every supported prefix.
// The root /health is owned by the core routes.
func (r *Routes) Register(router gin.IRouter) {
	for _, prefix := range productPrefixes {
		group := router.Group(prefix)
		group.POST("/search-links", r.handlers.SearchLinks.CreateSearchLinks)
		group.GET("/supported-platforms", r.handlers.SearchLinks.ListSupportedPlatforms)
		if prefix != "/" {
			group.GET("/health", r.handlers.SearchLinks.Health)
		}
	}
}
