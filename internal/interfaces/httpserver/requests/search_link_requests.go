package requests

import (
	"github.com/gd03champ/ai-comm-agg/internal/domain/searchlink"
)

// SearchLinksRequest is the body of POST /search-links
type SearchLinksRequest struct {
	Query    string `json:"query" binding:"required" example:"wireless mouse"`
	Platform string `json:"platform" example:"amazon"`
	Page     *int   `json:"page" example:"1"`
}

// ToDomain converts the request to the domain model, applying the page default.
func (r *SearchLinksRequest) ToDomain() searchlink.SearchRequest {
	page := searchlink.DefaultPage
	if r.Page != nil {
		page = *r.Page
	}
	return searchlink.SearchRequest{
		Query:    r.Query,
		Platform: r.Platform,
		Page:     page,
	}
}
