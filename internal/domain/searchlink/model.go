package searchlink

import "errors"

var (
	// ErrInvalidRequest marks requests rejected before any platform lookup.
	ErrInvalidRequest = errors.New("invalid search request")
	// ErrInternalBuild marks failures while assembling a URL for a valid request.
	ErrInternalBuild = errors.New("search link build failed")
)

// DefaultPage is used when a request does not name a page.
const DefaultPage = 1

// SearchRequest is the abstract search a caller wants a link for.
type SearchRequest struct {
	Query    string
	Platform string
	Page     int
}

// SearchLink is a ready-to-navigate search URL for one platform.
type SearchLink struct {
	Platform  string `json:"platform"`
	SearchURL string `json:"search_url"`
	BaseURL   string `json:"base_url"`
}

// SearchLinksResponse groups the links built for one request.
type SearchLinksResponse struct {
	Links    []SearchLink `json:"links"`
	Page     int          `json:"page"`
	Platform string       `json:"platform"`
}
