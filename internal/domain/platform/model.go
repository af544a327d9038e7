package platform

import "errors"

// ErrUnsupportedPlatform is returned when a platform id is not part of the registry.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Policy describes how to build a search URL for one platform.
type Policy struct {
	ID                 string `json:"id" yaml:"id" validate:"required,platformid"`
	DisplayName        string `json:"name" yaml:"name" validate:"required"`
	BaseURL            string `json:"base_url" yaml:"base_url" validate:"required,http_url,endsnotwith=/"`
	SearchPath         string `json:"search_path" yaml:"search_path" validate:"required,startswith=/,excludesall=?#"`
	QueryParam         string `json:"query_param" yaml:"query_param" validate:"required,queryparam"`
	SupportsPagination bool   `json:"supports_pagination" yaml:"supports_pagination"`
}

// SearchEndpoint returns the base URL joined with the search path.
func (p Policy) SearchEndpoint() string {
	return p.BaseURL + p.SearchPath
}
