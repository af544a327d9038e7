package responses

import (
	"github.com/gd03champ/ai-comm-agg/internal/domain/platform"
)

// PlatformResponse advertises one supported platform
type PlatformResponse struct {
	ID      string `json:"id" example:"amazon"`
	Name    string `json:"name" example:"Amazon India"`
	BaseURL string `json:"base_url" example:"https://www.amazon.in"`
}

// SupportedPlatformsResponse is the body of GET /supported-platforms
type SupportedPlatformsResponse struct {
	Platforms []PlatformResponse `json:"platforms"`
}

// NewSupportedPlatformsResponse keeps registry order.
func NewSupportedPlatformsResponse(policies []platform.Policy) SupportedPlatformsResponse {
	out := SupportedPlatformsResponse{Platforms: make([]PlatformResponse, 0, len(policies))}
	for _, policy := range policies {
		out.Platforms = append(out.Platforms, PlatformResponse{
			ID:      policy.ID,
			Name:    policy.DisplayName,
			BaseURL: policy.BaseURL,
		})
	}
	return out
}

// HealthResponse is the liveness body
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}
