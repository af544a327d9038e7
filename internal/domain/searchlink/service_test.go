package searchlink_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gd03champ/ai-comm-agg/internal/domain/platform"
	"github.com/gd03champ/ai-comm-agg/internal/domain/searchlink"
	"github.com/gd03champ/ai-comm-agg/internal/utils/platformerrors"
)

type passthroughSanitizer struct{}

func (passthroughSanitizer) SanitizeQuery(query string) string { return query }

func (passthroughSanitizer) Fingerprint(query string) string { return "" }

func newTestRegistry(t *testing.T) *platform.Registry {
	t.Helper()
	registry, err := platform.NewRegistry([]platform.Policy{
		{ID: "amazon", DisplayName: "Amazon India", BaseURL: "https://www.amazon.in", SearchPath: "/s", QueryParam: "k", SupportsPagination: true},
		{ID: "flipkart", DisplayName: "Flipkart", BaseURL: "https://www.flipkart.com", SearchPath: "/search", QueryParam: "q", SupportsPagination: true},
		{ID: "meesho", DisplayName: "Meesho", BaseURL: "https://www.meesho.com", SearchPath: "/search", QueryParam: "q", SupportsPagination: false},
	}, "amazon")
	require.NoError(t, err)
	return registry
}

func newTestService(t *testing.T) searchlink.Service {
	t.Helper()
	return searchlink.NewService(newTestRegistry(t), passthroughSanitizer{}, zerolog.Nop())
}

func TestBuildLinks_Examples(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		req      searchlink.SearchRequest
		wantURL  string
		wantBase string
	}{
		{
			name:     "amazon first page",
			req:      searchlink.SearchRequest{Query: "wireless mouse", Platform: "amazon", Page: 1},
			wantURL:  "https://www.amazon.in/s?k=wireless%20mouse",
			wantBase: "https://www.amazon.in",
		},
		{
			name:     "flipkart second page",
			req:      searchlink.SearchRequest{Query: "usb-c cable", Platform: "flipkart", Page: 2},
			wantURL:  "https://www.flipkart.com/search?q=usb-c%20cable&page=2",
			wantBase: "https://www.flipkart.com",
		},
		{
			name:     "default platform",
			req:      searchlink.SearchRequest{Query: "kettle", Page: 1},
			wantURL:  "https://www.amazon.in/s?k=kettle",
			wantBase: "https://www.amazon.in",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.BuildLinks(context.Background(), tt.req)
			require.NoError(t, err)
			require.Len(t, resp.Links, 1)
			assert.Equal(t, tt.wantURL, resp.Links[0].SearchURL)
			assert.Equal(t, tt.wantBase, resp.Links[0].BaseURL)
			assert.Equal(t, resp.Platform, resp.Links[0].Platform)
			assert.Equal(t, tt.req.Page, resp.Page)
		})
	}
}

func TestBuildLinks_UnsupportedPlatform(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.BuildLinks(context.Background(), searchlink.SearchRequest{Query: "x", Platform: "ebay", Page: 1})
	require.Error(t, err)
	assert.Empty(t, resp.Links)
	assert.True(t, errors.Is(err, platform.ErrUnsupportedPlatform))
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))

	platformErr := platformerrors.GetPlatformError(err)
	require.NotNil(t, platformErr)
	assert.Equal(t, "Unsupported platform: ebay", platformErr.Message)
}

func TestBuildLinks_ExplicitInvalidPlatformDoesNotFallBack(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.BuildLinks(context.Background(), searchlink.SearchRequest{Query: "x", Platform: "AMAZONX", Page: 1})
	require.Error(t, err)
	assert.Contains(t, platformerrors.GetPlatformError(err).Message, "amazonx")
}

func TestBuildLinks_InvalidRequests(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name string
		req  searchlink.SearchRequest
	}{
		{"empty query", searchlink.SearchRequest{Query: "", Platform: "amazon", Page: 1}},
		{"zero page", searchlink.SearchRequest{Query: "x", Platform: "amazon", Page: 0}},
		{"negative page", searchlink.SearchRequest{Query: "x", Platform: "amazon", Page: -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.BuildLinks(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, searchlink.ErrInvalidRequest))
			assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
		})
	}
}

func TestBuildLinks_PrefixProperty(t *testing.T) {
	registry := newTestRegistry(t)
	svc := searchlink.NewService(registry, passthroughSanitizer{}, zerolog.Nop())

	for _, policy := range registry.List() {
		for _, query := range []string{"a", "phone case", "50% off & more"} {
			resp, err := svc.BuildLinks(context.Background(), searchlink.SearchRequest{Query: query, Platform: policy.ID, Page: 1})
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(resp.Links[0].SearchURL, policy.BaseURL+policy.SearchPath),
				"url %s should start with %s", resp.Links[0].SearchURL, policy.SearchEndpoint())
		}
	}
}

func TestBuildLinks_EncodingRoundTrip(t *testing.T) {
	svc := newTestService(t)

	queries := []string{
		"wireless mouse",
		"a&b=c",
		"#1 seller?",
		"c++ book / 2nd edition",
		"100% cotton; size=M",
		"  leading and trailing  ",
		"मोबाइल फ़ोन",
		"日本語 キーボード",
		"emoji 🎧 headphones",
		"already%20encoded",
	}

	for _, query := range queries {
		t.Run(query, func(t *testing.T) {
			resp, err := svc.BuildLinks(context.Background(), searchlink.SearchRequest{Query: query, Platform: "flipkart", Page: 1})
			require.NoError(t, err)

			raw := resp.Links[0].SearchURL
			prefix := "https://www.flipkart.com/search?q="
			require.True(t, strings.HasPrefix(raw, prefix))
			encoded := strings.TrimPrefix(raw, prefix)

			assert.NotContains(t, encoded, " ")
			assert.NotContains(t, encoded, "&")
			assert.NotContains(t, encoded, "#")
			assert.NotContains(t, encoded, "+")

			decoded, err := url.QueryUnescape(encoded)
			require.NoError(t, err)
			assert.Equal(t, query, decoded)
		})
	}
}

func TestBuildLinks_Pagination(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.BuildLinks(context.Background(), searchlink.SearchRequest{Query: "tv", Platform: "amazon", Page: 1})
	require.NoError(t, err)
	parsed, err := url.Parse(first.Links[0].SearchURL)
	require.NoError(t, err)
	assert.False(t, parsed.Query().Has("page"))

	third, err := svc.BuildLinks(context.Background(), searchlink.SearchRequest{Query: "tv", Platform: "amazon", Page: 3})
	require.NoError(t, err)
	parsed, err = url.Parse(third.Links[0].SearchURL)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, parsed.Query()["page"])
	assert.Equal(t, 1, strings.Count(third.Links[0].SearchURL, "page=3"))
}

func TestBuildLinks_PaginationUnsupportedIsOmitted(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.BuildLinks(context.Background(), searchlink.SearchRequest{Query: "saree", Platform: "meesho", Page: 4})
	require.NoError(t, err)
	assert.Equal(t, "https://www.meesho.com/search?q=saree", resp.Links[0].SearchURL)
	assert.Equal(t, 4, resp.Page)
}

func TestBuildLinks_CaseInsensitivePlatform(t *testing.T) {
	svc := newTestService(t)

	upper, err := svc.BuildLinks(context.Background(), searchlink.SearchRequest{Query: "mouse", Platform: "Amazon", Page: 2})
	require.NoError(t, err)
	lower, err := svc.BuildLinks(context.Background(), searchlink.SearchRequest{Query: "mouse", Platform: "amazon", Page: 2})
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
	assert.Equal(t, "amazon", upper.Platform)
}

func TestBuildLinks_Deterministic(t *testing.T) {
	svc := newTestService(t)
	req := searchlink.SearchRequest{Query: "usb hub & dock", Platform: "flipkart", Page: 5}

	first, err := svc.BuildLinks(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.BuildLinks(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSupportedPlatforms(t *testing.T) {
	svc := newTestService(t)

	platforms := svc.SupportedPlatforms(context.Background())
	require.Len(t, platforms, 3)
	assert.Equal(t, "amazon", platforms[0].ID)
	assert.Equal(t, "flipkart", platforms[1].ID)
	assert.Equal(t, "meesho", platforms[2].ID)
}

func TestEncodeQuery(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"wireless mouse", "wireless%20mouse"},
		{"a+b", "a%2Bb"},
		{"a&b=c#d", "a%26b%3Dc%23d"},
		{"usb-c_cable.v2~", "usb-c_cable.v2~"},
		{"é", "%C3%A9"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, searchlink.EncodeQuery(tt.in))
		})
	}
}
