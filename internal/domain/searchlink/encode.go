package searchlink

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gd03champ/ai-comm-agg/internal/domain/platform"
)

const pageParam = "page"

// EncodeQuery percent-encodes text for use as a query parameter value.
// Spaces become %20; a literal '+' is already escaped to %2B by url.QueryEscape,
// so the replacement only touches encoded spaces.
func EncodeQuery(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// buildSearchURL assembles {base_url}{search_path}?{query_param}={query}[&page={n}]
// using only the declarative fields of the policy.
func buildSearchURL(policy platform.Policy, query string, page int) (string, error) {
	var b strings.Builder
	b.WriteString(policy.SearchEndpoint())
	b.WriteByte('?')
	b.WriteString(policy.QueryParam)
	b.WriteByte('=')
	b.WriteString(EncodeQuery(query))
	if page > 1 && policy.SupportsPagination {
		b.WriteByte('&')
		b.WriteString(pageParam)
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(page))
	}
	searchURL := b.String()

	if err := verifySearchURL(searchURL, policy, query); err != nil {
		return "", err
	}
	return searchURL, nil
}

// verifySearchURL re-parses the assembled URL and checks the query survives decoding.
func verifySearchURL(searchURL string, policy platform.Policy, query string) error {
	parsed, err := url.Parse(searchURL)
	if err != nil {
		return fmt.Errorf("parse assembled url for %s: %w", policy.ID, err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return fmt.Errorf("assembled url for %s is not absolute", policy.ID)
	}
	values, err := url.ParseQuery(parsed.RawQuery)
	if err != nil {
		return fmt.Errorf("parse query of assembled url for %s: %w", policy.ID, err)
	}
	if got := values[policy.QueryParam]; len(got) != 1 || got[0] != query {
		return fmt.Errorf("query parameter %q does not round-trip for %s", policy.QueryParam, policy.ID)
	}
	return nil
}
