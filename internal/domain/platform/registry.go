package platform

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var platformIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Registry is the closed, read-only set of supported platforms.
// It is safe for concurrent use because nothing mutates it after NewRegistry returns.
type Registry struct {
	policies        []Policy
	index           map[string]int
	defaultPlatform string
}

// NewRegistry validates the given policies and builds an immutable registry.
// Declaration order is preserved for List.
func NewRegistry(policies []Policy, defaultPlatform string) (*Registry, error) {
	if len(policies) == 0 {
		return nil, fmt.Errorf("platform registry requires at least one policy")
	}

	validate := newPolicyValidator()
	registry := &Registry{
		policies: make([]Policy, 0, len(policies)),
		index:    make(map[string]int, len(policies)),
	}
	for _, policy := range policies {
		if err := validate.Struct(policy); err != nil {
			return nil, fmt.Errorf("invalid platform policy %q: %w", policy.ID, err)
		}
		if _, exists := registry.index[policy.ID]; exists {
			return nil, fmt.Errorf("duplicate platform policy %q", policy.ID)
		}
		registry.index[policy.ID] = len(registry.policies)
		registry.policies = append(registry.policies, policy)
	}

	defaultPlatform = normalizeID(defaultPlatform)
	if _, ok := registry.index[defaultPlatform]; !ok {
		return nil, fmt.Errorf("default platform %q is not registered", defaultPlatform)
	}
	registry.defaultPlatform = defaultPlatform

	return registry, nil
}

// Resolve returns the policy registered under platformID, compared case-insensitively.
func (r *Registry) Resolve(platformID string) (Policy, error) {
	id := normalizeID(platformID)
	pos, ok := r.index[id]
	if !ok {
		return Policy{}, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, id)
	}
	return r.policies[pos], nil
}

// List returns every registered policy in declaration order.
func (r *Registry) List() []Policy {
	out := make([]Policy, len(r.policies))
	copy(out, r.policies)
	return out
}

// Default returns the platform id used when a request names none.
func (r *Registry) Default() string {
	return r.defaultPlatform
}

func normalizeID(platformID string) string {
	return strings.ToLower(strings.TrimSpace(platformID))
}

func newPolicyValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("platformid", func(fl validator.FieldLevel) bool {
		return platformIDPattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("queryparam", func(fl validator.FieldLevel) bool {
		key := fl.Field().String()
		return key != "" && url.QueryEscape(key) == key
	})
	return validate
}
