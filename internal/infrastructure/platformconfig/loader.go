package platformconfig

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/gd03champ/ai-comm-agg/internal/config"
	"github.com/gd03champ/ai-comm-agg/internal/domain/platform"
)

//go:embed platforms.yaml
var defaultCatalog []byte

type catalogFile struct {
	Platforms []platform.Policy `yaml:"platforms"`
}

// Load reads platform policies from path, or from the embedded catalog when path is empty.
func Load(path string) ([]platform.Policy, error) {
	if path == "" {
		return Decode(bytes.NewReader(defaultCatalog))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open platform catalog %s: %w", path, err)
	}
	defer f.Close()

	policies, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("platform catalog %s: %w", path, err)
	}
	return policies, nil
}

// Decode parses a YAML platform catalog. Unknown keys are rejected.
func Decode(r io.Reader) ([]platform.Policy, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var catalog catalogFile
	if err := decoder.Decode(&catalog); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("platform catalog is empty")
		}
		return nil, fmt.Errorf("decode platform catalog: %w", err)
	}
	if len(catalog.Platforms) == 0 {
		return nil, fmt.Errorf("platform catalog declares no platforms")
	}
	return catalog.Platforms, nil
}

// ApplyBaseURLOverrides replaces base URLs by platform id. Empty overrides are ignored.
func ApplyBaseURLOverrides(policies []platform.Policy, overrides map[string]string) []platform.Policy {
	out := make([]platform.Policy, len(policies))
	copy(out, policies)
	for i := range out {
		if override := overrides[out[i].ID]; override != "" {
			out[i].BaseURL = override
		}
	}
	return out
}

// NewRegistry builds the process-wide platform registry from configuration.
func NewRegistry(cfg *config.Config, log zerolog.Logger) (*platform.Registry, error) {
	policies, err := Load(cfg.PlatformsFile)
	if err != nil {
		return nil, err
	}

	policies = ApplyBaseURLOverrides(policies, map[string]string{
		"amazon": cfg.AmazonBaseURL,
	})

	registry, err := platform.NewRegistry(policies, cfg.DefaultPlatform)
	if err != nil {
		return nil, err
	}

	source := "embedded"
	if cfg.PlatformsFile != "" {
		source = cfg.PlatformsFile
	}
	ids := make([]string, 0, len(policies))
	for _, policy := range registry.List() {
		ids = append(ids, policy.ID)
	}
	log.Info().
		Str("source", source).
		Strs("platforms", ids).
		Str("default", registry.Default()).
		Msg("platform registry loaded")

	return registry, nil
}
