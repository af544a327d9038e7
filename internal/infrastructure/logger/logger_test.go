package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gd03champ/ai-comm-agg/internal/config"
)

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{ServiceName: "commerce-search-api", Environment: "test", LogLevel: "debug", LogFormat: "json"}

	log := NewWithWriter(cfg, &buf)
	log.Debug().Str("platform", "amazon").Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "commerce-search-api", entry["service"])
	assert.Equal(t, "test", entry["environment"])
	assert.Equal(t, "amazon", entry["platform"])
}

func TestNewWithWriterFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{LogLevel: "warn", LogFormat: "json"}

	log := NewWithWriter(cfg, &buf)
	log.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
}

func TestNewWithWriterFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{LogLevel: "chatty", LogFormat: "json"}

	log := NewWithWriter(cfg, &buf)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
}
