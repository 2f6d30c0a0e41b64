package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infercast/infercast/pkg/logging"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewJSON(&buf)

	logger.Info().Str("gpu", "RTX 4090").Float64("memory_gb", 24).Msg("recommended")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "recommended", entry["message"])
	assert.Equal(t, "RTX 4090", entry["gpu"])
	assert.Equal(t, float64(24), entry["memory_gb"])
	assert.Contains(t, entry, "time")
}

func TestDefaultLoggerNotNil(t *testing.T) {
	assert.NotNil(t, logging.Default())
}

func TestSetDefault(t *testing.T) {
	original := *logging.Default()
	defer logging.SetDefault(original)

	var buf bytes.Buffer
	logging.SetDefault(logging.New(&buf))
	logging.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestNopDiscards(t *testing.T) {
	// Nop logger must not panic and produce no output.
	logging.Nop.Error().Msg("discarded")
}
