package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/bnema/spacesync/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logging.ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, logging.ParseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, logging.ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, logging.ParseLevel("nonsense"))
	assert.Equal(t, zerolog.Disabled, logging.ParseLevel("off"))
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithComponent(ctx, "restore")
	ctx = logging.WithSpaceID(ctx, "42")
	logging.FromContext(ctx).Info().Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "restore", line["component"])
	assert.Equal(t, "42", line["space_id"])
	assert.Equal(t, "hello", line["message"])
}

func TestFromContext_WithoutLogger(t *testing.T) {
	log := logging.FromContext(context.Background())
	require.NotNil(t, log)
	log.Info().Msg("dropped")
}
