package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionHeaders(content string) []string {
	var sections []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	return sections
}

func TestWriteConfigOrdered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Server.AllowedOrigins = []string{"moz-extension://abc"}

	require.NoError(t, WriteConfigOrdered(cfg, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	sections := sectionHeaders(string(content))
	assert.Equal(t, []string{
		"[broadcast]", "[database]", "[locks]", "[logging]",
		"[restore]", "[server]", "[storage]", "[sync]",
	}, sections)

	var back Config
	require.NoError(t, toml.Unmarshal(content, &back))
	assert.Equal(t, cfg.Broadcast, back.Broadcast)
	assert.Equal(t, cfg.Server, back.Server)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestWriteConfigOrdered_Nil(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "config.toml")))
}

func TestSortTOMLSections(t *testing.T) {
	input := `title = 'x'

[sync]
interval_seconds = 30

[broadcast]
debounce_ms = 100

  [server.tls]
  enabled = false

[server]
addr = '127.0.0.1:7411'
`

	result := sortTOMLSections(input)

	assert.Equal(t, []string{"[broadcast]", "[server]", "[server.tls]", "[sync]"}, sectionHeaders(result))
	assert.True(t, strings.HasPrefix(result, "title = 'x'\n\n[broadcast]"))
	assert.True(t, strings.HasSuffix(result, "interval_seconds = 30\n"))
}
