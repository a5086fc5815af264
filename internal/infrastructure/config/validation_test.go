package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
		{name: "file log without dir", mutate: func(c *Config) {
			c.Logging.EnableFileLog = true
			c.Logging.LogDir = ""
		}, wantErr: "logging.log_dir"},
		{name: "zero debounce", mutate: func(c *Config) { c.Broadcast.DebounceMs = 0 }, wantErr: "broadcast.debounce_ms"},
		{name: "negative ttl", mutate: func(c *Config) { c.Restore.TTLSeconds = -1 }, wantErr: "restore.ttl_seconds"},
		{name: "unknown window type", mutate: func(c *Config) { c.Restore.DefaultWindowType = "tab" }, wantErr: "restore.default_window_type"},
		{name: "bad addr", mutate: func(c *Config) { c.Server.Addr = "localhost" }, wantErr: "server.addr"},
		{name: "bad addr ignored when disabled", mutate: func(c *Config) {
			c.Server.Enabled = false
			c.Server.Addr = "localhost"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = " WARNING "
	cfg.Logging.Format = "text"
	cfg.Restore.DefaultWindowType = ""
	cfg.Server.Addr = " 127.0.0.1:1 "

	normalizeConfig(cfg)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "normal", cfg.Restore.DefaultWindowType)
	assert.Equal(t, "127.0.0.1:1", cfg.Server.Addr)
	require.NoError(t, validateConfig(cfg))
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema struct {
		Title      string                     `json:"title"`
		Properties map[string]json.RawMessage `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "spacesync configuration", schema.Title)
	for _, key := range []string{"database", "logging", "sync", "restore", "broadcast", "locks", "storage", "server"} {
		assert.Contains(t, schema.Properties, key)
	}
	assert.Contains(t, string(data), "debounce_ms")
}
