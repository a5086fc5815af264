package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/invopop/jsonschema"

	"github.com/bnema/spacesync/internal/application/state"
	"github.com/bnema/spacesync/internal/domain/entity"
	"github.com/bnema/spacesync/internal/infrastructure/bridge"
)

// Config represents the complete configuration for spacesync.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging"`
	// Sync controls the periodic window/space reconciliation pass.
	Sync SyncConfig `mapstructure:"sync" yaml:"sync" toml:"sync"`
	// Restore controls pending restore intents.
	Restore   RestoreConfig   `mapstructure:"restore" yaml:"restore" toml:"restore"`
	Broadcast BroadcastConfig `mapstructure:"broadcast" yaml:"broadcast" toml:"broadcast"`
	Locks     LocksConfig     `mapstructure:"locks" yaml:"locks" toml:"locks"`
	Storage   StorageConfig   `mapstructure:"storage" yaml:"storage" toml:"storage"`
	// Server configures the local HTTP/WebSocket bridge used by host extensions.
	Server ServerConfig `mapstructure:"server" yaml:"server" toml:"server"`
}

// DatabaseConfig holds the SQLite location. Empty means the XDG data dir.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
}

// LoggingConfig controls zerolog output and the optional rotating log file.
type LoggingConfig struct {
	Level         string `mapstructure:"level" yaml:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" yaml:"format" toml:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups"`
	MaxAgeDays    int    `mapstructure:"max_age_days" yaml:"max_age_days" toml:"max_age_days"`
	Compress      bool   `mapstructure:"compress" yaml:"compress" toml:"compress"`
}

type SyncConfig struct {
	IntervalSeconds int `mapstructure:"interval_seconds" yaml:"interval_seconds" toml:"interval_seconds" jsonschema:"minimum=1"`
}

type RestoreConfig struct {
	// TTLSeconds is how long an unclaimed intent survives before cleanup drops it.
	TTLSeconds             int    `mapstructure:"ttl_seconds" yaml:"ttl_seconds" toml:"ttl_seconds" jsonschema:"minimum=1"`
	CleanupIntervalSeconds int    `mapstructure:"cleanup_interval_seconds" yaml:"cleanup_interval_seconds" toml:"cleanup_interval_seconds" jsonschema:"minimum=1"`
	DefaultWindowType      string `mapstructure:"default_window_type" yaml:"default_window_type" toml:"default_window_type" jsonschema:"enum=normal,enum=popup,enum=panel,enum=app,enum=devtools"`
}

type BroadcastConfig struct {
	// DebounceMs is the coalescing window for non-critical updates.
	DebounceMs      int `mapstructure:"debounce_ms" yaml:"debounce_ms" toml:"debounce_ms" jsonschema:"minimum=1"`
	NotifyTimeoutMs int `mapstructure:"notify_timeout_ms" yaml:"notify_timeout_ms" toml:"notify_timeout_ms" jsonschema:"minimum=1"`
	StreamBuffer    int `mapstructure:"stream_buffer" yaml:"stream_buffer" toml:"stream_buffer" jsonschema:"minimum=1"`
}

type LocksConfig struct {
	TimeoutMs int `mapstructure:"timeout_ms" yaml:"timeout_ms" toml:"timeout_ms" jsonschema:"minimum=1"`
}

type StorageConfig struct {
	IOTimeoutMs int `mapstructure:"io_timeout_ms" yaml:"io_timeout_ms" toml:"io_timeout_ms" jsonschema:"minimum=1"`
}

type ServerConfig struct {
	Enabled                bool     `mapstructure:"enabled" yaml:"enabled" toml:"enabled"`
	Addr                   string   `mapstructure:"addr" yaml:"addr" toml:"addr"`
	EnableMetrics          bool     `mapstructure:"enable_metrics" yaml:"enable_metrics" toml:"enable_metrics"`
	AllowedOrigins         []string `mapstructure:"allowed_origins" yaml:"allowed_origins" toml:"allowed_origins"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds" yaml:"shutdown_timeout_seconds" toml:"shutdown_timeout_seconds" jsonschema:"minimum=1"`
}

// ManagerConfig maps the tuning sections onto the state manager.
func (c *Config) ManagerConfig() state.Config {
	return state.Config{
		LockTimeout:       millis(c.Locks.TimeoutMs),
		IOTimeout:         millis(c.Storage.IOTimeoutMs),
		SyncInterval:      seconds(c.Sync.IntervalSeconds),
		CleanupInterval:   seconds(c.Restore.CleanupIntervalSeconds),
		DefaultWindowType: entity.WindowType(c.Restore.DefaultWindowType),
	}
}

// BridgeConfig maps the server section onto the bridge.
func (c *Config) BridgeConfig() bridge.Config {
	return bridge.Config{
		Addr:           c.Server.Addr,
		StreamBuffer:   c.Broadcast.StreamBuffer,
		ShutdownWait:   seconds(c.Server.ShutdownTimeoutSeconds),
		EnableMetrics:  c.Server.EnableMetrics,
		AllowedOrigins: append([]string(nil), c.Server.AllowedOrigins...),
	}
}

func (c *Config) RestoreTTL() time.Duration    { return seconds(c.Restore.TTLSeconds) }
func (c *Config) Debounce() time.Duration      { return millis(c.Broadcast.DebounceMs) }
func (c *Config) NotifyTimeout() time.Duration { return millis(c.Broadcast.NotifyTimeoutMs) }

func millis(n int) time.Duration  { return time.Duration(n) * time.Millisecond }
func seconds(n int) time.Duration { return time.Duration(n) * time.Second }

// GenerateSchema returns the JSON schema of the config file, keyed by TOML names.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{FieldNameTag: "toml", DoNotReference: true}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/spacesync/config.schema.json"
	schema.Title = "spacesync configuration"
	schema.Description = "Configuration schema for the spacesync daemon"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
