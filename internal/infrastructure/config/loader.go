package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/spacesync/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
	explicitFile   string
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// SPACESYNC_SYNC_INTERVAL_SECONDS, SPACESYNC_SERVER_ADDR, ...
	v.SetEnvPrefix("SPACESYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "SPACESYNC_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SPACESYNC_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SPACESYNC_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SPACESYNC_LOG_FORMAT: %w", err)
	}
	if err := v.BindEnv("database.path", "SPACESYNC_DB"); err != nil {
		return nil, fmt.Errorf("failed to bind SPACESYNC_DB: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// SetConfigFile pins the manager to one file instead of searching the
// config paths. A missing file is created with defaults on Load.
func (m *Manager) SetConfigFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.explicitFile = path
	m.viper.SetConfigFile(path)
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	path, createErr := m.createDefaultConfig()
	if createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			path,
			createErr,
		)
	}
	m.viper.SetConfigFile(path)
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch config.Logging.Level {
	case "":
		config.Logging.Level = "info"
	case "warning":
		config.Logging.Level = "warn"
	}

	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	default:
		// "text" was the old name of console output.
		config.Logging.Format = "console"
	}

	config.Restore.DefaultWindowType = strings.ToLower(strings.TrimSpace(config.Restore.DefaultWindowType))
	if config.Restore.DefaultWindowType == "" {
		config.Restore.DefaultWindowType = defaultRestoreWindowType
	}

	config.Database.Path = strings.TrimSpace(config.Database.Path)
	config.Server.Addr = strings.TrimSpace(config.Server.Addr)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	configCopy := *m.config
	configCopy.Server.AllowedOrigins = append([]string(nil), m.config.Server.AllowedOrigins...)
	return &configCopy
}

// Save validates cfg and writes it to the file in use.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	path := m.viper.ConfigFileUsed()
	if path == "" {
		return fmt.Errorf("no config file loaded")
	}
	if err := WriteConfigOrdered(cfg, path); err != nil {
		return err
	}

	if m.watching {
		m.skipNextReload = true
		m.config = cfg
		return nil
	}
	return m.reload()
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes DefaultConfig and returns the path it used.
func (m *Manager) createDefaultConfig() (string, error) {
	configFile := m.explicitFile
	if configFile == "" {
		var err error
		if configFile, err = GetConfigFile(); err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return configFile, err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return configFile, err
	}

	log := logging.NewFromEnv()
	log.Info().Str("path", configFile).Msg("created default configuration file")
	return configFile, nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Note: Database.Path is set dynamically in Load(), only the key is registered
	m.viper.SetDefault("database.path", "")

	m.setLoggingDefaults(defaults)
	m.setSyncDefaults(defaults)
	m.setBroadcastDefaults(defaults)
	m.setServerDefaults(defaults)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

func (m *Manager) setSyncDefaults(defaults *Config) {
	m.viper.SetDefault("sync.interval_seconds", defaults.Sync.IntervalSeconds)
	m.viper.SetDefault("restore.ttl_seconds", defaults.Restore.TTLSeconds)
	m.viper.SetDefault("restore.cleanup_interval_seconds", defaults.Restore.CleanupIntervalSeconds)
	m.viper.SetDefault("restore.default_window_type", defaults.Restore.DefaultWindowType)
	m.viper.SetDefault("locks.timeout_ms", defaults.Locks.TimeoutMs)
	m.viper.SetDefault("storage.io_timeout_ms", defaults.Storage.IOTimeoutMs)
}

func (m *Manager) setBroadcastDefaults(defaults *Config) {
	m.viper.SetDefault("broadcast.debounce_ms", defaults.Broadcast.DebounceMs)
	m.viper.SetDefault("broadcast.notify_timeout_ms", defaults.Broadcast.NotifyTimeoutMs)
	m.viper.SetDefault("broadcast.stream_buffer", defaults.Broadcast.StreamBuffer)
}

func (m *Manager) setServerDefaults(defaults *Config) {
	m.viper.SetDefault("server.enabled", defaults.Server.Enabled)
	m.viper.SetDefault("server.addr", defaults.Server.Addr)
	m.viper.SetDefault("server.enable_metrics", defaults.Server.EnableMetrics)
	m.viper.SetDefault("server.allowed_origins", defaults.Server.AllowedOrigins)
	m.viper.SetDefault("server.shutdown_timeout_seconds", defaults.Server.ShutdownTimeoutSeconds)
}
