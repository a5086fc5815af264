package config

// Default configuration constants
const (
	// Logging defaults
	defaultLogMaxSizeMB  = 10 // megabytes
	defaultLogMaxBackups = 3
	defaultMaxLogAgeDays = 7 // days

	// Reconciliation and restore defaults
	defaultSyncIntervalSeconds    = 30
	defaultRestoreTTLSeconds      = 30
	defaultRestoreCleanupSeconds  = 10
	defaultRestoreWindowType      = "normal"
	defaultDebounceMs             = 100
	defaultNotifyTimeoutMs        = 2000
	defaultStreamBuffer           = 64
	defaultLockTimeoutMs          = 5000
	defaultStorageIOTimeoutMs     = 10000
	defaultServerAddr             = "127.0.0.1:7411"
	defaultShutdownTimeoutSeconds = 5
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for spacesync.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			// Path is set dynamically in Load()
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: false,
			LogDir:        getDefaultLogDir(),
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
			MaxAgeDays:    defaultMaxLogAgeDays,
			Compress:      true,
		},
		Sync: SyncConfig{
			IntervalSeconds: defaultSyncIntervalSeconds,
		},
		Restore: RestoreConfig{
			TTLSeconds:             defaultRestoreTTLSeconds,
			CleanupIntervalSeconds: defaultRestoreCleanupSeconds,
			DefaultWindowType:      defaultRestoreWindowType,
		},
		Broadcast: BroadcastConfig{
			DebounceMs:      defaultDebounceMs,
			NotifyTimeoutMs: defaultNotifyTimeoutMs,
			StreamBuffer:    defaultStreamBuffer,
		},
		Locks: LocksConfig{
			TimeoutMs: defaultLockTimeoutMs,
		},
		Storage: StorageConfig{
			IOTimeoutMs: defaultStorageIOTimeoutMs,
		},
		Server: ServerConfig{
			Enabled:                true,
			Addr:                   defaultServerAddr,
			EnableMetrics:          true,
			AllowedOrigins:         []string{},
			ShutdownTimeoutSeconds: defaultShutdownTimeoutSeconds,
		},
	}
}
