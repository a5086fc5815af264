package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/bnema/spacesync/internal/domain/entity"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateTimings(config)...)
	validationErrors = append(validationErrors, validateRestore(config)...)
	validationErrors = append(validationErrors, validateServer(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	if config.Logging.EnableFileLog {
		if config.Logging.LogDir == "" {
			validationErrors = append(validationErrors, "logging.log_dir is required when enable_file_log is true")
		}
		if config.Logging.MaxSizeMB < 1 {
			validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
		}
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}

func validateTimings(config *Config) []string {
	positive := []struct {
		key   string
		value int
	}{
		{"sync.interval_seconds", config.Sync.IntervalSeconds},
		{"restore.ttl_seconds", config.Restore.TTLSeconds},
		{"restore.cleanup_interval_seconds", config.Restore.CleanupIntervalSeconds},
		{"broadcast.debounce_ms", config.Broadcast.DebounceMs},
		{"broadcast.notify_timeout_ms", config.Broadcast.NotifyTimeoutMs},
		{"broadcast.stream_buffer", config.Broadcast.StreamBuffer},
		{"locks.timeout_ms", config.Locks.TimeoutMs},
		{"storage.io_timeout_ms", config.Storage.IOTimeoutMs},
		{"server.shutdown_timeout_seconds", config.Server.ShutdownTimeoutSeconds},
	}

	var validationErrors []string
	for _, p := range positive {
		if p.value <= 0 {
			validationErrors = append(validationErrors, fmt.Sprintf("%s must be positive", p.key))
		}
	}
	return validationErrors
}

func validateRestore(config *Config) []string {
	if !entity.WindowType(config.Restore.DefaultWindowType).Valid() {
		return []string{fmt.Sprintf("restore.default_window_type %q is not a known window type", config.Restore.DefaultWindowType)}
	}
	return nil
}

func validateServer(config *Config) []string {
	if !config.Server.Enabled {
		return nil
	}
	if _, _, err := net.SplitHostPort(config.Server.Addr); err != nil {
		return []string{fmt.Sprintf("server.addr %q must be host:port", config.Server.Addr)}
	}
	return nil
}
