package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/spacesync/internal/domain/entity"
	"github.com/bnema/spacesync/internal/logging"
)

// isolateXDG points every XDG base dir at a fresh temp dir.
func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, 100, mgr.viper.GetInt("broadcast.debounce_ms"))
	assert.Equal(t, "normal", mgr.viper.GetString("restore.default_window_type"))
	assert.True(t, mgr.viper.GetBool("server.enabled"))
}

func TestLoad_CreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	configFile := filepath.Join(root, "config", appName, configName)
	assert.FileExists(t, configFile)
	assert.Equal(t, configFile, mgr.GetConfigFile())

	cfg := mgr.Get()
	assert.Equal(t, filepath.Join(root, "data", appName, databaseName), cfg.Database.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 30, cfg.Sync.IntervalSeconds)
	assert.Equal(t, "127.0.0.1:7411", cfg.Server.Addr)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolateXDG(t)
	t.Setenv("SPACESYNC_LOG_LEVEL", "DEBUG")
	t.Setenv("SPACESYNC_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("SPACESYNC_BROADCAST_DEBOUNCE_MS", "250")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.Debounce())
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[restore]
ttl_seconds = 45
default_window_type = 'Popup'

[logging]
format = 'text'
`), 0o644))

	mgr, err := NewManager()
	require.NoError(t, err)
	mgr.SetConfigFile(path)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 45*time.Second, cfg.RestoreTTL())
	assert.Equal(t, "popup", cfg.Restore.DefaultWindowType)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 30, cfg.Sync.IntervalSeconds, "unset keys keep defaults")
}

func TestLoad_MissingExplicitFileIsCreated(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "nested", "spacesync.toml")

	mgr, err := NewManager()
	require.NoError(t, err)
	mgr.SetConfigFile(path)
	require.NoError(t, mgr.Load())

	assert.FileExists(t, path)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[locks]\ntimeout_ms = 0\n"), 0o644))

	mgr, err := NewManager()
	require.NoError(t, err)
	mgr.SetConfigFile(path)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locks.timeout_ms")
}

func TestLoad_RejectsMalformedTOML(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[sync\n"), 0o644))

	mgr, err := NewManager()
	require.NoError(t, err)
	mgr.SetConfigFile(path)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestSave_ReloadsWhenNotWatching(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Sync.IntervalSeconds = 90
	require.NoError(t, mgr.Save(cfg))
	assert.Equal(t, 90, mgr.Get().Sync.IntervalSeconds)

	cfg.Locks.TimeoutMs = -1
	assert.Error(t, mgr.Save(cfg))
	assert.Equal(t, 5000, mgr.Get().Locks.TimeoutMs)
}

func TestWatch_ReloadsOnExternalEdit(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	changed := make(chan *Config, 4)
	mgr.OnConfigChange(func(cfg *Config) { changed <- cfg })
	require.NoError(t, mgr.Watch(testCtx()))
	require.NoError(t, mgr.Watch(testCtx()), "second call is a no-op")

	cfg := mgr.Get()
	cfg.Logging.Level = "debug"
	require.NoError(t, WriteConfigOrdered(cfg, mgr.GetConfigFile()))

	select {
	case got := <-changed:
		assert.Equal(t, "debug", got.Logging.Level)
	case <-time.After(5 * time.Second):
		t.Fatal("config change was not observed")
	}
	assert.Equal(t, "debug", mgr.Get().Logging.Level)
}

func TestConfig_ManagerAndBridgeMapping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.AllowedOrigins = []string{"chrome-extension://x"}

	sc := cfg.ManagerConfig()
	assert.Equal(t, 5*time.Second, sc.LockTimeout)
	assert.Equal(t, 10*time.Second, sc.IOTimeout)
	assert.Equal(t, 30*time.Second, sc.SyncInterval)
	assert.Equal(t, 10*time.Second, sc.CleanupInterval)
	assert.Equal(t, entity.WindowTypeNormal, sc.DefaultWindowType)

	bc := cfg.BridgeConfig()
	assert.Equal(t, "127.0.0.1:7411", bc.Addr)
	assert.Equal(t, 64, bc.StreamBuffer)
	assert.Equal(t, 5*time.Second, bc.ShutdownWait)
	assert.True(t, bc.EnableMetrics)
	assert.Equal(t, []string{"chrome-extension://x"}, bc.AllowedOrigins)

	assert.Equal(t, 30*time.Second, cfg.RestoreTTL())
	assert.Equal(t, 2*time.Second, cfg.NotifyTimeout())
}
