package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	repository "github.com/oshokin/interval-alarm/internal/repository/schedule"
)

// TestValidate checks required fields and format validations for Config.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Missing socket.
	require.Error(t, Validate(new(Config)))
	require.Error(t, Validate(nil))

	// Bad socket.
	require.Error(t, Validate(&Config{ServerAddress: "bad:address"}))

	// Unknown log level.
	require.ErrorIs(t, Validate(&Config{ServerAddress: "127.0.0.1:0", LogLevel: "loud"}), errUnknownLogLevel)

	// Unknown driver.
	require.ErrorIs(t, Validate(&Config{
		ServerAddress: "127.0.0.1:0",
		Storage:       Storage{Driver: "postgres"},
	}), errUnknownDriver)

	// Unknown presentation.
	require.ErrorIs(t, Validate(&Config{ServerAddress: "127.0.0.1:0", Presentation: "speaker"}), errUnknownPresentation)
}

// TestValidate_Defaults fills in optional fields.
func TestValidate_Defaults(t *testing.T) {
	t.Parallel()

	settings := &Config{ServerAddress: "127.0.0.1:0"}
	require.NoError(t, Validate(settings))
	require.Equal(t, DefaultTimeout, settings.Timeout)
	require.Equal(t, DefaultLogLevel, settings.LogLevel)
	require.Equal(t, repository.DriverFile, settings.Storage.Driver)
	require.Equal(t, DefaultFileStorage, settings.Storage.Path)
	require.Zero(t, settings.Storage.BusyTimeout)
	require.Equal(t, PresentationLog, settings.Presentation)

	settings = &Config{
		ServerAddress: "127.0.0.1:0",
		Storage:       Storage{Driver: repository.DriverSQLite},
	}
	require.NoError(t, Validate(settings))
	require.Equal(t, DefaultSQLiteStorage, settings.Storage.Path)
	require.Equal(t, DefaultBusyTimeout, settings.Storage.BusyTimeout)

	opts := settings.Storage.RepositoryOptions()
	require.Equal(t, repository.DriverSQLite, opts.Driver)
	require.Equal(t, DefaultSQLiteStorage, opts.Path)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	settings := &Config{
		ServerAddress: "127.0.0.1:50061",
		Timeout:       3 * time.Second,
		LogLevel:      "debug",
		Storage: Storage{
			Driver:      repository.DriverSQLite,
			Path:        filepath.Join(dir, "schedules.db"),
			BusyTimeout: time.Second,
		},
		SkipSeed: true,
	}

	require.NoError(t, Save(path, settings))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, settings, loaded)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(DefaultFilePermissions), info.Mode().Perm())
}

// TestLoad_YAMLDurations parses durations written by hand.
func TestLoad_YAMLDurations(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	contents := "server_addr: 127.0.0.1:50061\ntimeout: 2s\nstorage:\n  driver: file\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2*time.Second, loaded.Timeout)
	require.Equal(t, DefaultFileStorage, loaded.Storage.Path)
	require.False(t, loaded.SkipSeed)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

// TestDefault is valid as is.
func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.Equal(t, DefaultServerAddress, cfg.ServerAddress)
	require.NoError(t, Validate(cfg))
}
