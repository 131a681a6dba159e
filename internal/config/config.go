package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/interval-alarm/internal/logger"
	repository "github.com/oshokin/interval-alarm/internal/repository/schedule"
)

// Config holds the settings shared by interval-alarmd and intervalctl.
type Config struct {
	// ServerAddress is the gRPC address the daemon listens on and the CLI dials.
	ServerAddress string `yaml:"server_addr"`
	// Timeout is the duration for individual RPC calls.
	Timeout time.Duration `yaml:"timeout"`
	// LogLevel is the zap level name, e.g. "info".
	LogLevel string `yaml:"log_level"`
	// Storage selects where schedules are kept.
	Storage Storage `yaml:"storage"`
	// SkipSeed disables creating the default schedule in empty storage.
	SkipSeed bool `yaml:"skip_seed"`
	// Presentation is how a ringing alarm is shown: "log" or "desktop".
	Presentation string `yaml:"presentation"`
}

// Storage selects the schedule repository backend.
type Storage struct {
	// Driver is "file" or "sqlite".
	Driver string `yaml:"driver"`
	// Path is the JSON file or SQLite database path.
	Path string `yaml:"path"`
	// BusyTimeout bounds how long SQLite waits for a locked database.
	BusyTimeout time.Duration `yaml:"busy_timeout,omitempty"`
}

const (
	// DefaultConfigFilename is the default filename for the settings.
	DefaultConfigFilename = "interval-alarm-settings.yaml"

	// DefaultServerAddress is the loopback address used when writing default settings.
	DefaultServerAddress = "127.0.0.1:50061"

	// DefaultFileStorage is the default path of the JSON schedule file.
	DefaultFileStorage = "interval-alarm-schedules.json"

	// DefaultSQLiteStorage is the default path of the SQLite database.
	DefaultSQLiteStorage = "interval-alarm-schedules.db"

	// DefaultTimeout is the default duration for RPC calls.
	DefaultTimeout = 5 * time.Second

	// DefaultBusyTimeout is the default SQLite busy timeout.
	DefaultBusyTimeout = 2 * time.Second

	// PresentationLog rings by writing to the daemon log.
	PresentationLog = "log"

	// PresentationDesktop rings through the desktop notification tool.
	PresentationDesktop = "desktop"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errServerSocketRequired is returned when server address is missing.
	errServerSocketRequired = errors.New("server address must be provided")
	// errUnknownDriver is returned for an unsupported storage driver.
	errUnknownDriver = errors.New("unknown storage driver")
	// errUnknownLogLevel is returned for an unsupported log level.
	errUnknownLogLevel = errors.New("unknown log level")
	// errUnknownPresentation is returned for an unsupported presentation mode.
	errUnknownPresentation = errors.New("unknown presentation")
)

// Default returns settings for a daemon on the loopback interface with file storage.
func Default() *Config {
	cfg := &Config{
		ServerAddress: DefaultServerAddress,
	}

	// Defaults always validate.
	_ = Validate(cfg)

	return cfg
}

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the settings and fills in defaults for optional fields.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.ServerAddress == "" {
		return errServerSocketRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", settings.ServerAddress); err != nil {
		return fmt.Errorf("invalid server socket: %w", err)
	}

	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}

	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, settings.LogLevel)
	}

	switch settings.Presentation {
	case "":
		settings.Presentation = PresentationLog
	case PresentationLog, PresentationDesktop:
	default:
		return fmt.Errorf("%w: %q", errUnknownPresentation, settings.Presentation)
	}

	return validateStorage(&settings.Storage)
}

// validateStorage checks the driver and picks the default path for it.
func validateStorage(storage *Storage) error {
	if storage.Driver == "" {
		storage.Driver = repository.DriverFile
	}

	switch storage.Driver {
	case repository.DriverFile:
		if storage.Path == "" {
			storage.Path = DefaultFileStorage
		}
	case repository.DriverSQLite:
		if storage.Path == "" {
			storage.Path = DefaultSQLiteStorage
		}

		if storage.BusyTimeout <= 0 {
			storage.BusyTimeout = DefaultBusyTimeout
		}
	default:
		return fmt.Errorf("%w: %q", errUnknownDriver, storage.Driver)
	}

	return nil
}

// RepositoryOptions converts the storage settings for repository.Open.
func (s Storage) RepositoryOptions() repository.Options {
	return repository.Options{
		Driver:      s.Driver,
		Path:        s.Path,
		BusyTimeout: s.BusyTimeout,
	}
}
