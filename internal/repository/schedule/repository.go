package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "github.com/oshokin/interval-alarm/internal/domain/alarm"
)

// Repository defines persistence operations for schedules.
type Repository interface {
	// Load returns the schedule with the given id or ErrNotFound.
	Load(ctx context.Context, id int64) (*domain.Schedule, error)
	// LoadAll returns every schedule ordered by id.
	LoadAll(ctx context.Context) ([]*domain.Schedule, error)
	// Create stores a new schedule and returns it with its assigned id.
	Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)
	// Save overwrites an existing schedule; it returns ErrNotFound for unknown ids.
	Save(ctx context.Context, schedule *domain.Schedule) error
	// Delete removes a schedule. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id int64) error
	// Close releases the underlying resources.
	Close() error
}

const (
	// DriverFile selects FileRepository.
	DriverFile = "file"
	// DriverSQLite selects SQLiteRepository.
	DriverSQLite = "sqlite"
)

var (
	// ErrNotFound is returned when a schedule does not exist.
	ErrNotFound = errors.New("schedule not found")
	// errUnknownDriver is returned by Open for unsupported drivers.
	errUnknownDriver = errors.New("unknown storage driver")
	// errPathRequired is returned by Open when no path is configured.
	errPathRequired = errors.New("storage path is required")
)

// Options selects and configures a storage backend.
type Options struct {
	// Driver is "file" (default) or "sqlite".
	Driver string
	// Path is the JSON document or the SQLite database file.
	Path string
	// BusyTimeout is the SQLite busy timeout; zero keeps the driver default.
	BusyTimeout time.Duration
}

// Open creates the repository described by opts.
//
//nolint:ireturn // Callers depend on the interface, the backend is a runtime choice.
func Open(ctx context.Context, opts Options) (Repository, error) {
	if strings.TrimSpace(opts.Path) == "" {
		return nil, errPathRequired
	}

	driver := strings.ToLower(strings.TrimSpace(opts.Driver))

	switch driver {
	case "", DriverFile:
		return NewFileRepository(opts.Path), nil
	case DriverSQLite, "sqlite3":
		return OpenSQLite(ctx, opts.Path, opts.BusyTimeout)
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownDriver, driver)
	}
}
