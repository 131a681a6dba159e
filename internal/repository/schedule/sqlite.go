package schedule

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	// Registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"

	domain "github.com/oshokin/interval-alarm/internal/domain/alarm"
	"github.com/oshokin/interval-alarm/internal/logger"
)

//go:embed migrations.sql
var migrations string

// dirPermissions is used when creating the database directory.
const dirPermissions = 0o750

const selectColumns = `SELECT id, label, start_minute, end_minute, interval_minutes,
	active_days, enabled, next_trigger, auto_dismiss_ms FROM schedules`

// errJournalMode is returned when SQLite keeps a journal mode other than WAL.
var errJournalMode = errors.New("journal mode not switched to wal")

// SQLiteRepository persists schedules in a SQLite database.
type SQLiteRepository struct {
	// db is the database handle, limited to one connection.
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and applies the schema.
func OpenSQLite(ctx context.Context, path string, busyTimeout time.Duration) (*SQLiteRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite prefers a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if busyTimeout > 0 {
		if _, err = db.ExecContext(ctx, fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeout.Milliseconds())); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set busy timeout: %w", err)
		}
	}

	if err = tune(ctx, db); err != nil {
		logger.WarnKV(ctx, "SQLite tuning not applied, continuing with defaults", "path", path, "error", err)
	}

	if _, err = db.ExecContext(ctx, migrations); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// tune switches the database to WAL with NORMAL sync. Both are optional: an
// in-memory database, for one, keeps its own journal mode.
func tune(ctx context.Context, db *sql.DB) error {
	var mode string
	if err := db.QueryRowContext(ctx, "PRAGMA journal_mode = WAL").Scan(&mode); err != nil {
		return fmt.Errorf("set journal mode: %w", err)
	}

	if !strings.EqualFold(mode, "wal") {
		return fmt.Errorf("%w: got %q", errJournalMode, mode)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA synchronous = NORMAL"); err != nil {
		return fmt.Errorf("set synchronous: %w", err)
	}

	return nil
}

// Load reads one schedule.
func (r *SQLiteRepository) Load(ctx context.Context, id int64) (*domain.Schedule, error) {
	row := r.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)

	s, err := scanSchedule(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("load schedule %d: %w", id, err)
	}

	return s, nil
}

// LoadAll reads every schedule ordered by id.
func (r *SQLiteRepository) LoadAll(ctx context.Context) ([]*domain.Schedule, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query schedules: %w", err)
	}

	defer func() {
		_ = rows.Close()
	}()

	var result []*domain.Schedule

	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}

		result = append(result, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedules: %w", err)
	}

	return result, nil
}

// Create inserts a schedule and returns it with the generated id.
func (r *SQLiteRepository) Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO schedules(label, start_minute, end_minute, interval_minutes,
			active_days, enabled, next_trigger, auto_dismiss_ms)
		 VALUES(?,?,?,?,?,?,?,?)`,
		schedule.Label, schedule.StartMinute, schedule.EndMinute, schedule.IntervalMinutes,
		int64(schedule.ActiveDays), schedule.Enabled, nullTime(schedule.NextTrigger), schedule.AutoDismiss.Milliseconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert schedule: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read schedule id: %w", err)
	}

	created := schedule.Clone()
	created.ID = id

	return created, nil
}

// Save overwrites an existing schedule.
func (r *SQLiteRepository) Save(ctx context.Context, schedule *domain.Schedule) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE schedules SET label = ?, start_minute = ?, end_minute = ?, interval_minutes = ?,
			active_days = ?, enabled = ?, next_trigger = ?, auto_dismiss_ms = ?
		 WHERE id = ?`,
		schedule.Label, schedule.StartMinute, schedule.EndMinute, schedule.IntervalMinutes,
		int64(schedule.ActiveDays), schedule.Enabled, nullTime(schedule.NextTrigger), schedule.AutoDismiss.Milliseconds(),
		schedule.ID,
	)
	if err != nil {
		return fmt.Errorf("update schedule %d: %w", schedule.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update schedule %d: %w", schedule.ID, err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a schedule if present.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete schedule %d: %w", id, err)
	}

	return nil
}

// Close closes the database.
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}

	return r.db.Close()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanSchedule maps one row to a schedule.
func scanSchedule(row rowScanner) (*domain.Schedule, error) {
	var (
		s             domain.Schedule
		activeDays    int64
		nextTrigger   sql.NullInt64
		autoDismissMS int64
	)

	err := row.Scan(
		&s.ID, &s.Label, &s.StartMinute, &s.EndMinute, &s.IntervalMinutes,
		&activeDays, &s.Enabled, &nextTrigger, &autoDismissMS,
	)
	if err != nil {
		return nil, err
	}

	s.ActiveDays = domain.Weekdays(activeDays) & domain.EveryDay
	s.AutoDismiss = time.Duration(autoDismissMS) * time.Millisecond

	if nextTrigger.Valid {
		s.NextTrigger = time.UnixMilli(nextTrigger.Int64)
	}

	return &s, nil
}

// nullTime stores a zero time as NULL and anything else as Unix milliseconds.
func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}

	return t.UnixMilli()
}
