package schedule

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/interval-alarm/internal/domain/alarm"
)

// openBackends returns every backend rooted in a fresh temporary directory.
func openBackends(t *testing.T) map[string]Repository {
	t.Helper()

	dir := t.TempDir()

	sqliteRepo, err := Open(context.Background(), Options{
		Driver:      DriverSQLite,
		Path:        filepath.Join(dir, "db", "schedules.db"),
		BusyTimeout: time.Second,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = sqliteRepo.Close()
	})

	fileRepo, err := Open(context.Background(), Options{Path: filepath.Join(dir, "schedules.json")})
	require.NoError(t, err)

	return map[string]Repository{
		DriverFile:   fileRepo,
		DriverSQLite: sqliteRepo,
	}
}

// TestRepository_CreateLoadSave exercises the full record lifecycle on every backend.
func TestRepository_CreateLoadSave(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	trigger := time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)

	for name, repo := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.Load(ctx, 1)
			require.ErrorIs(t, err, ErrNotFound)

			first, err := repo.Create(ctx, domain.DefaultSchedule())
			require.NoError(t, err)
			require.EqualValues(t, 1, first.ID)

			second, err := repo.Create(ctx, &domain.Schedule{
				Label:           "Water",
				StartMinute:     600,
				EndMinute:       1200,
				IntervalMinutes: 45,
				ActiveDays:      domain.NewWeekdays(time.Monday, time.Thursday),
				Enabled:         true,
				AutoDismiss:     30 * time.Second,
			})
			require.NoError(t, err)
			require.EqualValues(t, 2, second.ID)

			second.NextTrigger = trigger
			require.NoError(t, repo.Save(ctx, second))

			got, err := repo.Load(ctx, second.ID)
			require.NoError(t, err)
			require.Equal(t, "Water", got.Label)
			require.Equal(t, domain.NewWeekdays(time.Monday, time.Thursday), got.ActiveDays)
			require.True(t, got.Enabled)
			require.Equal(t, 30*time.Second, got.AutoDismiss)
			require.True(t, trigger.Equal(got.NextTrigger))

			// Clearing the trigger round-trips as "none".
			got.NextTrigger = time.Time{}
			require.NoError(t, repo.Save(ctx, got))

			got, err = repo.Load(ctx, second.ID)
			require.NoError(t, err)
			require.False(t, got.HasNextTrigger())

			all, err := repo.LoadAll(ctx)
			require.NoError(t, err)
			require.Len(t, all, 2)
			require.EqualValues(t, 1, all[0].ID)
			require.EqualValues(t, 2, all[1].ID)

			require.ErrorIs(t, repo.Save(ctx, &domain.Schedule{ID: 99}), ErrNotFound)
		})
	}
}

// TestRepository_DeleteNeverReusesIDs removes records idempotently and keeps ids unique.
func TestRepository_DeleteNeverReusesIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	for name, repo := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			a, err := repo.Create(ctx, domain.DefaultSchedule())
			require.NoError(t, err)

			b, err := repo.Create(ctx, domain.DefaultSchedule())
			require.NoError(t, err)

			require.NoError(t, repo.Delete(ctx, b.ID))
			require.NoError(t, repo.Delete(ctx, b.ID))

			_, err = repo.Load(ctx, b.ID)
			require.ErrorIs(t, err, ErrNotFound)

			c, err := repo.Create(ctx, domain.DefaultSchedule())
			require.NoError(t, err)
			require.Greater(t, c.ID, b.ID)

			_, err = repo.Load(ctx, a.ID)
			require.NoError(t, err)
		})
	}
}

// TestRepository_LoadReturnsCopies keeps callers from mutating stored state.
func TestRepository_LoadReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	for name, repo := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			created, err := repo.Create(ctx, domain.DefaultSchedule())
			require.NoError(t, err)

			loaded, err := repo.Load(ctx, created.ID)
			require.NoError(t, err)

			loaded.Label = "changed"

			again, err := repo.Load(ctx, created.ID)
			require.NoError(t, err)
			require.Equal(t, "Work Hours", again.Label)
		})
	}
}

// TestFileRepository_Persisted checks the document lands on disk and survives a new repository.
func TestFileRepository_Persisted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	file := filepath.Join(t.TempDir(), "schedules.json")

	repo := NewFileRepository(file)
	_, err := repo.Create(ctx, domain.DefaultSchedule())
	require.NoError(t, err)

	_, err = os.Stat(file)
	require.NoError(t, err)

	reopened := NewFileRepository(file)

	all, err := reopened.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, domain.EveryDay, all[0].ActiveDays)
}

// TestFileRepository_CorruptFile surfaces decode errors.
func TestFileRepository_CorruptFile(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "schedules.json")
	require.NoError(t, os.WriteFile(file, []byte("{not json"), 0o600))

	_, err := NewFileRepository(file).LoadAll(context.Background())
	require.Error(t, err)

	badDay := `{"nextId": "2", "schedules": [{"id": "1", "start": "09:00", "end": "17:00", "days": ["funday"]}]}`
	require.NoError(t, os.WriteFile(file, []byte(badDay), 0o600))

	_, err = NewFileRepository(file).LoadAll(context.Background())
	require.ErrorIs(t, err, domain.ErrInvalidWeekday)
}

// TestFileRepository_ProtoJSONLayout stores a ScheduleStore in protobuf JSON and reads hand-written documents.
func TestFileRepository_ProtoJSONLayout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	file := filepath.Join(t.TempDir(), "schedules.json")

	repo := NewFileRepository(file)
	_, err := repo.Create(ctx, domain.DefaultSchedule())
	require.NoError(t, err)

	contents, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(contents), `"nextId"`)
	require.Contains(t, string(contents), `"intervalMinutes"`)
	require.Contains(t, string(contents), `"09:00"`)

	handWritten := `{
  "nextId": "1",
  "schedules": [
    {"id": "7", "label": "tea", "start": "15:00", "end": "16:00", "intervalMinutes": 20,
     "days": ["sat", "sun"], "enabled": true, "autoDismiss": "45s"}
  ]
}`
	require.NoError(t, os.WriteFile(file, []byte(handWritten), 0o600))

	got, err := repo.Load(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, "tea", got.Label)
	require.Equal(t, 15*60, got.StartMinute)
	require.Equal(t, 20, got.IntervalMinutes)
	require.Equal(t, domain.NewWeekdays(time.Saturday, time.Sunday), got.ActiveDays)
	require.Equal(t, 45*time.Second, got.AutoDismiss)
	require.False(t, got.HasNextTrigger())

	created, err := repo.Create(ctx, domain.DefaultSchedule())
	require.NoError(t, err)
	require.Equal(t, int64(8), created.ID)
}

// TestSQLite_Tuning switches file databases to WAL and reports databases that cannot switch.
func TestSQLite_Tuning(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	repo, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "schedules.db"), time.Second)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, repo.Close())
	})

	var mode string
	require.NoError(t, repo.db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
	require.Equal(t, "wal", mode)

	memory, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, memory.Close())
	})

	memory.SetMaxOpenConns(1)
	require.ErrorIs(t, tune(ctx, memory), errJournalMode)

	// Opening still succeeds when tuning is refused.
	inMemory, err := OpenSQLite(ctx, ":memory:", 0)
	require.NoError(t, err)
	require.NoError(t, inMemory.Close())
}

// TestOpen_Validation rejects empty paths and unknown drivers.
func TestOpen_Validation(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), Options{Driver: DriverFile})
	require.ErrorIs(t, err, errPathRequired)

	_, err = Open(context.Background(), Options{Driver: "redis", Path: "x"})
	require.ErrorIs(t, err, errUnknownDriver)
}
