// Package schedule implements persistence for alarm schedules.
//
// Two backends are available behind the Repository interface: FileRepository
// keeps every schedule in a single JSON document on disk, SQLiteRepository
// stores them in a SQLite table. Open picks one from Options. Storage is the
// source of truth; callers re-read a schedule for every operation.
package schedule
