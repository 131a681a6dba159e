package alarm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// MinutesPerDay is the number of minutes in a day without DST shifts.
	MinutesPerDay = 24 * 60
	// LastMinute is the last valid minute of a day (23:59).
	LastMinute = MinutesPerDay - 1
)

var (
	// ErrInvalidSchedule wraps every validation failure of a schedule edit.
	ErrInvalidSchedule = errors.New("invalid schedule")
	// ErrWindowOutOfRange is returned when a window bound is outside [0, 1439].
	ErrWindowOutOfRange = errors.New("window bound must be within 00:00..23:59")
	// ErrOvernightWindow is returned for windows that end before they start.
	// Windows wrapping past midnight are not supported.
	ErrOvernightWindow = errors.New("window end is before window start")
	// ErrNegativeAutoDismiss is returned for a negative auto-dismiss duration.
	ErrNegativeAutoDismiss = errors.New("auto-dismiss must not be negative")
	// ErrInvalidWeekday is returned for an unknown weekday name.
	ErrInvalidWeekday = errors.New("invalid weekday")
	// ErrInvalidClock is returned for a malformed HH:MM string.
	ErrInvalidClock = errors.New("invalid time of day")
)

// Schedule is the persisted alarm definition.
type Schedule struct {
	// ID is the stable identity assigned by storage on creation.
	ID int64 `json:"id"`
	// Label is free-form text shown to the user.
	Label string `json:"label"`
	// StartMinute is the first minute of the daily window (minutes since local midnight).
	StartMinute int `json:"start_minute"`
	// EndMinute is the last minute of the daily window, inclusive.
	EndMinute int `json:"end_minute"`
	// IntervalMinutes is the spacing between occurrences inside the window.
	IntervalMinutes int `json:"interval_minutes"`
	// ActiveDays are the weekdays on which the window is open.
	ActiveDays Weekdays `json:"active_days"`
	// Enabled is the user's arm/disarm switch.
	Enabled bool `json:"enabled"`
	// NextTrigger is the last instant handed to the timer gateway, zero if none.
	// It is kept for display and is never used to compute the next occurrence.
	NextTrigger time.Time `json:"next_trigger,omitzero"`
	// AutoDismiss stops a ringing session after this long; zero disables it.
	AutoDismiss time.Duration `json:"auto_dismiss,omitempty"`
}

// DefaultSchedule returns the "Work Hours" template: 09:00-17:00 every 30 minutes, every day, disabled.
func DefaultSchedule() *Schedule {
	return &Schedule{
		Label:           "Work Hours",
		StartMinute:     9 * 60,
		EndMinute:       17 * 60,
		IntervalMinutes: 30,
		ActiveDays:      EveryDay,
		Enabled:         false,
	}
}

// Clone returns a copy of the schedule. A nil schedule clones to nil.
func (s *Schedule) Clone() *Schedule {
	if s == nil {
		return nil
	}

	cloned := *s

	return &cloned
}

// HasNextTrigger reports whether an occurrence is currently recorded.
func (s *Schedule) HasNextTrigger() bool {
	return s != nil && !s.NextTrigger.IsZero()
}

// State derives the lifecycle state from the persisted fields.
func (s *Schedule) State() LifecycleState {
	if s == nil || !s.Enabled || s.NextTrigger.IsZero() {
		return StateDisabled
	}

	return StateArmed
}

// Validate checks the fields an edit may set.
//
// An empty day set or a non-positive interval is not a validation error:
// such a schedule is accepted and simply has no next occurrence.
func (s *Schedule) Validate() error {
	if s.StartMinute < 0 || s.StartMinute > LastMinute {
		return fmt.Errorf("%w: start %d: %w", ErrInvalidSchedule, s.StartMinute, ErrWindowOutOfRange)
	}

	if s.EndMinute < 0 || s.EndMinute > LastMinute {
		return fmt.Errorf("%w: end %d: %w", ErrInvalidSchedule, s.EndMinute, ErrWindowOutOfRange)
	}

	if s.EndMinute < s.StartMinute {
		return fmt.Errorf("%w: %s-%s: %w",
			ErrInvalidSchedule, FormatClock(s.StartMinute), FormatClock(s.EndMinute), ErrOvernightWindow)
	}

	if s.AutoDismiss < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSchedule, ErrNegativeAutoDismiss)
	}

	return nil
}

// ApplyEdit replaces the definition fields with the ones from edit.
// Identity and the recorded next trigger are left untouched.
func (s *Schedule) ApplyEdit(edit *Schedule) {
	s.Label = edit.Label
	s.StartMinute = edit.StartMinute
	s.EndMinute = edit.EndMinute
	s.IntervalMinutes = edit.IntervalMinutes
	s.ActiveDays = edit.ActiveDays
	s.Enabled = edit.Enabled
	s.AutoDismiss = edit.AutoDismiss
}

// String renders a one-line summary, e.g. "#3 Work Hours 09:00-17:00/30m every day".
func (s *Schedule) String() string {
	if s == nil {
		return "<nil schedule>"
	}

	return fmt.Sprintf("#%d %s %s-%s/%dm %s",
		s.ID, s.Label, FormatClock(s.StartMinute), FormatClock(s.EndMinute), s.IntervalMinutes, s.ActiveDays)
}

// ParseClock converts "HH:MM" into minutes since midnight.
func ParseClock(s string) (int, error) {
	hours, minutes, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidClock)
	}

	h, err := strconv.Atoi(hours)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%q: hour: %w", s, ErrInvalidClock)
	}

	m, err := strconv.Atoi(minutes)
	if err != nil || m < 0 || m > 59 || len(minutes) != 2 {
		return 0, fmt.Errorf("%q: minute: %w", s, ErrInvalidClock)
	}

	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
