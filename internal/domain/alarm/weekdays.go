package alarm

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Weekdays is a set of days of the week stored as a bitmask (bit i = time.Weekday(i)).
type Weekdays uint8

const (
	// NoDays is the empty set. A schedule with no days never fires.
	NoDays Weekdays = 0
	// EveryDay contains all seven days.
	EveryDay Weekdays = 1<<7 - 1
	// WorkDays contains Monday through Friday.
	WorkDays = EveryDay &^ (1<<time.Sunday | 1<<time.Saturday)
)

// dayNames are the short names used in settings, storage and the CLI.
//
//nolint:gochecknoglobals // Lookup table.
var dayNames = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// NewWeekdays builds a set from the given days.
func NewWeekdays(days ...time.Weekday) Weekdays {
	var w Weekdays
	for _, d := range days {
		w = w.With(d)
	}

	return w
}

// Has reports whether the day is in the set.
func (w Weekdays) Has(d time.Weekday) bool {
	if d < time.Sunday || d > time.Saturday {
		return false
	}

	return w&(1<<d) != 0
}

// With returns the set with the day added.
func (w Weekdays) With(d time.Weekday) Weekdays {
	if d < time.Sunday || d > time.Saturday {
		return w
	}

	return w | 1<<d
}

// Without returns the set with the day removed.
func (w Weekdays) Without(d time.Weekday) Weekdays {
	if d < time.Sunday || d > time.Saturday {
		return w
	}

	return w &^ (1 << d)
}

// IsEmpty reports whether no day is selected.
func (w Weekdays) IsEmpty() bool {
	return w&EveryDay == 0
}

// Days lists the selected days from Sunday to Saturday.
func (w Weekdays) Days() []time.Weekday {
	days := make([]time.Weekday, 0, len(dayNames))

	for d := time.Sunday; d <= time.Saturday; d++ {
		if w.Has(d) {
			days = append(days, d)
		}
	}

	return days
}

// Names returns the short names of the selected days.
func (w Weekdays) Names() []string {
	days := w.Days()
	names := make([]string, 0, len(days))

	for _, d := range days {
		names = append(names, dayNames[d])
	}

	return names
}

// String renders the set as a comma-separated list, "every day" or "none".
func (w Weekdays) String() string {
	switch {
	case w&EveryDay == EveryDay:
		return "every day"
	case w.IsEmpty():
		return "none"
	default:
		return strings.Join(w.Names(), ",")
	}
}

// ParseWeekday converts a day name ("mon", "Monday", "MONDAY") into time.Weekday.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) >= 3 {
		for i, name := range dayNames {
			if strings.HasPrefix(s, name) {
				return time.Weekday(i), nil
			}
		}
	}

	return time.Sunday, fmt.Errorf("unknown weekday %q: %w", s, ErrInvalidWeekday)
}

// ParseWeekdays parses a comma-separated list of days.
// The keywords "all"/"every" and "weekdays"/"workdays" are accepted too; an
// empty string yields the empty set.
func ParseWeekdays(s string) (Weekdays, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch s {
	case "":
		return NoDays, nil
	case "all", "every", "daily":
		return EveryDay, nil
	case "weekdays", "workdays":
		return WorkDays, nil
	}

	var w Weekdays

	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}

		d, err := ParseWeekday(part)
		if err != nil {
			return NoDays, err
		}

		w = w.With(d)
	}

	return w, nil
}

// WeekdaysFromNames builds a set from a list of day names.
func WeekdaysFromNames(names []string) (Weekdays, error) {
	var w Weekdays

	for _, name := range names {
		d, err := ParseWeekday(name)
		if err != nil {
			return NoDays, err
		}

		w = w.With(d)
	}

	return w, nil
}

// MarshalJSON encodes the set as a list of day names.
func (w Weekdays) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.Names())
}

// UnmarshalJSON decodes a list of day names.
func (w *Weekdays) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return fmt.Errorf("decode weekdays: %w", err)
	}

	parsed, err := WeekdaysFromNames(names)
	if err != nil {
		return err
	}

	*w = parsed

	return nil
}
