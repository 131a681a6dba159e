package alarm

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestScheduleClone verifies that Clone copies fields and handles nil safely.
func TestScheduleClone(t *testing.T) {
	t.Parallel()
	require.Nil(t, (*Schedule)(nil).Clone())

	s := DefaultSchedule()
	s.NextTrigger = monday(9, 0, 0)

	c := s.Clone()
	require.Equal(t, s, c)
	require.NotSame(t, s, c)

	c.ActiveDays = NoDays
	require.Equal(t, EveryDay, s.ActiveDays)
}

// TestScheduleValidate accepts regular windows and rejects out-of-range and overnight ones.
func TestScheduleValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultSchedule().Validate())

	// No days and no interval are valid edits; they just never fire.
	s := DefaultSchedule()
	s.ActiveDays = NoDays
	s.IntervalMinutes = 0
	require.NoError(t, s.Validate())

	s = DefaultSchedule()
	s.StartMinute = -1
	require.ErrorIs(t, s.Validate(), ErrWindowOutOfRange)
	require.ErrorIs(t, s.Validate(), ErrInvalidSchedule)

	s = DefaultSchedule()
	s.EndMinute = MinutesPerDay
	require.ErrorIs(t, s.Validate(), ErrWindowOutOfRange)

	s = DefaultSchedule()
	s.StartMinute, s.EndMinute = 22*60, 6*60
	require.ErrorIs(t, s.Validate(), ErrOvernightWindow)

	s = DefaultSchedule()
	s.AutoDismiss = -time.Second
	require.ErrorIs(t, s.Validate(), ErrNegativeAutoDismiss)
}

// TestScheduleState derives Armed only for enabled schedules with a recorded trigger.
func TestScheduleState(t *testing.T) {
	t.Parallel()

	s := DefaultSchedule()
	require.Equal(t, StateDisabled, s.State())

	s.Enabled = true
	require.Equal(t, StateDisabled, s.State())

	s.NextTrigger = monday(9, 0, 0)
	require.Equal(t, StateArmed, s.State())

	s.Enabled = false
	require.Equal(t, StateDisabled, s.State())
}

// TestScheduleApplyEdit replaces definition fields but keeps identity and trigger.
func TestScheduleApplyEdit(t *testing.T) {
	t.Parallel()

	s := DefaultSchedule()
	s.ID = 7
	s.NextTrigger = monday(9, 0, 0)

	s.ApplyEdit(&Schedule{
		ID:              99,
		Label:           "Stretch",
		StartMinute:     600,
		EndMinute:       660,
		IntervalMinutes: 15,
		ActiveDays:      WorkDays,
		Enabled:         true,
		AutoDismiss:     30 * time.Second,
	})

	require.EqualValues(t, 7, s.ID)
	require.Equal(t, monday(9, 0, 0), s.NextTrigger)
	require.Equal(t, "Stretch", s.Label)
	require.Equal(t, WorkDays, s.ActiveDays)
	require.True(t, s.Enabled)
	require.Equal(t, 30*time.Second, s.AutoDismiss)
}

// TestParseFormatClock converts between HH:MM and minutes.
func TestParseFormatClock(t *testing.T) {
	t.Parallel()

	m, err := ParseClock("09:05")
	require.NoError(t, err)
	require.Equal(t, 545, m)
	require.Equal(t, "09:05", FormatClock(m))

	m, err = ParseClock("23:59")
	require.NoError(t, err)
	require.Equal(t, LastMinute, m)

	for _, bad := range []string{"", "9", "24:00", "12:60", "12:5", "ab:cd"} {
		_, err = ParseClock(bad)
		require.ErrorIs(t, err, ErrInvalidClock, bad)
	}
}

// TestScheduleJSON keeps weekdays as names and omits an empty trigger.
func TestScheduleJSON(t *testing.T) {
	t.Parallel()

	s := DefaultSchedule()
	s.ActiveDays = NewWeekdays(time.Monday, time.Friday)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	require.Contains(t, string(data), `"active_days":["mon","fri"]`)
	require.NotContains(t, string(data), "next_trigger")

	var decoded Schedule
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, s.ActiveDays, decoded.ActiveDays)
}
