package alarm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// monday is 2026-10-19, a Monday.
func monday(hour, minute, second int) time.Time {
	return time.Date(2026, time.October, 19, hour, minute, second, 0, time.UTC)
}

func workHours(days Weekdays) *Schedule {
	return &Schedule{
		ID:              1,
		StartMinute:     9 * 60,
		EndMinute:       17 * 60,
		IntervalMinutes: 30,
		ActiveDays:      days,
		Enabled:         true,
	}
}

// TestNextOccurrence_WithinWindow steps to the next interval boundary inside today's window.
func TestNextOccurrence_WithinWindow(t *testing.T) {
	t.Parallel()

	now := monday(9, 10, 0)
	s := workHours(NewWeekdays(now.Weekday()))

	next, ok := NextOccurrence(s, now)
	require.True(t, ok)
	require.Equal(t, monday(9, 30, 0), next)

	// Seconds are ignored when counting elapsed intervals.
	next, ok = NextOccurrence(s, monday(9, 30, 30))
	require.True(t, ok)
	require.Equal(t, monday(10, 0, 0), next)
}

// TestNextOccurrence_BeforeWindow returns today's window start.
func TestNextOccurrence_BeforeWindow(t *testing.T) {
	t.Parallel()

	s := workHours(EveryDay)

	next, ok := NextOccurrence(s, monday(7, 45, 12))
	require.True(t, ok)
	require.Equal(t, monday(9, 0, 0), next)
}

// TestNextOccurrence_AtWindowStart never repeats the instant it is called at.
func TestNextOccurrence_AtWindowStart(t *testing.T) {
	t.Parallel()

	s := workHours(EveryDay)

	next, ok := NextOccurrence(s, monday(9, 0, 0))
	require.True(t, ok)
	require.Equal(t, monday(9, 30, 0), next)
}

// TestNextOccurrence_WindowEndInclusive covers the inclusive end and the roll-over exactly at the end.
func TestNextOccurrence_WindowEndInclusive(t *testing.T) {
	t.Parallel()

	now := monday(16, 30, 0)
	s := workHours(NewWeekdays(now.Weekday()))

	next, ok := NextOccurrence(s, now)
	require.True(t, ok)
	require.Equal(t, monday(17, 0, 0), next)

	// Exactly at the end the window is exhausted; only Monday is active, so a week later.
	next, ok = NextOccurrence(s, monday(17, 0, 0))
	require.True(t, ok)
	require.Equal(t, monday(9, 0, 0).AddDate(0, 0, 7), next)
}

// TestNextOccurrence_CandidatePastEnd rolls over when the next step overshoots the window end.
func TestNextOccurrence_CandidatePastEnd(t *testing.T) {
	t.Parallel()

	s := workHours(EveryDay)
	s.EndMinute = 16*60 + 40

	next, ok := NextOccurrence(s, monday(16, 35, 0))
	require.True(t, ok)
	require.Equal(t, monday(9, 0, 0).AddDate(0, 0, 1), next)
}

// TestNextOccurrence_DayRollover finds the first following active day.
func TestNextOccurrence_DayRollover(t *testing.T) {
	t.Parallel()

	s := workHours(NewWeekdays(time.Monday, time.Wednesday))

	next, ok := NextOccurrence(s, monday(18, 0, 0))
	require.True(t, ok)
	require.Equal(t, time.Wednesday, next.Weekday())
	require.Equal(t, monday(9, 0, 0).AddDate(0, 0, 2), next)
}

// TestNextOccurrence_TodayInactive skips today even inside the window.
func TestNextOccurrence_TodayInactive(t *testing.T) {
	t.Parallel()

	s := workHours(NewWeekdays(time.Tuesday))

	next, ok := NextOccurrence(s, monday(10, 0, 0))
	require.True(t, ok)
	require.Equal(t, monday(9, 0, 0).AddDate(0, 0, 1), next)
}

// TestNextOccurrence_NoOccurrence covers empty days and non-positive intervals.
func TestNextOccurrence_NoOccurrence(t *testing.T) {
	t.Parallel()

	now := monday(10, 0, 0)

	_, ok := NextOccurrence(workHours(NoDays), now)
	require.False(t, ok)

	s := workHours(EveryDay)
	s.IntervalMinutes = 0

	_, ok = NextOccurrence(s, now)
	require.False(t, ok)

	s.IntervalMinutes = -15

	_, ok = NextOccurrence(s, now)
	require.False(t, ok)

	_, ok = NextOccurrence(nil, now)
	require.False(t, ok)
}

// TestNextOccurrence_Deterministic returns the same instant for the same input.
func TestNextOccurrence_Deterministic(t *testing.T) {
	t.Parallel()

	s := workHours(WorkDays)
	now := monday(12, 7, 41)

	first, ok := NextOccurrence(s, now)
	require.True(t, ok)

	for range 10 {
		again, ok := NextOccurrence(s, now)
		require.True(t, ok)
		require.Equal(t, first, again)
	}
}

// TestNextOccurrence_AlwaysAfterNow walks a week and checks that every result is strictly later,
// including when now equals the previous result.
func TestNextOccurrence_AlwaysAfterNow(t *testing.T) {
	t.Parallel()

	schedules := []*Schedule{
		workHours(EveryDay),
		workHours(NewWeekdays(time.Friday)),
		{StartMinute: 0, EndMinute: LastMinute, IntervalMinutes: 7, ActiveDays: WorkDays},
		{StartMinute: 600, EndMinute: 600, IntervalMinutes: 1, ActiveDays: EveryDay},
	}

	start := monday(0, 0, 0)

	for _, s := range schedules {
		for now := start; now.Before(start.AddDate(0, 0, 8)); now = now.Add(13 * time.Minute) {
			next, ok := NextOccurrence(s, now)
			require.True(t, ok)
			require.True(t, next.After(now), "schedule %s at %s gave %s", s, now, next)

			// Re-arm from the fired instant.
			following, ok := NextOccurrence(s, next)
			require.True(t, ok)
			require.True(t, following.After(next))
		}
	}
}

// TestNextOccurrence_StepsAlignToWindowStart keeps every in-window result on the interval grid.
func TestNextOccurrence_StepsAlignToWindowStart(t *testing.T) {
	t.Parallel()

	s := &Schedule{StartMinute: 8*60 + 15, EndMinute: 20 * 60, IntervalMinutes: 45, ActiveDays: EveryDay}

	now := monday(8, 15, 0)
	for range 15 {
		next, ok := NextOccurrence(s, now)
		require.True(t, ok)

		minute := next.Hour()*60 + next.Minute()
		require.Zero(t, (minute-s.StartMinute)%s.IntervalMinutes)
		require.Zero(t, next.Second())

		now = next
	}
}

// TestNextOccurrence_OvernightWindow pins the behavior for windows that end before they start:
// only window starts are produced.
func TestNextOccurrence_OvernightWindow(t *testing.T) {
	t.Parallel()

	s := &Schedule{StartMinute: 22 * 60, EndMinute: 6 * 60, IntervalMinutes: 30, ActiveDays: EveryDay}

	next, ok := NextOccurrence(s, monday(3, 0, 0))
	require.True(t, ok)
	require.Equal(t, monday(22, 0, 0), next)

	next, ok = NextOccurrence(s, monday(23, 0, 0))
	require.True(t, ok)
	require.Equal(t, monday(22, 0, 0).AddDate(0, 0, 1), next)
}

// TestNextOccurrence_KeepsLocation returns instants in the location of now.
func TestNextOccurrence_KeepsLocation(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2026, time.October, 19, 9, 10, 0, 0, loc)

	next, ok := NextOccurrence(workHours(EveryDay), now)
	require.True(t, ok)
	require.Equal(t, loc, next.Location())
	require.Equal(t, 9, next.Hour())
	require.Equal(t, 30, next.Minute())
}
