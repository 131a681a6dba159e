package alarm

import "time"

// searchHorizonDays bounds the forward day scan. A non-empty day set always
// matches within seven days, so the bound only guarantees termination.
const searchHorizonDays = 8

// NextOccurrence returns the next instant strictly after now at which the
// schedule should fire, or false when the schedule cannot produce one
// (no active days or a non-positive interval).
//
// All arithmetic is done on the local wall clock of now: the window bounds
// are minutes since local midnight and seconds are truncated. The window end
// is inclusive. The result is a pure function of its inputs.
//
// Windows ending before they start are rejected by Validate; if one reaches
// this function it never steps inside a window and only the window start of
// the current or a following active day is returned.
func NextOccurrence(s *Schedule, now time.Time) (time.Time, bool) {
	if s == nil || s.ActiveDays.IsEmpty() || s.IntervalMinutes <= 0 {
		return time.Time{}, false
	}

	if s.ActiveDays.Has(now.Weekday()) {
		nowMinute := now.Hour()*60 + now.Minute()

		// Before today's window: now < start@00s exactly when the minute is earlier.
		if nowMinute < s.StartMinute {
			return atMinute(now, 0, s.StartMinute), true
		}

		// Inside today's window: start <= now < end.
		if nowMinute < s.EndMinute {
			elapsed := (nowMinute - s.StartMinute) / s.IntervalMinutes
			candidate := s.StartMinute + (elapsed+1)*s.IntervalMinutes

			if candidate <= s.EndMinute {
				return atMinute(now, 0, candidate), true
			}
		}
	}

	for offset := 1; offset <= searchHorizonDays; offset++ {
		day := atMinute(now, offset, 0)
		if s.ActiveDays.Has(day.Weekday()) {
			return atMinute(now, offset, s.StartMinute), true
		}
	}

	return time.Time{}, false
}

// atMinute returns the local wall-clock instant dayOffset days after the
// date of t at the given minute of the day, with seconds truncated.
func atMinute(t time.Time, dayOffset, minute int) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day+dayOffset, minute/60, minute%60, 0, 0, t.Location())
}
