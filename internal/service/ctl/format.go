package ctl

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	pb "github.com/oshokin/interval-alarm/internal/pb/v1"
)

// writeSchedules prints schedules as an aligned table.
func writeSchedules(w io.Writer, schedules []*pb.Schedule, now time.Time) error {
	table := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(table, "ID\tLABEL\tWINDOW\tEVERY\tDAYS\tSTATE\tNEXT\tAUTO-DISMISS")

	for _, s := range schedules {
		_, _ = fmt.Fprintf(table, "%d\t%s\t%s-%s\t%dm\t%s\t%s\t%s\t%s\n",
			s.GetId(),
			orDash(s.Label),
			s.Start,
			s.End,
			s.IntervalMinutes,
			formatDays(s.Days),
			formatState(s),
			formatNext(s, now),
			formatAutoDismiss(s),
		)
	}

	if err := table.Flush(); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	return nil
}

// writeResult prints the outcome of a change.
func writeResult(w io.Writer, resp *pb.ScheduleResponse, now time.Time) {
	if resp.Schedule == nil {
		_, _ = fmt.Fprintln(w, resp.Status)
		return
	}

	_, _ = fmt.Fprintf(w, "#%d %s: %s", resp.GetSchedule().GetId(), orDash(resp.Schedule.Label), resp.Status)

	if resp.Schedule.NextTrigger != nil {
		_, _ = fmt.Fprintf(w, ", next %s", formatNext(resp.Schedule, now))
	}

	_, _ = fmt.Fprintln(w)
}

// writeEvent prints one watch event.
func writeEvent(w io.Writer, event *pb.Event) {
	at := "-"
	if event.At != nil {
		at = event.At.AsTime().Local().Format(time.RFC3339)
	}

	_, _ = fmt.Fprintf(w, "%s %-17s #%d", at, event.Type, event.GetScheduleId())

	if event.NextTrigger != nil {
		_, _ = fmt.Fprintf(w, " next %s", event.NextTrigger.AsTime().Local().Format(time.RFC3339))
	}

	_, _ = fmt.Fprintln(w)
}

func formatDays(days []string) string {
	switch len(days) {
	case 0:
		return "none"
	case 7:
		return "every day"
	default:
		return strings.Join(days, ",")
	}
}

func formatState(s *pb.Schedule) string {
	state := s.State
	if s.Enabled && s.NextTrigger == nil {
		state = "enabled, not armed"
	}

	if s.Ringing {
		state += " (ringing)"
	}

	return state
}

// formatNext renders the next trigger in local time with a relative hint, e.g. "09:30 Mon (20 minutes from now)".
func formatNext(s *pb.Schedule, now time.Time) string {
	if s.NextTrigger == nil {
		return "-"
	}

	next := s.NextTrigger.AsTime().Local()

	return fmt.Sprintf("%s (%s)", next.Format("15:04 Mon Jan 2"), humanize.RelTime(next, now, "ago", "from now"))
}

func formatAutoDismiss(s *pb.Schedule) string {
	if s.AutoDismiss == nil {
		return "off"
	}

	return s.AutoDismiss.AsDuration().String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
