package ctl

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/durationpb"

	api "github.com/oshokin/interval-alarm/internal/api/grpc/alarm"
	domain "github.com/oshokin/interval-alarm/internal/domain/alarm"
	pb "github.com/oshokin/interval-alarm/internal/pb/v1"
)

// ScheduleEdit holds the fields given on the command line. Nil fields are left as they are.
type ScheduleEdit struct {
	// Label replaces the label.
	Label *string
	// Start replaces the window start ("HH:MM").
	Start *string
	// End replaces the window end ("HH:MM").
	End *string
	// Interval replaces the interval in minutes.
	Interval *int32
	// Days replaces the active days, e.g. "mon,wed,fri", "weekdays" or "all".
	Days *string
	// Enabled replaces the enabled switch.
	Enabled *bool
	// AutoDismiss replaces the auto-dismiss duration; zero turns it off.
	AutoDismiss *time.Duration
}

// NewSchedule returns the wire form of the default schedule with edit applied.
func NewSchedule(edit *ScheduleEdit) (*pb.Schedule, error) {
	schedule := api.ToProtoSchedule(domain.DefaultSchedule(), false)
	schedule.State = ""

	if err := edit.ApplyTo(schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

// ApplyTo overwrites the fields of schedule that the edit sets.
func (e *ScheduleEdit) ApplyTo(schedule *pb.Schedule) error {
	if e == nil {
		return nil
	}

	if e.Label != nil {
		schedule.Label = *e.Label
	}

	if e.Start != nil {
		if _, err := domain.ParseClock(*e.Start); err != nil {
			return fmt.Errorf("start: %w", err)
		}

		schedule.Start = *e.Start
	}

	if e.End != nil {
		if _, err := domain.ParseClock(*e.End); err != nil {
			return fmt.Errorf("end: %w", err)
		}

		schedule.End = *e.End
	}

	if e.Interval != nil {
		schedule.IntervalMinutes = *e.Interval
	}

	if e.Days != nil {
		days, err := domain.ParseWeekdays(*e.Days)
		if err != nil {
			return fmt.Errorf("days: %w", err)
		}

		schedule.Days = days.Names()
	}

	if e.Enabled != nil {
		schedule.Enabled = *e.Enabled
	}

	if e.AutoDismiss != nil {
		schedule.AutoDismiss = nil
		if *e.AutoDismiss > 0 {
			schedule.AutoDismiss = durationpb.New(*e.AutoDismiss)
		}
	}

	return nil
}
