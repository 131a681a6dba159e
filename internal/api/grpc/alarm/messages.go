package alarm

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	domain "github.com/oshokin/interval-alarm/internal/domain/alarm"
	"github.com/oshokin/interval-alarm/internal/events"
	pb "github.com/oshokin/interval-alarm/internal/pb/v1"
)

// ToProtoSchedule converts a domain schedule.
func ToProtoSchedule(schedule *domain.Schedule, ringing bool) *pb.Schedule {
	if schedule == nil {
		return nil
	}

	result := &pb.Schedule{
		Id:              schedule.ID,
		Label:           schedule.Label,
		Start:           domain.FormatClock(schedule.StartMinute),
		End:             domain.FormatClock(schedule.EndMinute),
		IntervalMinutes: int32(schedule.IntervalMinutes), //nolint:gosec // Intervals enter through the int32 wire field.
		Days:            schedule.ActiveDays.Names(),
		Enabled:         schedule.Enabled,
		NextTrigger:     toTimestamp(schedule.NextTrigger),
		State:           string(schedule.State()),
		Ringing:         ringing,
	}

	if schedule.AutoDismiss > 0 {
		result.AutoDismiss = durationpb.New(schedule.AutoDismiss)
	}

	return result
}

// FromProtoSchedule converts a wire schedule to the domain edit it describes.
// Read-only fields are ignored.
func FromProtoSchedule(schedule *pb.Schedule) (*domain.Schedule, error) {
	if schedule == nil {
		return nil, fmt.Errorf("%w: schedule is required", domain.ErrInvalidSchedule)
	}

	start, err := domain.ParseClock(schedule.GetStart())
	if err != nil {
		return nil, fmt.Errorf("%w: start: %w", domain.ErrInvalidSchedule, err)
	}

	end, err := domain.ParseClock(schedule.GetEnd())
	if err != nil {
		return nil, fmt.Errorf("%w: end: %w", domain.ErrInvalidSchedule, err)
	}

	days, err := domain.WeekdaysFromNames(schedule.GetDays())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSchedule, err)
	}

	var autoDismiss time.Duration

	if wire := schedule.GetAutoDismiss(); wire != nil {
		if err = wire.CheckValid(); err != nil {
			return nil, fmt.Errorf("%w: auto-dismiss: %w", domain.ErrInvalidSchedule, err)
		}

		autoDismiss = wire.AsDuration()
	}

	return &domain.Schedule{
		ID:              schedule.GetId(),
		Label:           schedule.GetLabel(),
		StartMinute:     start,
		EndMinute:       end,
		IntervalMinutes: int(schedule.GetIntervalMinutes()),
		ActiveDays:      days,
		Enabled:         schedule.GetEnabled(),
		AutoDismiss:     autoDismiss,
	}, nil
}

// ToProtoEvent converts a bus event.
func ToProtoEvent(event events.Event) *pb.Event {
	return &pb.Event{
		Type:        string(event.Type),
		ScheduleId:  event.ScheduleID,
		At:          toTimestamp(event.At),
		NextTrigger: toTimestamp(event.NextTrigger),
	}
}

// toTimestamp returns nil for the zero time.
func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}

	return timestamppb.New(t)
}
