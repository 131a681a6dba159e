package events

import (
	"time"

	domain "github.com/oshokin/interval-alarm/internal/domain/alarm"
)

// Type names what happened to a schedule.
type Type string

const (
	// TypeArmed is published after a timer was armed for the next occurrence.
	TypeArmed Type = "armed"
	// TypeDisabled is published after a schedule was disarmed.
	TypeDisabled Type = "disabled"
	// TypeDeleted is published after a schedule was removed.
	TypeDeleted Type = "deleted"
	// TypeNoOccurrence is published when an enabled schedule cannot produce an occurrence.
	TypeNoOccurrence Type = "no_occurrence"
	// TypePermissionDenied is published when the timer gateway refused to arm.
	TypePermissionDenied Type = "permission_denied"
	// TypeRinging is published when a ringing session starts.
	TypeRinging Type = "ringing"
	// TypeDismissed is published when the user dismissed a ringing session.
	TypeDismissed Type = "dismissed"
	// TypeAutoDismissed is published when the countdown ended a ringing session.
	TypeAutoDismissed Type = "auto_dismissed"
)

// Event is a single change notification.
type Event struct {
	// Type tells what happened.
	Type Type `json:"type"`
	// ScheduleID is the affected schedule.
	ScheduleID int64 `json:"schedule_id"`
	// At is when it happened.
	At time.Time `json:"at"`
	// NextTrigger is the armed instant for TypeArmed events.
	NextTrigger time.Time `json:"next_trigger,omitzero"`
}

// FromStatus maps a lifecycle outcome to its event type.
// Stale fires produce no event.
func FromStatus(status domain.ArmStatus) (Type, bool) {
	switch status {
	case domain.StatusArmed:
		return TypeArmed, true
	case domain.StatusDisabled:
		return TypeDisabled, true
	case domain.StatusDeleted:
		return TypeDeleted, true
	case domain.StatusNoOccurrence:
		return TypeNoOccurrence, true
	case domain.StatusPermissionDenied:
		return TypePermissionDenied, true
	case domain.StatusStaleFire:
		return "", false
	default:
		return "", false
	}
}

// FromDismissReason maps the end of a ringing session to its event type.
func FromDismissReason(reason domain.DismissReason) Type {
	if reason == domain.DismissedAutomatically {
		return TypeAutoDismissed
	}

	return TypeDismissed
}
