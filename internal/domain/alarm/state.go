package alarm

// LifecycleState is the arm state of a schedule.
type LifecycleState string

const (
	// StateDisabled means no timer is armed for the schedule.
	StateDisabled LifecycleState = "disabled"
	// StateArmed means a timer is armed for Schedule.NextTrigger.
	StateArmed LifecycleState = "armed"
)

// SessionState is the state of a ringing session.
type SessionState string

const (
	// SessionIdle means the alarm is not ringing.
	SessionIdle SessionState = "idle"
	// SessionRinging means the alarm fired and has not been dismissed yet.
	SessionRinging SessionState = "ringing"
)

// DismissReason tells how a ringing session ended.
type DismissReason string

const (
	// DismissedManually is a dismissal requested by the user.
	DismissedManually DismissReason = "dismissed"
	// DismissedAutomatically is a dismissal forced by the auto-dismiss countdown.
	DismissedAutomatically DismissReason = "auto_dismissed"
)

// ArmStatus is the outcome of a lifecycle operation.
// None of these are failures; they tell the caller what happened.
type ArmStatus string

const (
	// StatusArmed means a timer was armed for the next occurrence.
	StatusArmed ArmStatus = "armed"
	// StatusDisabled means the schedule is disabled and no timer is armed.
	StatusDisabled ArmStatus = "disabled"
	// StatusNoOccurrence means the schedule is enabled but cannot produce an
	// occurrence (no active days or a non-positive interval).
	StatusNoOccurrence ArmStatus = "no_occurrence"
	// StatusPermissionDenied means the timer gateway refused to arm; the
	// schedule stays enabled without a concrete timer.
	StatusPermissionDenied ArmStatus = "permission_denied"
	// StatusStaleFire means a fire event arrived for a disabled or removed schedule and was ignored.
	StatusStaleFire ArmStatus = "stale_fire"
	// StatusDeleted means the schedule was cancelled and removed.
	StatusDeleted ArmStatus = "deleted"
)

// Result is the outcome of a lifecycle operation together with the schedule as persisted afterwards.
type Result struct {
	// Schedule is a copy of the stored schedule; nil after a delete or a stale fire for a removed id.
	Schedule *Schedule
	// Status tells what the operation did.
	Status ArmStatus
}

// CanArm reports whether the outcome leaves a timer armed.
func (r *Result) CanArm() bool {
	return r != nil && r.Status == StatusArmed
}
