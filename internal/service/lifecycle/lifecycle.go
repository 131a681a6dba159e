package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oshokin/interval-alarm/internal/clock"
	domain "github.com/oshokin/interval-alarm/internal/domain/alarm"
	"github.com/oshokin/interval-alarm/internal/events"
	"github.com/oshokin/interval-alarm/internal/gateway/timer"
	"github.com/oshokin/interval-alarm/internal/logger"
	repository "github.com/oshokin/interval-alarm/internal/repository/schedule"
)

// Gateway arms and cancels one-shot timers keyed by schedule id.
// Both calls are idempotent and Arm overwrites a previous arming of the id.
type Gateway interface {
	Arm(ctx context.Context, id int64, at time.Time) error
	Cancel(ctx context.Context, id int64) error
}

// Notifier receives an event after every state change.
type Notifier interface {
	Publish(ctx context.Context, event events.Event)
}

// Lifecycle is the per-schedule arm/disarm state machine.
type Lifecycle struct {
	// repo is the source of truth for schedules; nothing is cached between calls.
	repo repository.Repository
	// gateway holds the concrete timers.
	gateway Gateway
	// clock supplies "now" for every recomputation.
	clock clock.Clock
	// notifier is optional.
	notifier Notifier
	// locks serializes operations per schedule id.
	locks keyedMutex
}

// New creates a lifecycle. notifier may be nil.
func New(repo repository.Repository, gateway Gateway, clk clock.Clock, notifier Notifier) *Lifecycle {
	return &Lifecycle{
		repo:     repo,
		gateway:  gateway,
		clock:    clk,
		notifier: notifier,
	}
}

// Get returns the stored schedule with its lifecycle state.
func (l *Lifecycle) Get(ctx context.Context, id int64) (*domain.Schedule, error) {
	schedule, err := l.repo.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load schedule %d: %w", id, err)
	}

	return schedule, nil
}

// List returns every stored schedule ordered by id.
func (l *Lifecycle) List(ctx context.Context) ([]*domain.Schedule, error) {
	schedules, err := l.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load schedules: %w", err)
	}

	return schedules, nil
}

// Enable switches the schedule on and arms its next occurrence.
func (l *Lifecycle) Enable(ctx context.Context, id int64) (*domain.Result, error) {
	return l.SetEnabled(ctx, id, true)
}

// Disable switches the schedule off and cancels its timer. Repeated calls are no-ops.
func (l *Lifecycle) Disable(ctx context.Context, id int64) (*domain.Result, error) {
	return l.SetEnabled(ctx, id, false)
}

// SetEnabled flips the enabled switch of a stored schedule and re-arms or disarms it.
func (l *Lifecycle) SetEnabled(ctx context.Context, id int64, enabled bool) (*domain.Result, error) {
	unlock := l.locks.lock(id)
	defer unlock()

	schedule, err := l.repo.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load schedule %d: %w", id, err)
	}

	schedule.Enabled = enabled

	return l.apply(ctx, schedule)
}

// Edit replaces the window, interval, days, label, auto-dismiss and enabled
// switch of a schedule, then re-arms or disarms it. A zero ID creates a new
// schedule with a storage-assigned id.
func (l *Lifecycle) Edit(ctx context.Context, edit *domain.Schedule) (*domain.Result, error) {
	if edit == nil {
		return nil, fmt.Errorf("%w: nothing to save", domain.ErrInvalidSchedule)
	}

	if err := edit.Validate(); err != nil {
		return nil, err
	}

	id := edit.ID
	if id == 0 {
		draft := edit.Clone()
		draft.NextTrigger = time.Time{}

		created, err := l.repo.Create(ctx, draft)
		if err != nil {
			return nil, fmt.Errorf("create schedule: %w", err)
		}

		logger.InfoKV(ctx, "Schedule created", "schedule_id", created.ID, "schedule", created.String())

		id = created.ID
	}

	unlock := l.locks.lock(id)
	defer unlock()

	schedule, err := l.repo.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load schedule %d: %w", id, err)
	}

	schedule.ApplyEdit(edit)

	return l.apply(ctx, schedule)
}

// Delete cancels the timer of a schedule and removes it from storage.
func (l *Lifecycle) Delete(ctx context.Context, id int64) (*domain.Result, error) {
	unlock := l.locks.lock(id)
	defer unlock()

	if err := l.gateway.Cancel(ctx, id); err != nil {
		return nil, fmt.Errorf("cancel timer of schedule %d: %w", id, err)
	}

	if _, err := l.repo.Load(ctx, id); err != nil {
		return nil, fmt.Errorf("load schedule %d: %w", id, err)
	}

	if err := l.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete schedule %d: %w", id, err)
	}

	result := &domain.Result{Status: domain.StatusDeleted}
	l.report(ctx, id, result)

	return result, nil
}

// Fire arms the occurrence following a delivered fire event. Fires for
// disabled or removed schedules report StatusStaleFire and change nothing.
func (l *Lifecycle) Fire(ctx context.Context, id int64) (*domain.Result, error) {
	unlock := l.locks.lock(id)
	defer unlock()

	schedule, err := l.repo.Load(ctx, id)

	switch {
	case errors.Is(err, repository.ErrNotFound):
		logger.InfoKV(ctx, "Ignoring fire of removed schedule", "schedule_id", id)

		return &domain.Result{Status: domain.StatusStaleFire}, nil
	case err != nil:
		return nil, fmt.Errorf("load schedule %d: %w", id, err)
	case !schedule.Enabled:
		logger.InfoKV(ctx, "Ignoring fire of disabled schedule", "schedule_id", id)

		return &domain.Result{Schedule: schedule, Status: domain.StatusStaleFire}, nil
	}

	return l.arm(ctx, schedule)
}

// Recover re-arms every enabled schedule and makes sure disabled ones hold
// no timer. It is meant to run once at start but is safe to repeat.
func (l *Lifecycle) Recover(ctx context.Context) ([]*domain.Result, error) {
	schedules, err := l.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load schedules: %w", err)
	}

	results := make([]*domain.Result, 0, len(schedules))

	var errs []error

	for _, stored := range schedules {
		result, recoverErr := l.recoverOne(ctx, stored.ID)
		if recoverErr != nil {
			errs = append(errs, recoverErr)
			continue
		}

		if result != nil {
			results = append(results, result)
		}
	}

	logger.InfoKV(ctx, "Schedules recovered", "count", len(results), "failed", len(errs))

	return results, errors.Join(errs...)
}

// recoverOne re-applies the stored state of one schedule.
func (l *Lifecycle) recoverOne(ctx context.Context, id int64) (*domain.Result, error) {
	unlock := l.locks.lock(id)
	defer unlock()

	schedule, err := l.repo.Load(ctx, id)

	switch {
	case errors.Is(err, repository.ErrNotFound):
		// Deleted while recovering.
		return nil, nil //nolint:nilnil // Nothing to report.
	case err != nil:
		return nil, fmt.Errorf("load schedule %d: %w", id, err)
	}

	return l.apply(ctx, schedule)
}

// apply arms an enabled schedule or disarms a disabled one. Callers hold the id lock.
func (l *Lifecycle) apply(ctx context.Context, schedule *domain.Schedule) (*domain.Result, error) {
	if schedule.Enabled {
		return l.arm(ctx, schedule)
	}

	return l.disarm(ctx, schedule)
}

// arm computes the next occurrence from the current time, stores it and hands
// it to the gateway. Storage is written before the gateway is touched, so a
// failed save leaves both the record and the timer as they were.
func (l *Lifecycle) arm(ctx context.Context, schedule *domain.Schedule) (*domain.Result, error) {
	next, ok := domain.NextOccurrence(schedule, l.clock.Now())
	if !ok {
		logger.WarnKV(ctx, "Schedule has no next occurrence",
			"schedule_id", schedule.ID,
			"schedule", schedule.String())

		return l.cancel(ctx, schedule, domain.StatusNoOccurrence)
	}

	if err := l.persist(ctx, schedule, next); err != nil {
		return nil, err
	}

	err := l.gateway.Arm(ctx, schedule.ID, next)
	if err == nil {
		return l.finish(ctx, schedule, domain.StatusArmed), nil
	}

	// The record now names a trigger no timer backs; clear it.
	if clearErr := l.persist(ctx, schedule, time.Time{}); clearErr != nil {
		return nil, errors.Join(fmt.Errorf("arm timer of schedule %d: %w", schedule.ID, err), clearErr)
	}

	if !errors.Is(err, timer.ErrPermissionDenied) {
		return nil, fmt.Errorf("arm timer of schedule %d: %w", schedule.ID, err)
	}

	logger.WarnKV(ctx, "Timer gateway refused to arm schedule",
		"schedule_id", schedule.ID,
		"next_trigger", next,
		"error", err)

	return l.finish(ctx, schedule, domain.StatusPermissionDenied), nil
}

// disarm clears the displayed trigger and cancels the timer.
func (l *Lifecycle) disarm(ctx context.Context, schedule *domain.Schedule) (*domain.Result, error) {
	return l.cancel(ctx, schedule, domain.StatusDisabled)
}

// cancel stores a cleared trigger, then cancels the timer.
func (l *Lifecycle) cancel(ctx context.Context, schedule *domain.Schedule, status domain.ArmStatus) (*domain.Result, error) {
	if err := l.persist(ctx, schedule, time.Time{}); err != nil {
		return nil, err
	}

	if err := l.gateway.Cancel(ctx, schedule.ID); err != nil {
		return nil, fmt.Errorf("cancel timer of schedule %d: %w", schedule.ID, err)
	}

	return l.finish(ctx, schedule, status), nil
}

// persist stores schedule with the given next trigger.
func (l *Lifecycle) persist(ctx context.Context, schedule *domain.Schedule, next time.Time) error {
	schedule.NextTrigger = next

	if err := l.repo.Save(ctx, schedule); err != nil {
		logger.Errorf(ctx, "Failed to persist schedule %d: %v", schedule.ID, err)

		return fmt.Errorf("persist schedule %d: %w", schedule.ID, err)
	}

	return nil
}

// finish reports the outcome of a committed change.
func (l *Lifecycle) finish(ctx context.Context, schedule *domain.Schedule, status domain.ArmStatus) *domain.Result {
	result := &domain.Result{
		Schedule: schedule.Clone(),
		Status:   status,
	}

	l.report(ctx, schedule.ID, result)

	return result
}

// report logs the outcome and publishes the matching event.
func (l *Lifecycle) report(ctx context.Context, id int64, result *domain.Result) {
	var next time.Time
	if result.Schedule != nil {
		next = result.Schedule.NextTrigger
	}

	logger.InfoKV(ctx, "Schedule updated", "schedule_id", id, "status", result.Status, "next_trigger", next)

	if l.notifier == nil {
		return
	}

	eventType, ok := events.FromStatus(result.Status)
	if !ok {
		return
	}

	l.notifier.Publish(ctx, events.Event{
		Type:        eventType,
		ScheduleID:  id,
		At:          l.clock.Now(),
		NextTrigger: next,
	})
}
