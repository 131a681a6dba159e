package session

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/oshokin/interval-alarm/internal/clock"
	domain "github.com/oshokin/interval-alarm/internal/domain/alarm"
	"github.com/oshokin/interval-alarm/internal/events"
	"github.com/oshokin/interval-alarm/internal/logger"
)

// Lifecycle is the part of the schedule state machine a fire event needs.
type Lifecycle interface {
	Get(ctx context.Context, id int64) (*domain.Schedule, error)
	Fire(ctx context.Context, id int64) (*domain.Result, error)
}

// Notifier receives an event when a session starts or ends.
type Notifier interface {
	Publish(ctx context.Context, event events.Event)
}

// Session is a snapshot of one ringing schedule.
type Session struct {
	// ScheduleID is the ringing schedule.
	ScheduleID int64 `json:"schedule_id"`
	// StartedAt is when the fire event arrived.
	StartedAt time.Time `json:"started_at"`
	// AutoDismissAt is when the countdown ends the session; zero without a countdown.
	AutoDismissAt time.Time `json:"auto_dismiss_at,omitzero"`
}

// ringing is a live session.
type ringing struct {
	Session

	// token tells this session apart from earlier ones of the same schedule.
	token uint64
	// countdown is the pending auto-dismiss, nil without one.
	countdown clock.Timer
}

// Runtime tracks ringing sessions.
type Runtime struct {
	// lifecycle re-arms schedules and supplies their definitions.
	lifecycle Lifecycle
	// presenter shows the alarm.
	presenter Presenter
	// clock drives the countdowns.
	clock clock.Clock
	// notifier is optional.
	notifier Notifier

	// mu protects everything below.
	mu sync.Mutex
	// seq is the last issued session token.
	seq uint64
	// sessions holds the ringing session of every schedule that rings.
	sessions map[int64]*ringing
	// removed holds ids of deleted schedules. Storage never reuses an id.
	removed map[int64]struct{}
	// closed drops fire events after Close.
	closed bool

	// rearms tracks in-flight re-arm calls.
	rearms sync.WaitGroup
}

// New creates a runtime. A nil presenter logs instead; notifier may be nil.
func New(lifecycle Lifecycle, presenter Presenter, clk clock.Clock, notifier Notifier) *Runtime {
	if presenter == nil {
		presenter = LogPresenter{}
	}

	return &Runtime{
		lifecycle: lifecycle,
		presenter: presenter,
		clock:     clk,
		notifier:  notifier,
		sessions:  make(map[int64]*ringing),
		removed:   make(map[int64]struct{}),
	}
}

// OnFire handles a fire event: it re-arms the following occurrence in the
// background and starts ringing if the schedule is still enabled. A fire for a
// schedule that already rings replaces its session and restarts the countdown.
func (r *Runtime) OnFire(ctx context.Context, id int64) {
	ctx = logger.WithKV(ctx, "schedule_id", id)

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		logger.Warn(ctx, "Dropping fire event after shutdown")

		return
	}

	r.rearms.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.rearms.Done()

		if _, err := r.lifecycle.Fire(ctx, id); err != nil {
			logger.ErrorKV(ctx, "Failed to re-arm schedule", "error", err)
		}
	}()

	schedule, err := r.lifecycle.Get(ctx, id)
	if err != nil {
		logger.WarnKV(ctx, "Not ringing: schedule unavailable", "error", err)
		return
	}

	if !schedule.Enabled {
		logger.Info(ctx, "Not ringing: schedule is disabled")
		return
	}

	r.ring(ctx, schedule)
}

// ring starts a new session for schedule.
func (r *Runtime) ring(ctx context.Context, schedule *domain.Schedule) {
	now := r.clock.Now()

	r.mu.Lock()

	if r.closed {
		r.mu.Unlock()
		return
	}

	// The schedule was read before a concurrent delete completed.
	if _, gone := r.removed[schedule.ID]; gone {
		r.mu.Unlock()
		logger.Info(ctx, "Not ringing: schedule was deleted")

		return
	}

	if previous, ok := r.sessions[schedule.ID]; ok {
		stopCountdown(previous)
		logger.Info(ctx, "Replacing ringing session")
	}

	r.seq++
	current := &ringing{
		Session: Session{
			ScheduleID: schedule.ID,
			StartedAt:  now,
		},
		token: r.seq,
	}

	if schedule.AutoDismiss > 0 {
		token := current.token
		current.AutoDismissAt = now.Add(schedule.AutoDismiss)
		current.countdown = r.clock.AfterFunc(schedule.AutoDismiss, func() {
			r.end(ctx, schedule.ID, token, domain.DismissedAutomatically)
		})
	}

	r.sessions[schedule.ID] = current
	r.presenter.Present(ctx, schedule.ID)
	r.mu.Unlock()

	logger.InfoKV(ctx, "Session started", "auto_dismiss", schedule.AutoDismiss)

	r.publish(ctx, events.TypeRinging, schedule.ID, now)
}

// Dismiss ends the ringing session of id. It reports false if nothing was ringing.
func (r *Runtime) Dismiss(ctx context.Context, id int64) bool {
	return r.end(logger.WithKV(ctx, "schedule_id", id), id, 0, domain.DismissedManually)
}

// Forget ends the session of a deleted schedule and keeps any fire event of id
// still in flight from ringing it again.
func (r *Runtime) Forget(ctx context.Context, id int64) bool {
	r.mu.Lock()
	r.removed[id] = struct{}{}
	r.mu.Unlock()

	return r.end(logger.WithKV(ctx, "schedule_id", id), id, 0, domain.DismissedManually)
}

// end stops the session of id once. A non-zero token only matches the session
// it was issued for, so a countdown cannot end a newer session.
func (r *Runtime) end(ctx context.Context, id int64, token uint64, reason domain.DismissReason) bool {
	r.mu.Lock()

	current, ok := r.sessions[id]
	if !ok || (token != 0 && current.token != token) {
		r.mu.Unlock()
		return false
	}

	delete(r.sessions, id)
	stopCountdown(current)
	r.presenter.StopPresenting(ctx, id)
	r.mu.Unlock()

	logger.InfoKV(ctx, "Session ended", "reason", reason, "rang_for", r.clock.Now().Sub(current.StartedAt))

	r.publish(ctx, events.FromDismissReason(reason), id, r.clock.Now())

	return true
}

// Ringing returns the ringing sessions ordered by schedule id.
func (r *Runtime) Ringing() []Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]Session, 0, len(r.sessions))
	for _, current := range r.sessions {
		result = append(result, current.Session)
	}

	slices.SortFunc(result, func(a, b Session) int {
		return cmp.Compare(a.ScheduleID, b.ScheduleID)
	})

	return result
}

// State returns whether the schedule is ringing.
func (r *Runtime) State(id int64) domain.SessionState {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; ok {
		return domain.SessionRinging
	}

	return domain.SessionIdle
}

// Close silences every session, drops later fire events and waits for
// in-flight re-arms.
func (r *Runtime) Close(ctx context.Context) {
	r.mu.Lock()
	r.closed = true

	for id, current := range r.sessions {
		stopCountdown(current)
		r.presenter.StopPresenting(ctx, id)
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	r.rearms.Wait()
}

// publish sends a session event if a notifier is set.
func (r *Runtime) publish(ctx context.Context, eventType events.Type, id int64, at time.Time) {
	if r.notifier == nil {
		return
	}

	r.notifier.Publish(ctx, events.Event{
		Type:       eventType,
		ScheduleID: id,
		At:         at,
	})
}

func stopCountdown(current *ringing) {
	if current.countdown != nil {
		current.countdown.Stop()
	}
}
