package daemon

import (
	"context"
	"fmt"

	"github.com/oshokin/interval-alarm/internal/clock"
	domain "github.com/oshokin/interval-alarm/internal/domain/alarm"
	"github.com/oshokin/interval-alarm/internal/events"
	"github.com/oshokin/interval-alarm/internal/gateway/timer"
	"github.com/oshokin/interval-alarm/internal/logger"
	repository "github.com/oshokin/interval-alarm/internal/repository/schedule"
	"github.com/oshokin/interval-alarm/internal/service/lifecycle"
	"github.com/oshokin/interval-alarm/internal/service/session"
)

// service wires the lifecycle, the ringing sessions and the event bus
// behind the transport's Service interface.
type service struct {
	// bus carries change notifications to Watch streams.
	bus *events.Bus
	// gateway holds the armed timers.
	gateway *timer.Gateway
	// lifecycle arms and disarms schedules.
	lifecycle *lifecycle.Lifecycle
	// runtime tracks ringing sessions.
	runtime *session.Runtime
}

// newService assembles the components around repo. Fire events are handled
// with ctx, so it should live as long as the daemon.
func newService(ctx context.Context, repo repository.Repository, clk clock.Clock, presenter session.Presenter) *service {
	s := &service{
		bus: events.NewBus(ctx),
	}

	fireCtx := logger.WithName(ctx, "fire")

	s.gateway = timer.New(clk, func(id int64) {
		s.runtime.OnFire(fireCtx, id)
	})
	s.lifecycle = lifecycle.New(repo, s.gateway, clk, s.bus)
	s.runtime = session.New(s.lifecycle, presenter, clk, s.bus)

	return s
}

// close silences sessions, cancels timers and ends Watch streams.
func (s *service) close(ctx context.Context) {
	s.runtime.Close(ctx)
	s.gateway.Close()

	if err := s.bus.Close(); err != nil {
		logger.WarnKV(ctx, "Failed to close event bus", "error", err)
	}
}

// seed creates the default schedule when storage is empty.
func (s *service) seed(ctx context.Context) error {
	schedules, err := s.lifecycle.List(ctx)
	if err != nil {
		return err
	}

	if len(schedules) > 0 {
		return nil
	}

	result, err := s.lifecycle.Edit(ctx, domain.DefaultSchedule())
	if err != nil {
		return fmt.Errorf("create default schedule: %w", err)
	}

	logger.InfoKV(ctx, "Default schedule created", "schedule", result.Schedule.String())

	return nil
}

// List returns every schedule.
func (s *service) List(ctx context.Context) ([]*domain.Schedule, error) {
	return s.lifecycle.List(ctx)
}

// Get returns one schedule.
func (s *service) Get(ctx context.Context, id int64) (*domain.Schedule, error) {
	return s.lifecycle.Get(ctx, id)
}

// Save creates or edits a schedule.
func (s *service) Save(ctx context.Context, edit *domain.Schedule) (*domain.Result, error) {
	return s.lifecycle.Edit(ctx, edit)
}

// SetEnabled flips the enabled switch.
func (s *service) SetEnabled(ctx context.Context, id int64, enabled bool) (*domain.Result, error) {
	return s.lifecycle.SetEnabled(ctx, id, enabled)
}

// Delete removes a schedule and silences it if it rings.
func (s *service) Delete(ctx context.Context, id int64) (*domain.Result, error) {
	result, err := s.lifecycle.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.runtime.Forget(ctx, id)

	return result, nil
}

// Dismiss ends a ringing session.
func (s *service) Dismiss(ctx context.Context, id int64) bool {
	return s.runtime.Dismiss(ctx, id)
}

// IsRinging reports whether the schedule rings.
func (s *service) IsRinging(id int64) bool {
	return s.runtime.State(id) == domain.SessionRinging
}

// Subscribe opens an event subscription.
func (s *service) Subscribe(ctx context.Context) (<-chan events.Event, error) {
	return s.bus.Subscribe(ctx)
}
