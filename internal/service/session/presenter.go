package session

import (
	"context"

	"github.com/oshokin/interval-alarm/internal/logger"
)

// Presenter shows and hides a ringing alarm. Calls must not block and must not
// call back into the Runtime.
type Presenter interface {
	Present(ctx context.Context, id int64)
	StopPresenting(ctx context.Context, id int64)
}

// LogPresenter "rings" by writing to the log.
type LogPresenter struct{}

// Present logs the start of the ringing.
func (LogPresenter) Present(ctx context.Context, id int64) {
	logger.InfoKV(ctx, "Alarm is ringing", "schedule_id", id)
}

// StopPresenting logs the end of the ringing.
func (LogPresenter) StopPresenting(ctx context.Context, id int64) {
	logger.InfoKV(ctx, "Alarm stopped ringing", "schedule_id", id)
}
