package desktop

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/oshokin/interval-alarm/internal/logger"
)

// notificationTitle is shown as the heading of every notification.
const notificationTitle = "Interval alarm"

// ErrUnsupportedOS indicates the current OS has no known notification command.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// Presenter shows a desktop notification when an alarm starts ringing.
type Presenter struct {
	// goos selects the notification command, runtime.GOOS by default.
	goos string
	// start launches the command without waiting for it.
	start func(cmd *exec.Cmd) error
}

// NewPresenter returns a presenter for the current operating system.
func NewPresenter() *Presenter {
	return &Presenter{
		goos:  runtime.GOOS,
		start: startDetached,
	}
}

// Present starts the notification command. Failures are logged, the alarm still rings.
func (p *Presenter) Present(ctx context.Context, id int64) {
	body := fmt.Sprintf("Schedule #%d is ringing", id)

	name, args, err := notifyCommand(p.goos, notificationTitle, body)
	if err != nil {
		logger.WarnKV(ctx, "Desktop notification is not available", "schedule_id", id, "error", err)

		return
	}

	// The notification outlives the request that caused the ring.
	cmd := exec.CommandContext(context.WithoutCancel(ctx), name, args...)
	if err = p.start(cmd); err != nil {
		logger.WarnKV(ctx, "Failed to show desktop notification",
			"schedule_id", id,
			"command", name,
			"error", err)

		return
	}

	logger.InfoKV(ctx, "Alarm is ringing", "schedule_id", id, "command", name)
}

// StopPresenting logs the end of the ringing. Notifications close on their own.
func (*Presenter) StopPresenting(ctx context.Context, id int64) {
	logger.InfoKV(ctx, "Alarm stopped ringing", "schedule_id", id)
}

// notifyCommand picks a built-in notification tool:
// - Linux:   `notify-send`
// - macOS:   `osascript -e 'display notification ...'`
// - Windows: `msg * ...`.
func notifyCommand(goos, title, body string) (string, []string, error) {
	osName := strings.ToLower(goos)

	switch {
	case strings.Contains(osName, "linux"):
		return "notify-send", []string{"--urgency=critical", title, body}, nil
	case strings.Contains(osName, "darwin"):
		script := fmt.Sprintf("display notification %q with title %q sound name %q", body, title, "Glass")

		return "osascript", []string{"-e", script}, nil
	case strings.Contains(osName, "windows"):
		return "msg", []string{"*", title + ": " + body}, nil
	default:
		return "", nil, fmt.Errorf("%s: %w", goos, ErrUnsupportedOS)
	}
}

// startDetached starts cmd and reaps it in the background.
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}

	go func() {
		_ = cmd.Wait() //nolint:errcheck // Exit status of the notifier does not matter.
	}()

	return nil
}
