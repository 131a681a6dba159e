package desktop

import (
	"context"
	"errors"
	"os/exec"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNotifyCommand verifies the command chosen for each operating system.
func TestNotifyCommand(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"linux":   "notify-send",
		"darwin":  "osascript",
		"windows": "msg",
	}

	for goos, want := range cases {
		name, args, err := notifyCommand(goos, "Title", "Body")
		require.NoError(t, err, goos)
		require.Equal(t, want, name)
		require.NotEmpty(t, args)
	}

	_, _, err := notifyCommand("plan9", "Title", "Body")
	require.ErrorIs(t, err, ErrUnsupportedOS)
}

// TestNotifyCommand_QuotesAppleScript verifies the body cannot break out of the script string.
func TestNotifyCommand_QuotesAppleScript(t *testing.T) {
	t.Parallel()

	_, args, err := notifyCommand("darwin", "Title", `say "hi"`)
	require.NoError(t, err)
	require.Contains(t, args[1], `"say \"hi\""`)
}

// TestPresenter_Present verifies a command is started with the schedule id in the message.
func TestPresenter_Present(t *testing.T) {
	t.Parallel()

	var (
		mu      sync.Mutex
		started []*exec.Cmd
	)

	p := &Presenter{
		goos: "linux",
		start: func(cmd *exec.Cmd) error {
			mu.Lock()
			defer mu.Unlock()

			started = append(started, cmd)

			return nil
		},
	}

	p.Present(context.Background(), 7)
	p.StopPresenting(context.Background(), 7)

	mu.Lock()
	defer mu.Unlock()

	require.Len(t, started, 1)
	require.Contains(t, started[0].Args, "Schedule #7 is ringing")
}

// TestPresenter_PresentFailures verifies failures do not panic and start nothing more.
func TestPresenter_PresentFailures(t *testing.T) {
	t.Parallel()

	calls := 0

	unsupported := &Presenter{
		goos: "plan9",
		start: func(*exec.Cmd) error {
			calls++

			return nil
		},
	}
	unsupported.Present(context.Background(), 1)
	require.Zero(t, calls)

	failing := &Presenter{
		goos: "linux",
		start: func(*exec.Cmd) error {
			calls++

			return errors.New("not installed")
		},
	}
	failing.Present(context.Background(), 1)
	require.Equal(t, 1, calls)
}
