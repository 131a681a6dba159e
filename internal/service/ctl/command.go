package ctl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oshokin/interval-alarm/internal/config"
	"github.com/oshokin/interval-alarm/internal/logger"
	pb "github.com/oshokin/interval-alarm/internal/pb/v1"
	"github.com/oshokin/interval-alarm/internal/service/common"
)

// Options selects the daemon to talk to and where output goes.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string
	// ServerAddress overrides server address from config when specified.
	ServerAddress string
	// Out receives command output; nil means stdout.
	Out io.Writer
	// Now replaces the wall clock for relative times; nil means time.Now.
	Now func() time.Time
}

// errNothingToEdit is returned by Edit without any field to change.
var errNothingToEdit = errors.New("nothing to edit: pass at least one schedule flag")

// List prints every schedule.
func List(ctx context.Context, opts *Options) error {
	return withClient(ctx, opts, func(client *common.Client) error {
		schedules, err := client.List(ctx)
		if err != nil {
			return err
		}

		return writeSchedules(opts.out(), schedules, opts.now())
	})
}

// Show prints one schedule.
func Show(ctx context.Context, opts *Options, id int64) error {
	return withClient(ctx, opts, func(client *common.Client) error {
		resp, err := client.Get(ctx, id)
		if err != nil {
			return err
		}

		return writeSchedules(opts.out(), []*pb.Schedule{resp.Schedule}, opts.now())
	})
}

// Add creates a schedule from the defaults and the given fields.
func Add(ctx context.Context, opts *Options, edit *ScheduleEdit) error {
	schedule, err := NewSchedule(edit)
	if err != nil {
		return err
	}

	return withClient(ctx, opts, func(client *common.Client) error {
		resp, err := client.Save(ctx, schedule)
		if err != nil {
			return err
		}

		writeResult(opts.out(), resp, opts.now())

		return nil
	})
}

// Edit changes the given fields of a schedule.
func Edit(ctx context.Context, opts *Options, id int64, edit *ScheduleEdit) error {
	if edit == nil || *edit == (ScheduleEdit{}) {
		return errNothingToEdit
	}

	return withClient(ctx, opts, func(client *common.Client) error {
		current, err := client.Get(ctx, id)
		if err != nil {
			return err
		}

		schedule := current.Schedule
		if err = edit.ApplyTo(schedule); err != nil {
			return err
		}

		resp, err := client.Save(ctx, schedule)
		if err != nil {
			return err
		}

		writeResult(opts.out(), resp, opts.now())

		return nil
	})
}

// SetEnabled enables or disables a schedule.
func SetEnabled(ctx context.Context, opts *Options, id int64, enabled bool) error {
	return withClient(ctx, opts, func(client *common.Client) error {
		resp, err := client.SetEnabled(ctx, id, enabled)
		if err != nil {
			return err
		}

		writeResult(opts.out(), resp, opts.now())

		return nil
	})
}

// Delete removes a schedule.
func Delete(ctx context.Context, opts *Options, id int64) error {
	return withClient(ctx, opts, func(client *common.Client) error {
		status, err := client.Delete(ctx, id)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(opts.out(), "#%d: %s\n", id, status)

		return nil
	})
}

// Dismiss silences a ringing schedule.
func Dismiss(ctx context.Context, opts *Options, id int64) error {
	return withClient(ctx, opts, func(client *common.Client) error {
		dismissed, err := client.Dismiss(ctx, id)
		if err != nil {
			return err
		}

		if dismissed {
			_, _ = fmt.Fprintf(opts.out(), "#%d: dismissed\n", id)
		} else {
			_, _ = fmt.Fprintf(opts.out(), "#%d: not ringing\n", id)
		}

		return nil
	})
}

// Watch prints events until ctx is canceled or the daemon stops.
func Watch(ctx context.Context, opts *Options) error {
	return withClient(ctx, opts, func(client *common.Client) error {
		stream, err := client.Watch(ctx)
		if err != nil {
			return err
		}

		for {
			event, err := stream.Recv()
			if err != nil {
				if ctx.Err() != nil || errors.Is(err, io.EOF) {
					return nil
				}

				return fmt.Errorf("receive event: %w", err)
			}

			writeEvent(opts.out(), event)
		}
	})
}

// withClient connects to the daemon, runs fn and closes the connection.
func withClient(ctx context.Context, opts *Options, fn func(client *common.Client) error) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "intervalctl")

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	// Use server address from options if provided, otherwise use config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	clientOptions := []common.Option{common.WithCallTimeout(cfg.Timeout)}

	// Identify current user and hostname for the daemon's audit log.
	if actor, actorErr := common.DetectActor(); actorErr == nil {
		clientOptions = append(clientOptions, common.WithActor(actor))
	} else {
		logger.DebugKV(ctx, "Unable to detect actor", "error", actorErr)
	}

	client, err := common.Dial(ctx, serverAddress, clientOptions...)
	if err != nil {
		return err
	}

	// Close connection on function exit.
	defer func() {
		_ = client.Close()
	}()

	logger.DebugKV(ctx, "Connected to daemon", "server_address", serverAddress)

	return fn(client)
}

func (o *Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}

	return o.Out
}

func (o *Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}

	return o.Now()
}
