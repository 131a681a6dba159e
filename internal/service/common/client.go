//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/oshokin/interval-alarm/internal/config"
	pb "github.com/oshokin/interval-alarm/internal/pb/v1"
)

// Client wraps the interval alarm gRPC client with call timeouts and the actor header.
type Client struct {
	// conn is the underlying gRPC connection to the daemon.
	conn *grpc.ClientConn
	// api is the typed service client.
	api pb.IntervalAlarmServiceClient

	// callTimeout is the default timeout for individual unary calls.
	callTimeout time.Duration
	// actor is sent with every call when set.
	actor *Actor
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// WithActor sends actor with every call.
func WithActor(actor *Actor) Option {
	return func(c *Client) {
		c.actor = actor
	}
}

// errAddressRequired is returned when a required address value is missing.
var errAddressRequired = errors.New("address must be provided")

// Dial establishes a gRPC connection to the daemon.
// Note: this uses insecure transport credentials; the daemon listens on
// loopback by default.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	// Use the non-context NewClient API recommended by grpc-go
	// (DialContext is deprecated as of grpc-go v1.60+).
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial interval alarm daemon: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewIntervalAlarmServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// List returns every schedule.
func (c *Client) List(ctx context.Context) ([]*pb.Schedule, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.ListSchedules(callCtx, new(pb.ListSchedulesRequest))
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}

	return resp.GetSchedules(), nil
}

// Get returns one schedule.
func (c *Client) Get(ctx context.Context, id int64) (*pb.ScheduleResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.GetSchedule(callCtx, &pb.GetScheduleRequest{Id: id})
	if err != nil {
		return nil, fmt.Errorf("get schedule %d: %w", id, err)
	}

	return resp, nil
}

// Save creates (zero ID) or replaces a schedule.
func (c *Client) Save(ctx context.Context, schedule *pb.Schedule) (*pb.ScheduleResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.SaveSchedule(callCtx, &pb.SaveScheduleRequest{Schedule: schedule})
	if err != nil {
		return nil, fmt.Errorf("save schedule: %w", err)
	}

	return resp, nil
}

// SetEnabled flips the enabled switch of a schedule.
func (c *Client) SetEnabled(ctx context.Context, id int64, enabled bool) (*pb.ScheduleResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.SetEnabled(callCtx, &pb.SetEnabledRequest{Id: id, Enabled: enabled})
	if err != nil {
		return nil, fmt.Errorf("set enabled of schedule %d: %w", id, err)
	}

	return resp, nil
}

// Delete removes a schedule.
func (c *Client) Delete(ctx context.Context, id int64) (string, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.DeleteSchedule(callCtx, &pb.DeleteScheduleRequest{Id: id})
	if err != nil {
		return "", fmt.Errorf("delete schedule %d: %w", id, err)
	}

	return resp.GetStatus(), nil
}

// Dismiss ends the ringing session of a schedule.
func (c *Client) Dismiss(ctx context.Context, id int64) (bool, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.Dismiss(callCtx, &pb.DismissRequest{Id: id})
	if err != nil {
		return false, fmt.Errorf("dismiss schedule %d: %w", id, err)
	}

	return resp.GetDismissed(), nil
}

// Watch opens the event stream. It has no call timeout and ends with ctx.
//
//nolint:ireturn // Generated streams are only exposed as interfaces.
func (c *Client) Watch(ctx context.Context) (pb.IntervalAlarmService_WatchClient, error) {
	stream, err := c.api.Watch(withActor(ctx, c.actor), new(pb.WatchRequest))
	if err != nil {
		return nil, fmt.Errorf("watch events: %w", err)
	}

	return stream, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline. The actor travels
// in the outgoing metadata.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = withActor(ctx, c.actor)

	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
