package integration

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/oshokin/interval-alarm/internal/clock"
	"github.com/oshokin/interval-alarm/internal/config"
	pb "github.com/oshokin/interval-alarm/internal/pb/v1"
	repository "github.com/oshokin/interval-alarm/internal/repository/schedule"
	"github.com/oshokin/interval-alarm/internal/service/common"
	"github.com/oshokin/interval-alarm/internal/service/daemon"
)

// startDaemon runs the daemon on a free loopback port with the given clock and storage.
// Returns the bound address and a stop function that waits for shutdown.
func startDaemon(t *testing.T, clk clock.Clock, storage config.Storage) (addr string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")

	require.NoError(
		t,
		config.Save(cfgPath, &config.Config{
			ServerAddress: "127.0.0.1:0",
			Timeout:       5 * time.Second,
			LogLevel:      "warn",
			Storage:       storage,
			SkipSeed:      true,
		}),
	)

	ready := make(chan net.Addr, 1)
	done := make(chan error, 1)

	go func() {
		done <- daemon.Run(ctx, &daemon.Options{
			ConfigPath:    cfgPath,
			AllowMultiple: true,
			Clock:         clk,
			Ready:         func(a net.Addr) { ready <- a },
		})
	}()

	select {
	case a := <-ready:
		addr = a.String()
	case err := <-done:
		cancel()
		t.Fatalf("daemon exited before listening: %v", err)
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatal("daemon did not start listening")
	}

	return addr, func() {
		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Error("daemon did not stop")
		}
	}
}

// collect forwards Watch events to a channel until the stream ends.
func collect(stream pb.IntervalAlarmService_WatchClient) <-chan *pb.Event {
	out := make(chan *pb.Event, 64)

	go func() {
		defer close(out)

		for {
			event, err := stream.Recv()
			if err != nil {
				return
			}

			out <- event
		}
	}()

	return out
}

// waitEvent returns the first event of the given type for id, skipping others.
func waitEvent(t *testing.T, events <-chan *pb.Event, typ string, id int64) *pb.Event {
	t.Helper()

	timeout := time.After(5 * time.Second)

	for {
		select {
		case event, ok := <-events:
			require.True(t, ok, "event stream ended while waiting for %s", typ)

			if event.Type == typ && event.GetScheduleId() == id {
				return event
			}
		case <-timeout:
			t.Fatalf("no %s event for schedule %d", typ, id)

			return nil
		}
	}
}

// TestDaemon_Lifecycle drives a schedule through add, fire, dismiss, re-arm and delete over gRPC.
func TestDaemon_Lifecycle(t *testing.T) {
	t.Parallel()

	// Monday 08:50, ten minutes before the window opens.
	start := time.Date(2026, time.October, 19, 8, 50, 0, 0, time.Local)
	clk := clock.NewFake(start)

	addr, stop := startDaemon(t, clk, config.Storage{
		Driver:      repository.DriverSQLite,
		Path:        filepath.Join(t.TempDir(), "schedules.db"),
		BusyTimeout: time.Second,
	})
	defer stop()

	ctx := context.Background()

	client, err := common.Dial(ctx, addr,
		common.WithCallTimeout(3*time.Second),
		common.WithActor(&common.Actor{Hostname: "test-host", Username: "tester"}))
	require.NoError(t, err)

	defer func() { _ = client.Close() }()

	schedules, err := client.List(ctx)
	require.NoError(t, err)
	require.Empty(t, schedules)

	watchCtx, cancelWatch := context.WithCancel(ctx)
	defer cancelWatch()

	stream, err := client.Watch(watchCtx)
	require.NoError(t, err)

	events := collect(stream)

	created, err := client.Save(ctx, &pb.Schedule{
		Label:           "stretch",
		Start:           "09:00",
		End:             "10:00",
		IntervalMinutes: 15,
		Days:            []string{"mon", "tue", "wed", "thu", "fri"},
		Enabled:         true,
	})
	require.NoError(t, err)
	require.Equal(t, "armed", created.Status)

	id := created.GetSchedule().GetId()
	require.Positive(t, id)
	require.True(t, start.Add(10*time.Minute).Equal(created.Schedule.NextTrigger.AsTime()))

	// The stream subscribes asynchronously; re-enable until an armed event shows it is live.
	require.Eventually(t, func() bool {
		if _, err := client.SetEnabled(ctx, id, true); err != nil {
			return false
		}

		select {
		case event := <-events:
			return event.Type == "armed" && event.GetScheduleId() == id
		case <-time.After(100 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)

	clk.Advance(10 * time.Minute)

	ringing := waitEvent(t, events, "ringing", id)
	require.Equal(t, id, ringing.GetScheduleId())

	// The next occurrence is armed strictly after the one that fired.
	require.Eventually(t, func() bool {
		shown, err := client.Get(ctx, id)
		if err != nil {
			return false
		}

		return shown.Schedule.NextTrigger != nil &&
			start.Add(25*time.Minute).Equal(shown.Schedule.NextTrigger.AsTime())
	}, 5*time.Second, 10*time.Millisecond)

	shown, err := client.Get(ctx, id)
	require.NoError(t, err)
	require.True(t, shown.Schedule.Ringing)

	dismissed, err := client.Dismiss(ctx, id)
	require.NoError(t, err)
	require.True(t, dismissed)
	waitEvent(t, events, "dismissed", id)

	dismissed, err = client.Dismiss(ctx, id)
	require.NoError(t, err)
	require.False(t, dismissed)

	disabled, err := client.SetEnabled(ctx, id, false)
	require.NoError(t, err)
	require.Equal(t, "disabled", disabled.Status)
	require.Nil(t, disabled.Schedule.NextTrigger)

	status, err := client.Delete(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "deleted", status)

	_, err = client.Get(ctx, id)
	require.Error(t, err)

	schedules, err = client.List(ctx)
	require.NoError(t, err)
	require.Empty(t, schedules)
}

// TestDaemon_RecoversAfterRestart verifies enabled schedules are re-armed from storage on boot.
func TestDaemon_RecoversAfterRestart(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.Local)
	storage := config.Storage{
		Driver: repository.DriverFile,
		Path:   filepath.Join(t.TempDir(), "schedules.json"),
	}

	ctx := context.Background()

	addr, stop := startDaemon(t, clock.NewFake(start), storage)

	client, err := common.Dial(ctx, addr, common.WithCallTimeout(3*time.Second))
	require.NoError(t, err)

	created, err := client.Save(ctx, &pb.Schedule{
		Start:           "08:00",
		End:             "20:00",
		IntervalMinutes: 60,
		Days:            []string{"mon"},
		Enabled:         true,
	})
	require.NoError(t, err)
	require.Equal(t, "armed", created.Status)

	_ = client.Close()

	stop()

	// Time moved on while the daemon was down.
	addr, stop = startDaemon(t, clock.NewFake(start.Add(90*time.Minute)), storage)
	defer stop()

	client, err = common.Dial(ctx, addr, common.WithCallTimeout(3*time.Second))
	require.NoError(t, err)

	defer func() { _ = client.Close() }()

	shown, err := client.Get(ctx, created.GetSchedule().GetId())
	require.NoError(t, err)
	require.True(t, shown.Schedule.Enabled)
	require.NotNil(t, shown.Schedule.NextTrigger)
	require.True(t, start.Add(2*time.Hour).Equal(shown.Schedule.NextTrigger.AsTime()))
}

// TestDaemon_Health checks the gRPC health service reports the alarm service as serving.
func TestDaemon_Health(t *testing.T) {
	t.Parallel()

	addr, stop := startDaemon(t, clock.NewFake(time.Now()), config.Storage{
		Driver: repository.DriverFile,
		Path:   filepath.Join(t.TempDir(), "schedules.json"),
	})
	defer stop()

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{
		Service: pb.IntervalAlarmService_ServiceDesc.ServiceName,
	})
	require.NoError(t, err)
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}
