package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	api "github.com/oshokin/interval-alarm/internal/api/grpc/alarm"
	"github.com/oshokin/interval-alarm/internal/clock"
	"github.com/oshokin/interval-alarm/internal/config"
	"github.com/oshokin/interval-alarm/internal/logger"
	pb "github.com/oshokin/interval-alarm/internal/pb/v1"
	repository "github.com/oshokin/interval-alarm/internal/repository/schedule"
	"github.com/oshokin/interval-alarm/internal/service/common"
	"github.com/oshokin/interval-alarm/internal/service/desktop"
	"github.com/oshokin/interval-alarm/internal/service/session"
)

// Options controls the interval-alarmd process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress overrides the listen address from the settings.
	ListenAddress string
	// StoragePath overrides the storage path from the settings.
	StoragePath string
	// AllowMultiple skips the single-instance check.
	AllowMultiple bool
	// Replace stops other running daemons instead of refusing to start.
	Replace bool
	// Clock replaces the wall clock; nil means real time.
	Clock clock.Clock
	// Presenter shows ringing alarms; nil follows the presentation setting.
	Presenter session.Presenter
	// Ready is called with the bound address once the server accepts connections.
	Ready func(addr net.Addr)
}

// shutdownTimeout bounds the graceful stop of the gRPC server.
const shutdownTimeout = 5 * time.Second

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run starts the daemon and blocks until ctx is canceled or the server stops.
//
//nolint:funlen // Startup is a linear sequence of steps.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "interval-alarmd")

	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if err = logger.Configure(settings.LogLevel); err != nil {
		return err
	}

	if !opts.AllowMultiple {
		if err = ensureSingleInstance(opts.Replace); err != nil {
			return err
		}
	}

	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	storage := settings.Storage.RepositoryOptions()
	if opts.StoragePath != "" {
		storage.Path = opts.StoragePath
	}

	repo, err := repository.Open(ctx, storage)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}

	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			logger.WarnKV(ctx, "Failed to close storage", "error", closeErr)
		}
	}()

	clk := opts.Clock
	if clk == nil {
		clk = clock.NewReal()
	}

	presenter := opts.Presenter
	if presenter == nil && settings.Presentation == config.PresentationDesktop {
		presenter = desktop.NewPresenter()
	}

	svc := newService(ctx, repo, clk, presenter)
	defer svc.close(context.WithoutCancel(ctx))

	if !settings.SkipSeed {
		if err = svc.seed(ctx); err != nil {
			return err
		}
	}

	// Boot recovery: every enabled schedule gets a timer again.
	if _, err = svc.lifecycle.Recover(ctx); err != nil {
		return fmt.Errorf("recover schedules: %w", err)
	}

	// Setup TCP listener for gRPC server.
	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(common.UnaryActorInterceptor(ctx)),
		grpc.ChainStreamInterceptor(common.StreamActorInterceptor(ctx)),
	)
	pb.RegisterIntervalAlarmServiceServer(grpcServer, api.NewServer(svc))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(pb.IntervalAlarmService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.InfoKV(ctx, "Interval alarm daemon listening",
		"listen_address", lis.Addr().String(),
		"storage_driver", storage.Driver,
		"storage_path", storage.Path)

	if opts.Ready != nil {
		opts.Ready(lis.Addr())
	}

	// Done channel is closed after the server stops to ensure we block
	// until it fully stops before returning.
	done := make(chan struct{})

	go func() {
		defer close(done)

		<-ctx.Done()
		logger.Info(ctx, "Shutting down gRPC server")

		healthServer.Shutdown()
		// Ends Watch streams, which would otherwise hold GracefulStop forever.
		svc.close(context.WithoutCancel(ctx))
		stopGracefully(grpcServer, shutdownTimeout)
	}()

	if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done
	logger.Info(ctx, "GRPC server stopped")

	return nil
}

// stopGracefully waits up to timeout for in-flight calls, then stops hard.
func stopGracefully(server *grpc.Server, timeout time.Duration) {
	stopped := make(chan struct{})

	go func() {
		server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(timeout):
		server.Stop()
	}
}

// resolveListenAddress determines the listen address for the gRPC server.
// The override wins; otherwise the configured address is used as is.
func resolveListenAddress(configAddr, override string) (string, error) {
	// Use override address if provided (e.g., ":9090", "0.0.0.0:8080").
	if override != "" {
		return override, nil
	}

	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	if _, _, err := net.SplitHostPort(configAddr); err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	return configAddr, nil
}
