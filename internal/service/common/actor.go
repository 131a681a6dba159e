//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"fmt"
	"os"
	"os/user"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/oshokin/interval-alarm/internal/logger"
)

// ActorMetadataKey carries the calling user@host on every RPC.
const ActorMetadataKey = "x-interval-alarm-actor"

// Actor identifies who issued a command, for the daemon's audit log.
type Actor struct {
	// Hostname is the machine the command ran on.
	Hostname string
	// Username is the OS user that ran the command.
	Username string
}

// String renders the actor as user@host.
func (a *Actor) String() string {
	if a == nil {
		return ""
	}

	return a.Username + "@" + a.Hostname
}

// DetectActor gathers host and user information for the audit trail.
func DetectActor() (*Actor, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("hostname: %w", err)
	}

	currentUser, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}

	return &Actor{
		Hostname: hostname,
		Username: currentUser.Username,
	}, nil
}

// withActor attaches the actor to outgoing metadata.
func withActor(ctx context.Context, actor *Actor) context.Context {
	if actor == nil {
		return ctx
	}

	return metadata.AppendToOutgoingContext(ctx, ActorMetadataKey, actor.String())
}

// ActorFromIncoming returns the actor sent by the client, or "unknown".
func ActorFromIncoming(ctx context.Context) string {
	if values := metadata.ValueFromIncomingContext(ctx, ActorMetadataKey); len(values) > 0 && values[0] != "" {
		return values[0]
	}

	return "unknown"
}

// UnaryActorInterceptor adds the calling actor and method to the request logger.
func UnaryActorInterceptor(base context.Context) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx = logger.ToContext(ctx, logger.FromContext(base).With(
			"actor", ActorFromIncoming(ctx),
			"method", info.FullMethod,
		))

		return handler(ctx, req)
	}
}

// StreamActorInterceptor adds the calling actor and method to the stream logger.
func StreamActorInterceptor(base context.Context) grpc.StreamServerInterceptor {
	return func(srv any, stream grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx := logger.ToContext(stream.Context(), logger.FromContext(base).With(
			"actor", ActorFromIncoming(stream.Context()),
			"method", info.FullMethod,
		))

		return handler(srv, &contextStream{ServerStream: stream, ctx: ctx})
	}
}

// contextStream overrides the context of a server stream.
type contextStream struct {
	grpc.ServerStream

	ctx context.Context //nolint:containedctx // Required to replace the stream context.
}

// Context returns the replaced context.
func (s *contextStream) Context() context.Context {
	return s.ctx
}
