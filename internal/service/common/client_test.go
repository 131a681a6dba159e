//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"
)

// TestDial_ValidatesAddress verifies that Dial rejects empty addresses.
func TestDial_ValidatesAddress(t *testing.T) {
	t.Parallel()

	c, err := Dial(context.Background(), "")
	require.Error(t, err)
	require.Nil(t, c)
}

// TestDial_AppliesOptions keeps the defaults unless overridden.
func TestDial_AppliesOptions(t *testing.T) {
	t.Parallel()

	actor := &Actor{Hostname: "h", Username: "u"}

	c, err := Dial(context.Background(), "127.0.0.1:50061", WithCallTimeout(time.Second), WithActor(actor))
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, c.Close())
	})

	require.Equal(t, time.Second, c.callTimeout)
	require.Same(t, actor, c.actor)

	// Non-positive timeouts are ignored.
	WithCallTimeout(0)(c)
	require.Equal(t, time.Second, c.callTimeout)
}

// TestClient_callContext checks timeout vs cancel-only behavior of callContext.
func TestClient_callContext(t *testing.T) {
	t.Parallel()

	c := &Client{
		callTimeout: 0,
	}

	ctx, cancel := c.callContext(context.Background())
	cancel()

	require.NotNil(t, ctx)

	_, hasDeadline := ctx.Deadline()
	require.False(t, hasDeadline)

	c.callTimeout = 10 * time.Millisecond
	c.actor = &Actor{Hostname: "h", Username: "u"}

	ctx, cancel = c.callContext(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	require.WithinDuration(t, time.Now().Add(10*time.Millisecond), deadline, 30*time.Millisecond)

	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	require.Equal(t, []string{"u@h"}, md.Get(ActorMetadataKey))
}

// TestClient_CloseNil is safe on a nil client.
func TestClient_CloseNil(t *testing.T) {
	t.Parallel()

	var c *Client

	require.NoError(t, c.Close())
}
