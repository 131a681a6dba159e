package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/interval-alarm/internal/logger"
)

const (
	// Topic is the single topic every event is published on.
	Topic = "interval-alarm.events"
	// defaultSubscriberBuffer is the per-subscriber queue length.
	defaultSubscriberBuffer = 64
)

// Bus fans events out to subscribers.
type Bus struct {
	// pubSub is the in-memory watermill transport.
	pubSub *gochannel.GoChannel
}

// NewBus creates a bus that logs through the logger stored in ctx.
func NewBus(ctx context.Context) *Bus {
	return &Bus{
		pubSub: gochannel.NewGoChannel(
			gochannel.Config{
				OutputChannelBuffer: defaultSubscriberBuffer,
				// Subscribers ack on receipt, so this only keeps delivery in publish order.
				BlockPublishUntilSubscriberAck: true,
			},
			newLoggerAdapter(busLogger(ctx)),
		),
	}
}

// busLogger keeps watermill's per-subscription info logs out unless debug logging is on.
func busLogger(ctx context.Context) *zap.SugaredLogger {
	return logger.Quieted(logger.FromContext(ctx).Named("events"), zapcore.WarnLevel)
}

// Publish sends an event to all current subscribers. Failures are logged, never returned:
// notification is best effort and must not affect the operation that produced the event.
func (b *Bus) Publish(ctx context.Context, event Event) {
	if b == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.ErrorKV(ctx, "Failed to encode event", "type", event.Type, "error", err)
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err = b.pubSub.Publish(Topic, msg); err != nil {
		logger.WarnKV(ctx, "Failed to publish event", "type", event.Type, "error", err)
	}
}

// Subscribe returns a channel of events that is closed when ctx is done or the bus is closed.
// Events are dropped for this subscriber while its channel is full.
func (b *Bus) Subscribe(ctx context.Context) (<-chan Event, error) {
	messages, err := b.pubSub.Subscribe(ctx, Topic)
	if err != nil {
		return nil, fmt.Errorf("subscribe to events: %w", err)
	}

	out := make(chan Event, defaultSubscriberBuffer)

	go func() {
		defer close(out)

		for msg := range messages {
			var event Event

			decodeErr := json.Unmarshal(msg.Payload, &event)

			msg.Ack()

			if decodeErr != nil {
				logger.WarnKV(ctx, "Dropping undecodable event", "message_id", msg.UUID, "error", decodeErr)
				continue
			}

			select {
			case out <- event:
			default:
				logger.DebugKV(ctx, "Subscriber is slow, dropping event", "type", event.Type)
			}
		}
	}()

	return out, nil
}

// Close shuts the bus down and closes every subscription.
func (b *Bus) Close() error {
	if b == nil {
		return nil
	}

	return b.pubSub.Close()
}
