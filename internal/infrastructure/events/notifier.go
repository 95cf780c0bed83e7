package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// EventSellersChanged is published after a seller was saved or removed.
const EventSellersChanged = "sellers.changed"

// ChangeEvent is the payload published on the channel.
type ChangeEvent struct {
	Event string    `json:"event"`
	At    time.Time `json:"at"`
}

// RedisNotifier is a data change listener that publishes a ChangeEvent on a
// redis channel, so other processes can refresh their views.
type RedisNotifier struct {
	client  redis.UniversalClient
	channel string
	timeout time.Duration
	now     func() time.Time
}

// NewRedisNotifier creates a notifier publishing on channel.
func NewRedisNotifier(client redis.UniversalClient, channel string) *RedisNotifier {
	return &RedisNotifier{
		client:  client,
		channel: channel,
		timeout: 2 * time.Second,
		now:     time.Now,
	}
}

// OnDataChanged publishes the event. Failures are logged and swallowed:
// the save already succeeded.
func (n *RedisNotifier) OnDataChanged() {
	payload, err := json.Marshal(ChangeEvent{Event: EventSellersChanged, At: n.now().UTC()})
	if err != nil {
		log.Error().Err(err).Msg("failed to encode change event")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	if err := n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
		log.Warn().Err(err).Str("channel", n.channel).Msg("failed to publish change event")
		return
	}
	log.Debug().Str("channel", n.channel).Msg("change event published")
}

// Subscribe calls fn for every change event received on the channel until
// ctx is done.
func (n *RedisNotifier) Subscribe(ctx context.Context, fn func(ChangeEvent)) error {
	sub := n.client.Subscribe(ctx, n.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return err
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var ev ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Warn().Err(err).Msg("ignoring malformed change event")
				continue
			}
			fn(ev)
		}
	}
}
