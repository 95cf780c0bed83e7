//go:build integration

package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellerdesk-backend/internal/infrastructure/events"
	"sellerdesk-backend/pkg/testutil/containers"
)

func TestRedisNotifier_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	rc := containers.NewRedisContainer(t)
	n := events.NewRedisNotifier(rc.Client, "sellerdesk:test")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	received := make(chan events.ChangeEvent, 1)
	go func() {
		_ = n.Subscribe(ctx, func(ev events.ChangeEvent) {
			select {
			case received <- ev:
			default:
			}
		})
	}()

	// publish until the subscriber is attached
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case ev := <-received:
			assert.Equal(t, events.EventSellersChanged, ev.Event)
			return
		case <-tick.C:
			n.OnDataChanged()
		case <-ctx.Done():
			require.FailNow(t, "no change event received")
		}
	}
}
