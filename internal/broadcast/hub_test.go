package broadcast

import (
	"testing"
	"time"

	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/domain/models"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(buffer int, sendTimeout time.Duration) *Hub {
	return NewHub(buffer, sendTimeout, logger.Nop(), nil)
}

func testUpdate(ts time.Time) models.MarketUpdate {
	return models.MarketUpdate{Timestamp: ts}
}

func TestPublishReachesAllSubscribers(t *testing.T) {
	hub := newTestHub(4, time.Second)
	defer hub.Close()

	subs := []*Subscription{hub.Subscribe(), hub.Subscribe(), hub.Subscribe()}
	require.Equal(t, 3, hub.Count())

	ts := time.Date(2025, 7, 9, 14, 0, 0, 0, time.UTC)
	hub.Publish(testUpdate(ts))

	for _, sub := range subs {
		select {
		case got := <-sub.Updates():
			assert.Equal(t, ts, got.Timestamp)
		case <-time.After(time.Second):
			t.Fatalf("subscriber %s did not receive update", sub.ID)
		}
	}
}

func TestSlowSubscriberDroppedOthersUnaffected(t *testing.T) {
	hub := newTestHub(1, 20*time.Millisecond)
	defer hub.Close()

	slow := hub.Subscribe()
	fast := hub.Subscribe()

	// Fill the slow subscriber's buffer so the next send blocks past the
	// deadline.
	hub.Publish(testUpdate(time.Now()))
	<-fast.Updates()

	hub.Publish(testUpdate(time.Now()))

	select {
	case <-slow.Done():
	case <-time.After(time.Second):
		t.Fatal("slow subscriber was not dropped")
	}
	require.Equal(t, 1, hub.Count())

	select {
	case <-fast.Updates():
	case <-time.After(time.Second):
		t.Fatal("fast subscriber missed the update")
	}
}

func TestUnsubscribeSignalsDone(t *testing.T) {
	hub := newTestHub(4, time.Second)
	defer hub.Close()

	sub := hub.Subscribe()
	hub.Unsubscribe(sub.ID)

	select {
	case <-sub.Done():
	case <-time.After(time.Second):
		t.Fatal("done channel not closed after unsubscribe")
	}
	assert.Equal(t, 0, hub.Count())

	// Unknown IDs are a no-op.
	hub.Unsubscribe("not-registered")
}

func TestPublishDuringUnsubscribeDoesNotPanic(t *testing.T) {
	hub := newTestHub(1, 10*time.Millisecond)
	defer hub.Close()

	for i := 0; i < 50; i++ {
		sub := hub.Subscribe()
		go hub.Unsubscribe(sub.ID)
		hub.Publish(testUpdate(time.Now()))
	}
}

func TestCloseDropsEveryoneAndRejectsSubscribe(t *testing.T) {
	hub := newTestHub(4, time.Second)

	a := hub.Subscribe()
	b := hub.Subscribe()
	hub.Close()

	for _, sub := range []*Subscription{a, b} {
		select {
		case <-sub.Done():
		case <-time.After(time.Second):
			t.Fatal("done channel not closed after hub close")
		}
	}
	assert.Equal(t, 0, hub.Count())
	assert.Nil(t, hub.Subscribe())

	// Idempotent.
	hub.Close()
	hub.Publish(testUpdate(time.Now()))
}
