// Package broadcast implements the subscriber registry the refresh
// scheduler publishes market updates through. Each subscriber gets a
// buffered channel; one that misses the send deadline is dropped
// without affecting the rest.
package broadcast

import (
	"sync"
	"time"

	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/domain/models"
	domrepo "github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/domain/repository"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/pkg/logger"

	"github.com/google/uuid"
)

// Subscription is a live feed of market updates. Done is closed when
// the subscriber is dropped or the hub shuts down; the update channel
// itself is never closed, so a racing Publish can never panic.
type Subscription struct {
	ID string

	updates  chan models.MarketUpdate
	done     chan struct{}
	stopOnce sync.Once
}

// Updates is the stream of broadcast events.
func (s *Subscription) Updates() <-chan models.MarketUpdate { return s.updates }

// Done is closed when the subscription ends.
func (s *Subscription) Done() <-chan struct{} { return s.done }

func (s *Subscription) stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

// Hub is the broadcast registry.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]*Subscription
	closed bool

	buffer      int
	sendTimeout time.Duration

	log     *logger.Logger
	metrics domrepo.Metrics
}

// NewHub creates a hub. buffer is the per-subscriber channel depth and
// sendTimeout bounds how long Publish waits on a full subscriber before
// dropping it.
func NewHub(buffer int, sendTimeout time.Duration, log *logger.Logger, metrics domrepo.Metrics) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	if sendTimeout <= 0 {
		sendTimeout = 2 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	if metrics == nil {
		metrics = domrepo.NopMetrics{}
	}
	return &Hub{
		subs:        make(map[string]*Subscription),
		buffer:      buffer,
		sendTimeout: sendTimeout,
		log:         log,
		metrics:     metrics,
	}
}

// Subscribe registers a new listener. Returns nil after Close.
func (h *Hub) Subscribe() *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}

	sub := &Subscription{
		ID:      uuid.NewString(),
		updates: make(chan models.MarketUpdate, h.buffer),
		done:    make(chan struct{}),
	}
	h.subs[sub.ID] = sub
	h.metrics.SetSubscribers(len(h.subs))
	h.log.Debug("subscriber registered", logger.String("id", sub.ID))
	return sub
}

// Unsubscribe removes a listener and signals its Done channel. Unknown
// IDs are ignored.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	sub, ok := h.subs[id]
	if ok {
		delete(h.subs, id)
	}
	n := len(h.subs)
	h.mu.Unlock()

	if ok {
		sub.stop()
		h.metrics.SetSubscribers(n)
		h.log.Debug("subscriber removed", logger.String("id", id))
	}
}

// Count reports the number of active subscribers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Publish fans the update out to every subscriber concurrently. A
// subscriber whose buffer stays full past the send timeout is dropped;
// the others are unaffected.
func (h *Hub) Publish(update models.MarketUpdate) {
	h.mu.RLock()
	if h.closed {
		h.mu.RUnlock()
		return
	}
	targets := make([]*Subscription, 0, len(h.subs))
	for _, sub := range h.subs {
		targets = append(targets, sub)
	}
	h.mu.RUnlock()

	var wg sync.WaitGroup
	for _, sub := range targets {
		wg.Add(1)
		go func(sub *Subscription) {
			defer wg.Done()
			timer := time.NewTimer(h.sendTimeout)
			defer timer.Stop()
			select {
			case sub.updates <- update:
			case <-sub.done:
			case <-timer.C:
				h.log.Warn("dropping slow subscriber", logger.String("id", sub.ID))
				h.metrics.RecordSubscriberDrop()
				h.Unsubscribe(sub.ID)
			}
		}(sub)
	}
	wg.Wait()

	h.metrics.RecordBroadcast(h.Count())
}

// Close drops all subscribers and rejects future subscriptions.
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	subs := make([]*Subscription, 0, len(h.subs))
	for id, sub := range h.subs {
		delete(h.subs, id)
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		sub.stop()
	}
	h.metrics.SetSubscribers(0)
}
