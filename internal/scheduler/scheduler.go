// Package scheduler drives the two background cadences of the market
// simulator: the condition refresh (which also clears the caches) and
// the broadcast of aggregate data to subscribers.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/broadcast"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/usecase"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/pkg/logger"
)

// Scheduler owns the refresh and broadcast tickers. The two timers are
// independent: the refresh interval decides what the next computation
// sees, the broadcast interval decides how often listeners hear about
// it.
type Scheduler struct {
	svc *usecase.Intelligence
	hub *broadcast.Hub

	refreshEvery   time.Duration
	broadcastEvery time.Duration

	stopOnce sync.Once
	stop     chan struct{}
	wg       sync.WaitGroup

	log *logger.Logger
}

// New creates a scheduler. Intervals must be positive.
func New(svc *usecase.Intelligence, hub *broadcast.Hub, refreshEvery, broadcastEvery time.Duration, log *logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Nop()
	}
	return &Scheduler{
		svc:            svc,
		hub:            hub,
		refreshEvery:   refreshEvery,
		broadcastEvery: broadcastEvery,
		stop:           make(chan struct{}),
		log:            log,
	}
}

// Start launches both tickers. They run until Stop is called or ctx is
// cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(2)
	go s.refreshLoop(ctx)
	go s.broadcastLoop(ctx)
	s.log.Info("scheduler started",
		logger.Duration("refresh_interval", s.refreshEvery),
		logger.Duration("broadcast_interval", s.broadcastEvery),
	)
}

// Stop terminates both loops and waits for them to exit.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	s.wg.Wait()
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) refreshLoop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.refreshEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case <-ticker.C:
			s.svc.Refresh()
		}
	}
}

func (s *Scheduler) broadcastLoop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.broadcastEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case <-ticker.C:
			if s.hub.Count() == 0 {
				continue
			}
			s.hub.Publish(s.svc.MarketUpdate())
		}
	}
}
