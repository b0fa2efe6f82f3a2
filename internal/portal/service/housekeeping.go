package service

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/clarityimpactfinance/portal/internal/portal/chat"
	"github.com/clarityimpactfinance/portal/internal/portal/store"
)

// HousekeepingService periodically forgets abandoned browser sessions and
// idle conversations. Invitation codes and accounts are never touched.
type HousekeepingService struct {
	Store         store.Store
	Conversations *chat.Registry
	Logger        *slog.Logger
	Interval      time.Duration
	SessionTTL    time.Duration
	IdleTimeout   time.Duration
	Now           func() time.Time

	// Internal channels for lifecycle management
	started atomic.Bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewHousekeepingService defaults a non-positive interval to 1 hour.
func NewHousekeepingService(
	s store.Store,
	conversations *chat.Registry,
	logger *slog.Logger,
	interval, sessionTTL, idleTimeout time.Duration,
) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:         s,
		Conversations: conversations,
		Logger:        logger,
		Interval:      interval,
		SessionTTL:    sessionTTL,
		IdleTimeout:   idleTimeout,
		Now:           time.Now,
		stopCh:        make(chan struct{}),
		doneCh:        make(chan struct{}),
	}
}

// Start runs the cleanup loop in the background until Stop is called.
func (s *HousekeepingService) Start() {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until any in-progress cleanup has finished. It is a no-op
// when the loop was never started.
func (s *HousekeepingService) Stop() {
	if !s.started.CompareAndSwap(true, false) {
		return
	}
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.Cleanup(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Cleanup(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Cleanup runs one pass. Each step is independent of the other's failure.
func (s *HousekeepingService) Cleanup(ctx context.Context) {
	now := s.Now()

	if s.SessionTTL > 0 {
		n, err := s.Store.Values().PurgeStale(ctx, store.SessionPrefix, now.Add(-s.SessionTTL))
		if err != nil {
			s.Logger.Error("failed to purge stale sessions", "error", err)
		} else {
			s.Logger.Debug("purged stale session keys", "count", n)
		}
	}

	if s.Conversations != nil && s.IdleTimeout > 0 {
		n := s.Conversations.EvictIdle(now.Add(-s.IdleTimeout))
		s.Logger.Debug("evicted idle conversations", "count", n)
	}
}
