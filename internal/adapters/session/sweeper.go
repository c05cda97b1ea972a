package session

import (
	"context"
	"sync"
	"time"

	"sobasite/internal/platform/logger"
)

type Expirer interface {
	ExpireSessions(ctx context.Context) (int, error)
}

type ExpiryRecorder interface {
	RecordSessionsExpired(ctx context.Context, n int)
}

// Sweeper periodically removes idle form sessions.
type Sweeper struct {
	expirer  Expirer
	recorder ExpiryRecorder
	interval time.Duration
	logger   logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSweeper(expirer Expirer, recorder ExpiryRecorder, interval time.Duration, log logger.Logger) *Sweeper {
	return &Sweeper{
		expirer:  expirer,
		recorder: recorder,
		interval: interval,
		logger:   log,
	}
}

// Start launches the sweep loop. It returns immediately; calling it on a
// running sweeper is a no-op.
func (s *Sweeper) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	s.logger.Info("Starting form session sweeper", logger.String("interval", s.interval.String()))
	go s.run(ctx, s.done)
	return nil
}

func (s *Sweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}

	s.logger.Info("Stopping form session sweeper")
	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Sweeper) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs a single expiry pass.
func (s *Sweeper) Sweep(ctx context.Context) {
	removed, err := s.expirer.ExpireSessions(ctx)
	if err != nil {
		s.logger.Error("Failed to expire form sessions", logger.Error(err))
		return
	}
	if removed > 0 {
		s.recorder.RecordSessionsExpired(ctx, removed)
		s.logger.Debug("Expired form sessions", logger.Int("removed", removed))
	}
}
