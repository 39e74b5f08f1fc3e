// Package syncer runs the periodic background sync of teams and games so the
// store stays warm without anyone typing "sync all teams".
package syncer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nba-bot-service/internal/logging"
	"nba-bot-service/internal/metrics"
)

const defaultInterval = 2 * time.Minute

// SyncService is the subset of the NBA service the syncer drives. Players
// and statistics are synced on demand only; the background loop keeps the
// small, stable collections fresh.
type SyncService interface {
	SyncAllTeams(ctx context.Context) (int, error)
	SyncAllGames(ctx context.Context) (int, error)
}

// Syncer fetches teams and games on an interval.
type Syncer struct {
	service  SyncService
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the sync loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the syncer has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Syncer with sane defaults.
func New(service SyncService, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Syncer {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Syncer{
		service:  service,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins syncing until the context is cancelled or Stop is called.
func (s *Syncer) Start(ctx context.Context) {
	s.startMu.Lock()
	if s.started {
		s.startMu.Unlock()
		return
	}
	s.started = true
	s.startMu.Unlock()

	s.ticker = time.NewTicker(s.interval)

	go func() {
		s.logInfo("syncer started", slog.Int64(logging.FieldDurationMS, s.interval.Milliseconds()))
		// Initial sync to warm the store on boot.
		s.runOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				s.stopTicker()
				s.logInfo("syncer stopped")
				return
			case <-s.done:
				s.stopTicker()
				s.logInfo("syncer stopped")
				return
			case <-s.ticker.C:
				s.runOnce(ctx)
			}
		}
	}()
}

// Stop halts the sync loop.
func (s *Syncer) Stop(ctx context.Context) error {
	_ = ctx
	s.stopOnce.Do(func() {
		close(s.done)
		s.stopTicker()
	})
	return nil
}

func (s *Syncer) runOnce(ctx context.Context) {
	start := time.Now()
	s.recordAttempt(start)

	teams, err := s.service.SyncAllTeams(ctx)
	if err == nil {
		var games int
		games, err = s.service.SyncAllGames(ctx)
		if err == nil {
			s.metrics.RecordSyncCycle(time.Since(start), nil)
			s.recordSuccess(start)
			s.logInfo("sync cycle complete",
				"teams", teams,
				"games", games,
				logging.FieldDurationMS, time.Since(start).Milliseconds(),
			)
			return
		}
	}

	s.metrics.RecordSyncCycle(time.Since(start), err)
	s.recordFailure(err, start)
	s.logError("sync cycle failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
}

func (s *Syncer) stopTicker() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
}

func (s *Syncer) logInfo(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *Syncer) logError(msg string, err error, attrs ...any) {
	if s.logger != nil {
		s.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (s *Syncer) recordAttempt(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.LastAttempt = at
}

func (s *Syncer) recordSuccess(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures = 0
	s.status.LastError = ""
	s.status.LastSuccess = at
}

func (s *Syncer) recordFailure(err error, at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures++
	if err != nil {
		s.status.LastError = err.Error()
	}
	s.status.LastAttempt = at
}

// Status returns a snapshot of the syncer's recent health.
func (s *Syncer) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}
