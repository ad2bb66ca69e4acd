package menusync

import (
	"context"
	"sync"
	"time"

	"go-resto-admin/internal/model"

	"go.uber.org/zap"
)

// Scheduler is the entry point the host process uses: it owns both drivers and
// the manual trigger, all sharing one Syncer.
type Scheduler struct {
	runner Runner
	logger *zap.Logger
	cron   *CronSync

	mu              sync.Mutex
	realtime        *RealTimeSync
	realtimeEnabled bool
	realtimeLogged  bool
	newTicker       TickerFunc
}

func NewScheduler(runner Runner, cronSchedule string, logger *zap.Logger) *Scheduler {
	logger = logger.Named("menusync")
	return &Scheduler{
		runner:    runner,
		logger:    logger,
		cron:      NewCronSync(runner, cronSchedule, logger),
		newTicker: newTimeTicker,
	}
}

func (s *Scheduler) StartCronSync(enabled bool) error {
	return s.cron.Start(enabled)
}

// StartRealTimeSync is idempotent; the interval of the first enabled call wins.
func (s *Scheduler) StartRealTimeSync(ctx context.Context, enabled bool, interval time.Duration) {
	s.mu.Lock()
	if !enabled {
		if !s.realtimeLogged {
			s.logger.Info("Real-time menu sync disabled")
			s.realtimeLogged = true
		}
		s.mu.Unlock()
		return
	}
	s.realtimeEnabled = true
	s.realtimeLogged = true
	if s.realtime == nil {
		s.realtime = NewRealTimeSync(s.runner, interval, s.logger)
		s.realtime.newTicker = s.newTicker
	}
	rt := s.realtime
	s.mu.Unlock()

	rt.Start(ctx)
}

func (s *Scheduler) StopRealTimeSync() {
	s.mu.Lock()
	rt := s.realtime
	s.mu.Unlock()

	if rt != nil {
		rt.Stop()
	}
}

// TriggerManualSync performs exactly one pass synchronously.
func (s *Scheduler) TriggerManualSync(ctx context.Context) (Result, error) {
	return s.runner.Run(ctx, model.TriggerManual)
}

func (s *Scheduler) RealTimeStatus() SyncStatus {
	s.mu.Lock()
	rt, active := s.realtime, s.realtimeEnabled
	s.mu.Unlock()

	if rt == nil {
		return SyncStatus{Active: active}
	}
	st := rt.Status()
	st.Active = active
	return st
}

func (s *Scheduler) CronEnabled() bool {
	return s.cron.Enabled()
}

// Shutdown stops both drivers and waits for in-flight passes.
func (s *Scheduler) Shutdown() {
	s.cron.Stop()
	s.StopRealTimeSync()
}
