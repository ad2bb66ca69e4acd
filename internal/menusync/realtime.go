package menusync

import (
	"context"
	"sync"
	"time"

	"go-resto-admin/internal/model"

	"go.uber.org/zap"
)

// TickerFunc returns a tick channel and its stop function.
type TickerFunc func(d time.Duration) (<-chan time.Time, func())

func newTimeTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// SyncStatus is what operators see for the real-time driver.
type SyncStatus struct {
	IsRunning    bool       `json:"is_running"`
	LastSyncTime *time.Time `json:"last_sync_time"`
	Active       bool       `json:"active"`
	Interval     string     `json:"interval,omitempty"`
}

// RealTimeSync runs a pass on a fixed interval and remembers when a pass last changed the menu.
type RealTimeSync struct {
	runner    Runner
	interval  time.Duration
	logger    *zap.Logger
	newTicker TickerFunc
	now       func() time.Time

	mu           sync.Mutex
	running      bool
	lastSyncTime time.Time
	cancel       context.CancelFunc
	done         chan struct{}
}

func NewRealTimeSync(runner Runner, interval time.Duration, logger *zap.Logger) *RealTimeSync {
	return &RealTimeSync{
		runner:    runner,
		interval:  interval,
		logger:    logger.Named("realtime"),
		newTicker: newTimeTicker,
		now:       time.Now,
	}
}

// Start runs one pass before returning, then keeps ticking in the background
// until Stop or ctx is cancelled. Calling Start while running is a no-op.
func (r *RealTimeSync) Start(ctx context.Context) {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	loopCtx, cancel := context.WithCancel(ctx)
	r.running = true
	r.cancel = cancel
	r.done = make(chan struct{})
	done := r.done
	r.mu.Unlock()

	r.logger.Info("Real-time menu sync started", zap.Duration("interval", r.interval))

	firstPass := make(chan struct{})
	go r.loop(loopCtx, firstPass, done)
	<-firstPass
}

// Stop cancels the loop and waits for an in-flight pass. No-op when not running.
func (r *RealTimeSync) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	cancel, done := r.cancel, r.done
	r.mu.Unlock()

	cancel()
	<-done
	r.logger.Info("Real-time menu sync stopped")
}

func (r *RealTimeSync) Status() SyncStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	st := SyncStatus{IsRunning: r.running, Interval: r.interval.String()}
	if !r.lastSyncTime.IsZero() {
		t := r.lastSyncTime
		st.LastSyncTime = &t
	}
	return st
}

func (r *RealTimeSync) loop(ctx context.Context, firstPass, done chan struct{}) {
	defer close(done)

	r.tick(ctx)
	close(firstPass)

	ticks, stop := r.newTicker(r.interval)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticks:
			r.tick(ctx)
		}
	}
}

// tick only advances lastSyncTime when the pass wrote something.
func (r *RealTimeSync) tick(ctx context.Context) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("Real-time sync tick panicked", zap.Any("panic", p), zap.Stack("stack"))
		}
	}()

	res, err := r.runner.Run(ctx, model.TriggerRealTime)
	if err != nil || !res.Changed() {
		return
	}

	r.mu.Lock()
	r.lastSyncTime = r.now()
	r.mu.Unlock()
}
