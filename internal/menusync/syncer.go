package menusync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-resto-admin/internal/model"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrPassPanicked is returned when a pass hit a programming error.
var ErrPassPanicked = errors.New("menu sync pass panicked")

// RunRecorder persists the history of passes, implemented by the sync run repository.
type RunRecorder interface {
	Create(ctx context.Context, run *model.SyncRun) error
}

// Notifier pushes events to connected admin consoles.
type Notifier interface {
	Publish(payload interface{})
}

// Runner performs one pass; drivers depend on this instead of *Syncer.
type Runner interface {
	Run(ctx context.Context, trigger model.SyncTrigger) (Result, error)
}

// SyncEvent is broadcast after a pass that changed the menu.
type SyncEvent struct {
	Type    string            `json:"type"`
	Trigger model.SyncTrigger `json:"trigger"`
	Created int               `json:"created"`
	Updated int               `json:"updated"`
	Failed  int               `json:"failed"`
	At      time.Time         `json:"at"`
	Message string            `json:"message"`
}

// Syncer runs fetch-then-reconcile passes and contains their failures.
type Syncer struct {
	source     DataSource
	reconciler *Reconciler
	runs       RunRecorder
	notifier   Notifier
	logger     *zap.Logger
	now        func() time.Time

	// keyed by trigger, so a driver never overlaps itself
	inflight singleflight.Group
}

// NewSyncer wires a pass. runs and notifier may be nil.
func NewSyncer(source DataSource, reconciler *Reconciler, runs RunRecorder, notifier Notifier, logger *zap.Logger) *Syncer {
	return &Syncer{
		source:     source,
		reconciler: reconciler,
		runs:       runs,
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
	}
}

// Run performs one pass. Concurrent calls with the same trigger share a single pass.
// The returned error is non-nil only when the source could not be read or the pass panicked;
// per-row failures are reported in Result.Errors.
func (s *Syncer) Run(ctx context.Context, trigger model.SyncTrigger) (Result, error) {
	v, err, _ := s.inflight.Do(string(trigger), func() (interface{}, error) {
		return s.pass(ctx, trigger)
	})
	res, _ := v.(Result)
	return res, err
}

// TriggerManual runs one pass on behalf of an operator.
func (s *Syncer) TriggerManual(ctx context.Context) (Result, error) {
	return s.Run(ctx, model.TriggerManual)
}

func (s *Syncer) pass(ctx context.Context, trigger model.SyncTrigger) (res Result, err error) {
	log := s.logger.With(zap.String("trigger", string(trigger)))
	run := &model.SyncRun{Trigger: trigger, StartedAt: s.now()}

	defer func() {
		if p := recover(); p != nil {
			log.Error("Menu sync pass panicked", zap.Any("panic", p), zap.Stack("stack"))
			res = Result{Errors: []RowError{}}
			err = fmt.Errorf("%w: %v", ErrPassPanicked, p)
		}
		s.finish(ctx, log, run, res, err)
	}()

	rows, err := s.source.FetchAll(ctx)
	if err != nil {
		if !errors.Is(err, ErrSourceUnavailable) {
			err = fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}
		return Result{Errors: []RowError{}}, err
	}
	run.Fetched = len(rows)

	return s.reconciler.Reconcile(ctx, rows), nil
}

func (s *Syncer) finish(ctx context.Context, log *zap.Logger, run *model.SyncRun, res Result, err error) {
	run.FinishedAt = s.now()
	run.Created = res.Created
	run.Updated = res.Updated
	run.Failed = len(res.Errors)

	if err != nil {
		run.Error = err.Error()
		log.Warn("Menu sync failed", zap.Error(err), zap.Duration("took", run.FinishedAt.Sub(run.StartedAt)))
	} else {
		log.Info("Menu sync finished",
			zap.Int("fetched", run.Fetched),
			zap.Int("created", run.Created),
			zap.Int("updated", run.Updated),
			zap.Int("failed", run.Failed),
			zap.Duration("took", run.FinishedAt.Sub(run.StartedAt)))
	}

	if s.runs != nil {
		if rerr := s.runs.Create(context.WithoutCancel(ctx), run); rerr != nil {
			log.Warn("Failed to record sync run", zap.Error(rerr))
		}
	}

	if s.notifier != nil && res.Changed() {
		s.notifier.Publish(SyncEvent{
			Type:    "menu_sync",
			Trigger: run.Trigger,
			Created: run.Created,
			Updated: run.Updated,
			Failed:  run.Failed,
			At:      run.FinishedAt,
			Message: fmt.Sprintf("Menu synced from spreadsheet: %d created, %d updated", run.Created, run.Updated),
		})
	}
}
