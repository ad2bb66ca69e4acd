package menusync

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-resto-admin/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSyncer(src DataSource, store Store, runs RunRecorder, notifier Notifier) *Syncer {
	return NewSyncer(src, NewReconciler(store, zap.NewNop()), runs, notifier, zap.NewNop())
}

func TestSyncer_RunRecordsAndNotifies(t *testing.T) {
	src := &scriptedSource{rows: []SourceRow{
		{Name: "Nasi Goreng", Price: 15000, Available: true},
		{Name: "Es Teh", Price: 5000, Available: false},
	}}
	runs := &recordingRuns{}
	notifier := &recordingNotifier{}
	s := newTestSyncer(src, newMemStore(), runs, notifier)

	res, err := s.Run(context.Background(), model.TriggerManual)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)

	require.Len(t, runs.runs, 1)
	run := runs.runs[0]
	assert.Equal(t, model.TriggerManual, run.Trigger)
	assert.Equal(t, 2, run.Fetched)
	assert.Equal(t, 2, run.Created)
	assert.Empty(t, run.Error)
	assert.False(t, run.FinishedAt.Before(run.StartedAt))

	require.Len(t, notifier.events, 1)
	ev, ok := notifier.events[0].(SyncEvent)
	require.True(t, ok)
	assert.Equal(t, "menu_sync", ev.Type)
	assert.Equal(t, 2, ev.Created)

	// unchanged second pass: recorded, not broadcast
	_, err = s.Run(context.Background(), model.TriggerManual)
	require.NoError(t, err)
	assert.Len(t, runs.runs, 2)
	assert.Len(t, notifier.events, 1)
}

func TestSyncer_SourceFailure(t *testing.T) {
	src := &scriptedSource{errs: []error{errors.New("dial tcp: timeout")}}
	runs := &recordingRuns{}
	store := newMemStore()
	s := newTestSyncer(src, store, runs, nil)

	res, err := s.Run(context.Background(), model.TriggerCron)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 0, res.Updated)
	assert.Equal(t, 0, store.len())

	require.Len(t, runs.runs, 1)
	assert.Contains(t, runs.runs[0].Error, "dial tcp: timeout")
}

func TestSyncer_RecorderFailureDoesNotFailPass(t *testing.T) {
	src := &scriptedSource{rows: []SourceRow{{Name: "Kopi", Price: 8000, Available: true}}}
	s := newTestSyncer(src, newMemStore(), &recordingRuns{err: errBoom}, nil)

	res, err := s.Run(context.Background(), model.TriggerRealTime)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
}

func TestSyncer_PanicIsContained(t *testing.T) {
	store := newMemStore()
	store.panicOn = "Bom"
	runs := &recordingRuns{}
	s := newTestSyncer(&scriptedSource{rows: []SourceRow{{Name: "Bom", Price: 1, Available: true}}}, store, runs, nil)

	res, err := s.Run(context.Background(), model.TriggerManual)
	assert.ErrorIs(t, err, ErrPassPanicked)
	assert.Equal(t, 0, res.Created)
	require.Len(t, runs.runs, 1)
	assert.NotEmpty(t, runs.runs[0].Error)
}

// blockingSource parks FetchAll until released so overlapping calls can be observed.
type blockingSource struct {
	entered chan struct{}
	release chan struct{}
	calls   int
}

func (b *blockingSource) FetchAll(ctx context.Context) ([]SourceRow, error) {
	b.calls++
	b.entered <- struct{}{}
	<-b.release
	return []SourceRow{{Name: "Kopi", Price: 8000, Available: true}}, nil
}

func TestSyncer_SameTriggerDoesNotOverlap(t *testing.T) {
	src := &blockingSource{entered: make(chan struct{}, 2), release: make(chan struct{})}
	s := newTestSyncer(src, newMemStore(), nil, nil)

	results := make(chan Result, 2)
	go func() {
		res, _ := s.Run(context.Background(), model.TriggerManual)
		results <- res
	}()
	<-src.entered

	go func() {
		res, _ := s.Run(context.Background(), model.TriggerManual)
		results <- res
	}()
	// give the second caller time to join the in-flight pass
	time.Sleep(50 * time.Millisecond)
	close(src.release)

	first, second := <-results, <-results
	assert.Equal(t, 1, src.calls)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, first.Created)
}
