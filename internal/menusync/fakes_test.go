package menusync

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go-resto-admin/internal/model"

	"github.com/google/uuid"
)

var errBoom = errors.New("boom")

// memStore is an in-memory Store keyed by lower-cased name.
type memStore struct {
	mu      sync.Mutex
	items   []*model.MenuItem
	failOn  map[string]error
	panicOn string
	creates int
	updates int
}

func newMemStore(items ...*model.MenuItem) *memStore {
	s := &memStore{failOn: map[string]error{}}
	for _, it := range items {
		if it.ID == uuid.Nil {
			it.ID = uuid.New()
		}
		s.items = append(s.items, it)
	}
	return s
}

func (s *memStore) FindByName(ctx context.Context, name string) (*model.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.panicOn != "" && name == s.panicOn {
		panic("unexpected row " + name)
	}
	for _, it := range s.items {
		if strings.EqualFold(it.Name, name) {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memStore) Create(ctx context.Context, item *model.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failOn[item.Name]; err != nil {
		return err
	}
	item.ID = uuid.New()
	cp := *item
	s.items = append(s.items, &cp)
	s.creates++
	return nil
}

func (s *memStore) UpdateSyncFields(ctx context.Context, id uuid.UUID, price int64, available bool, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID != id {
			continue
		}
		if err := s.failOn[it.Name]; err != nil {
			return err
		}
		it.Price = price
		it.Available = available
		it.UpdatedAt = at
		s.updates++
		return nil
	}
	return errors.New("not found")
}

func (s *memStore) get(name string) *model.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if strings.EqualFold(it.Name, name) {
			cp := *it
			return &cp
		}
	}
	return nil
}

func (s *memStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// scriptedSource returns errs[i] (if set) or rows on the i-th call.
type scriptedSource struct {
	mu    sync.Mutex
	rows  []SourceRow
	errs  []error
	calls int
}

func (s *scriptedSource) FetchAll(ctx context.Context) ([]SourceRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	return append([]SourceRow(nil), s.rows...), nil
}

func (s *scriptedSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// scriptedRunner replays results in order and repeats the last one.
type scriptedRunner struct {
	mu       sync.Mutex
	results  []Result
	errs     []error
	triggers []model.SyncTrigger
}

func (r *scriptedRunner) Run(ctx context.Context, trigger model.SyncTrigger) (Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := len(r.triggers)
	r.triggers = append(r.triggers, trigger)

	var err error
	if i < len(r.errs) {
		err = r.errs[i]
	}
	if len(r.results) == 0 {
		return Result{}, err
	}
	if i >= len(r.results) {
		i = len(r.results) - 1
	}
	return r.results[i], err
}

func (r *scriptedRunner) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.triggers)
}

type recordingRuns struct {
	mu   sync.Mutex
	runs []model.SyncRun
	err  error
}

func (r *recordingRuns) Create(ctx context.Context, run *model.SyncRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, *run)
	return r.err
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []interface{}
}

func (n *recordingNotifier) Publish(payload interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, payload)
}

// manualTicker lets tests fire ticks by hand.
type manualTicker struct {
	ch      chan time.Time
	stopped chan struct{}
	once    sync.Once
}

func newManualTicker() *manualTicker {
	return &manualTicker{ch: make(chan time.Time), stopped: make(chan struct{})}
}

func (m *manualTicker) factory(time.Duration) (<-chan time.Time, func()) {
	return m.ch, func() { m.once.Do(func() { close(m.stopped) }) }
}

func (m *manualTicker) fire() {
	m.ch <- time.Now()
}
