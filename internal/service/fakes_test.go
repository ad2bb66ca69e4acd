package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"go-resto-admin/internal/menusync"
	"go-resto-admin/internal/model"
	"go-resto-admin/internal/repository"

	"github.com/google/uuid"
)

type fakeMenuRepo struct {
	items []*model.MenuItem
	err   error
}

func (r *fakeMenuRepo) FindAll(ctx context.Context, filter repository.MenuFilter) ([]model.MenuItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []model.MenuItem{}
	for _, it := range r.items {
		if filter.Category != "" && it.Category != filter.Category {
			continue
		}
		if filter.AvailableOnly && !it.Available {
			continue
		}
		out = append(out, *it)
	}
	return out, nil
}

func (r *fakeMenuRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error) {
	for _, it := range r.items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, repository.ErrMenuItemNotFound
}

func (r *fakeMenuRepo) FindByName(ctx context.Context, name string) (*model.MenuItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, it := range r.items {
		if strings.EqualFold(it.Name, name) {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMenuRepo) Create(ctx context.Context, item *model.MenuItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	cp := *item
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeMenuRepo) Update(ctx context.Context, item *model.MenuItem) error {
	for i, it := range r.items {
		if it.ID == item.ID {
			cp := *item
			r.items[i] = &cp
			return nil
		}
	}
	return repository.ErrMenuItemNotFound
}

func (r *fakeMenuRepo) UpdateSyncFields(ctx context.Context, id uuid.UUID, price int64, available bool, at time.Time) error {
	return nil
}

func (r *fakeMenuRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrMenuItemNotFound
}

func (r *fakeMenuRepo) Stats(ctx context.Context) (*repository.MenuStats, error) {
	stats := &repository.MenuStats{TotalItems: int64(len(r.items))}
	for _, it := range r.items {
		if it.Available {
			stats.AvailableCount++
		} else {
			stats.SoldOutCount++
		}
	}
	return stats, nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	payloads []interface{}
}

func (n *fakeNotifier) Publish(payload interface{}) {
	n.mu.Lock()
	n.payloads = append(n.payloads, payload)
	n.mu.Unlock()
}

type fakeAboutRepo struct {
	about *model.AboutUs
	err   error
	gets  int
}

func (r *fakeAboutRepo) Get(ctx context.Context) (*model.AboutUs, error) {
	r.gets++
	if r.err != nil {
		return nil, r.err
	}
	if r.about == nil {
		return nil, repository.ErrAboutNotFound
	}
	cp := *r.about
	return &cp, nil
}

func (r *fakeAboutRepo) Save(ctx context.Context, about *model.AboutUs) error {
	if r.err != nil {
		return r.err
	}
	cp := *about
	r.about = &cp
	return nil
}

type fakeUserRepo struct {
	users   map[uuid.UUID]*model.User
	updates int
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[uuid.UUID]*model.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindAll() ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Create(user *model.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Update(user *model.User) error {
	r.updates++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

type fakeRunRepo struct {
	runs     []model.SyncRun
	lastFrom time.Time
	lastTo   time.Time
}

func (r *fakeRunRepo) Create(ctx context.Context, run *model.SyncRun) error {
	r.runs = append(r.runs, *run)
	return nil
}

func (r *fakeRunRepo) FindRecent(ctx context.Context, limit int) ([]model.SyncRun, error) {
	if limit > len(r.runs) {
		limit = len(r.runs)
	}
	return r.runs[:limit], nil
}

func (r *fakeRunRepo) GetActivity(ctx context.Context, startDate, endDate time.Time) ([]repository.SyncActivityData, error) {
	r.lastFrom, r.lastTo = startDate, endDate
	return []repository.SyncActivityData{}, nil
}

type fakeController struct {
	result menusync.Result
	err    error
	calls  int
}

func (c *fakeController) TriggerManualSync(ctx context.Context) (menusync.Result, error) {
	c.calls++
	return c.result, c.err
}

func (c *fakeController) RealTimeStatus() menusync.SyncStatus {
	return menusync.SyncStatus{IsRunning: true, Active: true}
}

func (c *fakeController) CronEnabled() bool { return false }

type fakeWriter struct {
	rows []menusync.SourceRow
	err  error
}

func (w *fakeWriter) WriteAll(ctx context.Context, rows []menusync.SourceRow) error {
	if w.err != nil {
		return w.err
	}
	w.rows = rows
	return nil
}
