package menusync

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-resto-admin/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store is the slice of the menu repository the reconciler writes through.
type Store interface {
	// FindByName returns nil, nil when no item matches.
	FindByName(ctx context.Context, name string) (*model.MenuItem, error)
	Create(ctx context.Context, item *model.MenuItem) error
	UpdateSyncFields(ctx context.Context, id uuid.UUID, price int64, available bool, at time.Time) error
}

// RowError is a single row that could not be looked up or written.
type RowError struct {
	Name string
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %q: %v", e.Name, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

func (e RowError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"name": e.Name, "error": e.Err.Error()})
}

// Result counts the writes of one reconciliation.
type Result struct {
	Created int        `json:"created"`
	Updated int        `json:"updated"`
	Errors  []RowError `json:"errors"`
}

// Changed reports whether the menu was written at all.
func (r Result) Changed() bool {
	return r.Created > 0 || r.Updated > 0
}

type Reconciler struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

func NewReconciler(store Store, logger *zap.Logger) *Reconciler {
	return &Reconciler{store: store, logger: logger, now: time.Now}
}

// Reconcile applies rows in the order given, one at a time.
// A failing row is recorded and skipped; it never aborts the batch.
func (r *Reconciler) Reconcile(ctx context.Context, rows []SourceRow) Result {
	res := Result{Errors: []RowError{}}

	for _, row := range rows {
		created, updated, err := r.apply(ctx, row)
		if err != nil {
			r.logger.Warn("Failed to sync menu row", zap.String("name", row.Name), zap.Error(err))
			res.Errors = append(res.Errors, RowError{Name: row.Name, Err: err})
			continue
		}
		if created {
			res.Created++
		}
		if updated {
			res.Updated++
		}
	}
	return res
}

func (r *Reconciler) apply(ctx context.Context, row SourceRow) (created, updated bool, err error) {
	existing, err := r.store.FindByName(ctx, row.Name)
	if err != nil {
		return false, false, fmt.Errorf("lookup: %w", err)
	}

	if existing == nil {
		item := model.NewSyncedMenuItem(row.Name, row.Price, row.Available)
		if err := r.store.Create(ctx, item); err != nil {
			return false, false, fmt.Errorf("create: %w", err)
		}
		r.logger.Debug("Menu item created from sheet", zap.String("name", row.Name), zap.Int64("price", row.Price))
		return true, false, nil
	}

	if existing.Price == row.Price && existing.Available == row.Available {
		return false, false, nil
	}

	if err := r.store.UpdateSyncFields(ctx, existing.ID, row.Price, row.Available, r.now()); err != nil {
		return false, false, fmt.Errorf("update: %w", err)
	}
	r.logger.Debug("Menu item updated from sheet",
		zap.String("name", existing.Name),
		zap.Int64("old_price", existing.Price),
		zap.Int64("new_price", row.Price),
		zap.Bool("available", row.Available))
	return false, true, nil
}
