package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-resto-admin/internal/menusync"
	"go-resto-admin/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSyncService_Trigger(t *testing.T) {
	ctrl := &fakeController{result: menusync.Result{Created: 1, Updated: 2, Errors: []menusync.RowError{}}}
	svc := NewSyncService(ctrl, &fakeRunRepo{}, &fakeMenuRepo{}, nil, zap.NewNop())

	res, err := svc.Trigger(context.Background(), "Admin")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 2, res.Updated)
	assert.Equal(t, 1, ctrl.calls)

	ctrl.err = menusync.ErrSourceUnavailable
	ctrl.result = menusync.Result{Errors: []menusync.RowError{}}
	res, err = svc.Trigger(context.Background(), "Admin")
	assert.ErrorIs(t, err, menusync.ErrSourceUnavailable)
	assert.Zero(t, res.Created+res.Updated)
}

func TestSyncService_Status(t *testing.T) {
	svc := NewSyncService(&fakeController{}, &fakeRunRepo{}, &fakeMenuRepo{}, nil, zap.NewNop())

	st := svc.Status()
	assert.True(t, st.RealTime.Active)
	assert.False(t, st.CronEnabled)
}

func TestSyncService_ExportToSheet(t *testing.T) {
	repo := &fakeMenuRepo{items: []*model.MenuItem{
		newItem("Nasi Goreng", model.CategoryFood, true),
		newItem("Es Teh", model.CategoryBeverage, false),
	}}
	writer := &fakeWriter{}
	svc := NewSyncService(&fakeController{}, &fakeRunRepo{}, repo, writer, zap.NewNop())

	n, err := svc.ExportToSheet(context.Background(), "Admin")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []menusync.SourceRow{
		{Name: "Nasi Goreng", Price: 15000, Available: true},
		{Name: "Es Teh", Price: 15000, Available: false},
	}, writer.rows)

	writer.err = errors.New("quota exceeded")
	_, err = svc.ExportToSheet(context.Background(), "Admin")
	assert.Error(t, err)
}

func TestSyncService_ExportDisabled(t *testing.T) {
	svc := NewSyncService(&fakeController{}, &fakeRunRepo{}, &fakeMenuRepo{}, nil, zap.NewNop())
	_, err := svc.ExportToSheet(context.Background(), "Admin")
	assert.ErrorIs(t, err, ErrExportDisabled)
}

func TestDashboardService(t *testing.T) {
	runs := &fakeRunRepo{runs: []model.SyncRun{{Trigger: model.TriggerCron, Created: 1}}}
	menu := &fakeMenuRepo{items: []*model.MenuItem{newItem("Nasi Goreng", model.CategoryFood, true)}}
	svc := NewDashboardService(menu, runs).(*dashboardService)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	stats, err := svc.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Menu.TotalItems)
	require.NotNil(t, stats.LastRun)
	assert.Equal(t, model.TriggerCron, stats.LastRun.Trigger)

	_, err = svc.GetSyncActivity(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, -7), runs.lastFrom)

	_, err = svc.GetSyncActivity(ctx, 365)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, -maxActivityDays), runs.lastFrom)
}
