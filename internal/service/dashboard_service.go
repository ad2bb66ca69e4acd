package service

import (
	"context"
	"time"

	"go-resto-admin/internal/model"
	"go-resto-admin/internal/repository"
)

const maxActivityDays = 90

// DashboardStats combines the menu overview with the most recent sync pass.
type DashboardStats struct {
	Menu    *repository.MenuStats `json:"menu"`
	LastRun *model.SyncRun        `json:"last_sync_run"`
}

type DashboardService interface {
	GetSyncActivity(ctx context.Context, days int) ([]repository.SyncActivityData, error)
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}

type dashboardService struct {
	menuRepo repository.MenuItemRepository
	runRepo  repository.SyncRunRepository
	now      func() time.Time
}

func NewDashboardService(menuRepo repository.MenuItemRepository, runRepo repository.SyncRunRepository) DashboardService {
	return &dashboardService{menuRepo: menuRepo, runRepo: runRepo, now: time.Now}
}

func (s *dashboardService) GetSyncActivity(ctx context.Context, days int) ([]repository.SyncActivityData, error) {
	if days <= 0 {
		days = 7
	}
	if days > maxActivityDays {
		days = maxActivityDays
	}
	endDate := s.now()
	startDate := endDate.AddDate(0, 0, -days)

	return s.runRepo.GetActivity(ctx, startDate, endDate)
}

func (s *dashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats, err := s.menuRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	out := &DashboardStats{Menu: stats}
	runs, err := s.runRepo.FindRecent(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) > 0 {
		out.LastRun = &runs[0]
	}
	return out, nil
}
