package service

import (
	"context"
	"errors"

	"go-resto-admin/internal/menusync"
	"go-resto-admin/internal/model"
	"go-resto-admin/internal/repository"

	"go.uber.org/zap"
)

var ErrExportDisabled = errors.New("spreadsheet export is not configured")

// SyncController is satisfied by *menusync.Scheduler.
type SyncController interface {
	TriggerManualSync(ctx context.Context) (menusync.Result, error)
	RealTimeStatus() menusync.SyncStatus
	CronEnabled() bool
}

// SheetWriter is satisfied by *menusync.SheetSource.
type SheetWriter interface {
	WriteAll(ctx context.Context, rows []menusync.SourceRow) error
}

type SyncStatusResponse struct {
	RealTime    menusync.SyncStatus `json:"realtime"`
	CronEnabled bool                `json:"cron_enabled"`
}

type SyncService interface {
	Trigger(ctx context.Context, userName string) (menusync.Result, error)
	Status() SyncStatusResponse
	RecentRuns(ctx context.Context, limit int) ([]model.SyncRun, error)
	// ExportToSheet overwrites the spreadsheet with the current menu and returns the row count.
	ExportToSheet(ctx context.Context, userName string) (int, error)
}

type syncService struct {
	controller SyncController
	runRepo    repository.SyncRunRepository
	menuRepo   repository.MenuItemRepository
	writer     SheetWriter
	logger     *zap.Logger
}

func NewSyncService(controller SyncController, runRepo repository.SyncRunRepository, menuRepo repository.MenuItemRepository, writer SheetWriter, logger *zap.Logger) SyncService {
	return &syncService{
		controller: controller,
		runRepo:    runRepo,
		menuRepo:   menuRepo,
		writer:     writer,
		logger:     logger,
	}
}

func (s *syncService) Trigger(ctx context.Context, userName string) (menusync.Result, error) {
	s.logger.Info("Manual menu sync requested", zap.String("user", userName))
	return s.controller.TriggerManualSync(ctx)
}

func (s *syncService) Status() SyncStatusResponse {
	return SyncStatusResponse{
		RealTime:    s.controller.RealTimeStatus(),
		CronEnabled: s.controller.CronEnabled(),
	}
}

func (s *syncService) RecentRuns(ctx context.Context, limit int) ([]model.SyncRun, error) {
	return s.runRepo.FindRecent(ctx, limit)
}

func (s *syncService) ExportToSheet(ctx context.Context, userName string) (int, error) {
	if s.writer == nil {
		return 0, ErrExportDisabled
	}

	items, err := s.menuRepo.FindAll(ctx, repository.MenuFilter{})
	if err != nil {
		return 0, err
	}

	rows := make([]menusync.SourceRow, len(items))
	for i, item := range items {
		rows[i] = menusync.SourceRow{Name: item.Name, Price: item.Price, Available: item.Available}
	}

	if err := s.writer.WriteAll(ctx, rows); err != nil {
		return 0, err
	}
	s.logger.Info("Menu exported to spreadsheet", zap.String("user", userName), zap.Int("rows", len(rows)))
	return len(rows), nil
}
