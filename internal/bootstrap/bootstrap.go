// Package bootstrap builds the process-wide dependencies shared by the binaries under cmd/.
package bootstrap

import (
	"context"
	"fmt"

	"go-resto-admin/internal/config"
	"go-resto-admin/internal/menusync"
	"go-resto-admin/internal/model"
	"go-resto-admin/internal/repository"
	"go-resto-admin/pkg/database"
	"go-resto-admin/pkg/spreadsheet"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"gorm.io/gorm"
)

// NewLogger returns a development logger for APP_ENV=development and a production one otherwise.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// OpenDB connects and migrates every table the service owns.
func OpenDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := database.ConnectDB(cfg.DB, log)
	if err != nil {
		return nil, err
	}
	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	if err := db.AutoMigrate(
		&model.MenuItem{},
		&model.SyncRun{},
		&model.AboutUs{},
		&model.Privilege{},
		&model.Role{},
		&model.User{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// NewSheetSource returns nil when no spreadsheet is configured.
func NewSheetSource(ctx context.Context, cfg config.SyncConfig, opts ...option.ClientOption) (*menusync.SheetSource, error) {
	if cfg.SpreadsheetID == "" {
		return nil, nil
	}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := spreadsheet.NewClient(ctx, cfg.SpreadsheetID, opts...)
	if err != nil {
		return nil, err
	}
	return menusync.NewSheetSource(client, cfg.SheetRange), nil
}

// NewSyncer wires fetch, reconcile and run history around the given source.
// A nil source yields a syncer whose passes fail as source-unavailable.
func NewSyncer(db *gorm.DB, source *menusync.SheetSource, notifier menusync.Notifier, log *zap.Logger) *menusync.Syncer {
	var ds menusync.DataSource = menusync.DisabledSource{}
	if source != nil {
		ds = source
	}
	reconciler := menusync.NewReconciler(repository.NewMenuItemRepo(db), log)
	return menusync.NewSyncer(ds, reconciler, repository.NewSyncRunRepo(db), notifier, log)
}
