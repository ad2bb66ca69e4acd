package repository

import (
	"context"
	"time"

	"go-resto-admin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SyncActivityData untuk chart aktivitas sync per hari
type SyncActivityData struct {
	Date     string `json:"date"`
	Runs     int    `json:"runs"`
	Created  int    `json:"created"`
	Updated  int    `json:"updated"`
	Failures int    `json:"failures"`
}

type SyncRunRepository interface {
	Create(ctx context.Context, run *model.SyncRun) error
	FindRecent(ctx context.Context, limit int) ([]model.SyncRun, error)
	GetActivity(ctx context.Context, startDate, endDate time.Time) ([]SyncActivityData, error)
}

type syncRunRepo struct {
	db *gorm.DB
}

func NewSyncRunRepo(db *gorm.DB) SyncRunRepository {
	return &syncRunRepo{db}
}

func (r *syncRunRepo) Create(ctx context.Context, run *model.SyncRun) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *syncRunRepo) FindRecent(ctx context.Context, limit int) ([]model.SyncRun, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var runs []model.SyncRun
	err := r.db.WithContext(ctx).Order("started_at DESC").Limit(limit).Find(&runs).Error
	return runs, err
}

func (r *syncRunRepo) GetActivity(ctx context.Context, startDate, endDate time.Time) ([]SyncActivityData, error) {
	var results []SyncActivityData

	rows, err := r.db.WithContext(ctx).Model(&model.SyncRun{}).
		Select(`
			DATE(started_at) as date,
			COUNT(*) as runs,
			COALESCE(SUM(created), 0) as created,
			COALESCE(SUM(updated), 0) as updated,
			COALESCE(SUM(CASE WHEN error <> '' OR failed > 0 THEN 1 ELSE 0 END), 0) as failures
		`).
		Where("started_at BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(started_at)").
		Order("date ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data SyncActivityData
		if err := rows.Scan(&data.Date, &data.Runs, &data.Created, &data.Updated, &data.Failures); err != nil {
			return nil, err
		}
		// postgres returns DATE as a timestamp string
		if len(data.Date) > 10 {
			data.Date = data.Date[:10]
		}
		results = append(results, data)
	}

	return results, rows.Err()
}
