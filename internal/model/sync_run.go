package model

import (
	"time"

	"github.com/google/uuid"
)

type SyncTrigger string

const (
	TriggerCron     SyncTrigger = "cron"
	TriggerRealTime SyncTrigger = "realtime"
	TriggerManual   SyncTrigger = "manual"
)

// SyncRun records the outcome of one fetch-and-reconcile pass.
type SyncRun struct {
	ID         uuid.UUID   `gorm:"type:uuid;primary_key;" json:"id"`
	Trigger    SyncTrigger `gorm:"type:varchar(20);not null;index" json:"trigger"`
	StartedAt  time.Time   `gorm:"not null;index" json:"started_at"`
	FinishedAt time.Time   `json:"finished_at"`
	Fetched    int         `gorm:"default:0" json:"fetched"`
	Created    int         `gorm:"default:0" json:"created"`
	Updated    int         `gorm:"default:0" json:"updated"`
	Failed     int         `gorm:"default:0" json:"failed"`
	Error      string      `gorm:"type:text" json:"error,omitempty"`
}

func (SyncRun) TableName() string {
	return "sync_runs"
}

// Changed reports whether the pass wrote anything to the menu.
func (r *SyncRun) Changed() bool {
	return r.Created > 0 || r.Updated > 0
}
