package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, req *ReportRequest) error
	// FindByRange returns log entries with requested_at in [start, end),
	// oldest first, for export.
	FindByRange(ctx context.Context, db *gorm.DB, start, end time.Time) ([]ReportRequest, error)
}
