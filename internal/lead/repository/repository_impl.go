package repository

import (
	"context"
	"time"

	"github.com/flowmetriclabs/aproi/internal/lead/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, req *domain.ReportRequest) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO report_requests (id, scenario_id, email, requested_at, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		req.ID,
		req.ScenarioID,
		req.Email,
		req.RequestedAt,
		req.CreatedAt,
	).Error
}

func (r *repo) FindByRange(ctx context.Context, db *gorm.DB, start, end time.Time) ([]domain.ReportRequest, error) {
	var items []domain.ReportRequest
	err := db.WithContext(ctx).
		Model(&domain.ReportRequest{}).
		Where("requested_at >= ? AND requested_at < ?", start, end).
		Order("requested_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
