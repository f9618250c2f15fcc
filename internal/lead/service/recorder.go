package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/flowmetriclabs/aproi/internal/clock"
	"github.com/flowmetriclabs/aproi/internal/lead/domain"
	"github.com/oklog/ulid/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	Repo  domain.Repository
}

type Recorder struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	repo  domain.Repository
}

func NewRecorder(p Params) domain.Recorder {
	return &Recorder{
		db:    p.DB,
		log:   p.Log.Named("lead.recorder"),
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (r *Recorder) Record(ctx context.Context, scenarioID snowflake.ID, email string) (*domain.ReportRequest, error) {
	email = strings.TrimSpace(email)
	if err := domain.ValidateEmail(email); err != nil {
		return nil, err
	}

	now := r.clock.Now(ctx)
	row := &domain.ReportRequest{
		ID:          ulid.Make().String(),
		ScenarioID:  scenarioID,
		Email:       email,
		RequestedAt: now,
		CreatedAt:   now,
	}
	if err := r.repo.Insert(ctx, r.db, row); err != nil {
		return nil, err
	}

	r.log.Info("lead captured",
		zap.String("report_request_id", row.ID),
		zap.String("scenario_id", scenarioID.String()),
	)
	return row, nil
}
