package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/flowmetriclabs/aproi/internal/clock"
	leaddomain "github.com/flowmetriclabs/aproi/internal/lead/domain"
	reportdomain "github.com/flowmetriclabs/aproi/internal/report/domain"
	scenariodomain "github.com/flowmetriclabs/aproi/internal/scenario/domain"
	"github.com/gosimple/slug"
	"go.opentelemetry.io/otel"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log         *zap.Logger
	Clock       clock.Clock
	ScenarioSvc scenariodomain.Service
	Recorder    leaddomain.Recorder
	Renderer    reportdomain.Renderer
}

type Service struct {
	log         *zap.Logger
	clock       clock.Clock
	scenarioSvc scenariodomain.Service
	recorder    leaddomain.Recorder
	renderer    reportdomain.Renderer
}

func New(p Params) reportdomain.Service {
	return &Service{
		log:         p.Log.Named("report.service"),
		clock:       p.Clock,
		scenarioSvc: p.ScenarioSvc,
		recorder:    p.Recorder,
		renderer:    p.Renderer,
	}
}

// Generate walks the delivery path: validate email, fetch scenario, record
// lead, render. Validation and lookup failures reject the request before any
// rendering starts; a lead-recording failure is logged and delivery proceeds.
func (s *Service) Generate(ctx context.Context, req reportdomain.GenerateRequest) (*reportdomain.Document, error) {
	email := strings.TrimSpace(req.Email)
	if err := leaddomain.ValidateEmail(email); err != nil {
		return nil, err
	}

	scenario, err := s.scenarioSvc.Get(ctx, req.ScenarioID)
	if err != nil {
		return nil, err
	}

	var reportRequestID string
	scenarioID, err := snowflake.ParseString(scenario.ID)
	if err == nil {
		if captured, recordErr := s.recorder.Record(ctx, scenarioID, email); recordErr != nil {
			s.log.Warn("lead capture failed, report delivery continues",
				zap.String("scenario_id", scenario.ID),
				zap.Error(recordErr),
			)
			leadCaptureFailures.Inc()
		} else {
			reportRequestID = captured.ID
		}
	}

	renderCtx, span := otel.Tracer("report").Start(ctx, "report.render")
	data, err := s.renderer.Render(*scenario, s.clock.Now(renderCtx))
	span.End()
	if err != nil {
		s.log.Error("report rendering failed", zap.String("scenario_id", scenario.ID), zap.Error(err))
		return nil, err
	}

	reportsGenerated.Inc()
	return &reportdomain.Document{
		Filename:        "roi-report-" + slug.Make(scenario.Inputs.ScenarioName) + ".pdf",
		ContentType:     "application/pdf",
		Data:            data,
		ReportRequestID: reportRequestID,
	}, nil
}
