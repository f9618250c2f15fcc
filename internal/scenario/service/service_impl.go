package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/flowmetriclabs/aproi/internal/calc"
	"github.com/flowmetriclabs/aproi/internal/clock"
	"github.com/flowmetriclabs/aproi/internal/scenario/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Clock  clock.Clock
	Engine *calc.Engine
	Repo   domain.Repository
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	genID  *snowflake.Node
	clock  clock.Clock
	engine *calc.Engine
	repo   domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("scenario.service"),
		genID:  p.GenID,
		clock:  p.Clock,
		engine: p.Engine,
		repo:   p.Repo,
	}
}

func (s *Service) Simulate(_ context.Context, req domain.CreateRequest) (*domain.Estimate, error) {
	inputs, err := validate(req)
	if err != nil {
		return nil, err
	}
	results := s.engine.Compute(inputs)
	return &domain.Estimate{Inputs: inputs, Results: results}, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	inputs, err := validate(req)
	if err != nil {
		return nil, err
	}
	results := s.engine.Compute(inputs)

	row := &domain.Scenario{
		ID: s.genID.Generate(),

		ScenarioName:              inputs.ScenarioName,
		MonthlyInvoiceVolume:      inputs.MonthlyInvoiceVolume,
		NumAPStaff:                inputs.NumAPStaff,
		AvgHoursPerInvoice:        inputs.AvgHoursPerInvoice,
		HourlyWage:                inputs.HourlyWage,
		ErrorRateManual:           inputs.ErrorRateManual,
		ErrorCost:                 inputs.ErrorCost,
		TimeHorizonMonths:         inputs.TimeHorizonMonths,
		OneTimeImplementationCost: inputs.OneTimeImplementationCost,

		MonthlyLaborCostManual: results.MonthlyLaborCostManual,
		MonthlyAutomationCost:  results.MonthlyAutomationCost,
		MonthlyErrorSavings:    results.MonthlyErrorSavings,
		MonthlySavings:         results.MonthlySavings,
		CumulativeSavings:      results.CumulativeSavings,
		NetSavings:             results.NetSavings,
		PaybackMonths:          results.PaybackMonths,
		ROIPercentage:          results.ROIPercentage,
		ROIUnbounded:           results.ROIUnbounded,

		CreatedAt: s.clock.Now(ctx),
	}
	if req.Metadata != nil {
		row.Metadata = datatypes.JSONMap(req.Metadata)
	}

	if err := s.repo.Insert(ctx, s.db, row); err != nil {
		s.log.Error("persist scenario failed", zap.Error(err))
		return nil, err
	}

	resp := toResponse(row)
	return &resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	scenarioID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	row, err := s.repo.FindByID(ctx, s.db, scenarioID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}

	resp := toResponse(row)
	return &resp, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Response, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}
	resp := make([]domain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, toResponse(&items[i]))
	}
	return resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	scenarioID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	deleted, err := s.repo.Delete(ctx, s.db, scenarioID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrNotFound
	}
	s.log.Info("scenario deleted", zap.String("scenario_id", scenarioID.String()))
	return nil
}

// validate normalizes the request into engine inputs, applying the default
// zero implementation cost. Each failure names the offending field.
func validate(req domain.CreateRequest) (calc.Inputs, error) {
	name := strings.TrimSpace(req.ScenarioName)
	if name == "" {
		return calc.Inputs{}, domain.ErrInvalidScenarioName
	}
	if req.MonthlyInvoiceVolume <= 0 {
		return calc.Inputs{}, domain.ErrInvalidInvoiceVolume
	}
	if req.NumAPStaff <= 0 {
		return calc.Inputs{}, domain.ErrInvalidStaffCount
	}
	if req.AvgHoursPerInvoice <= 0 {
		return calc.Inputs{}, domain.ErrInvalidHoursPerInvoice
	}
	if req.HourlyWage <= 0 {
		return calc.Inputs{}, domain.ErrInvalidHourlyWage
	}
	if req.ErrorRateManual < 0 || req.ErrorRateManual > 100 {
		return calc.Inputs{}, domain.ErrInvalidErrorRate
	}
	if req.ErrorCost < 0 {
		return calc.Inputs{}, domain.ErrInvalidErrorCost
	}
	if req.TimeHorizonMonths <= 0 {
		return calc.Inputs{}, domain.ErrInvalidTimeHorizon
	}

	implementationCost := 0.0
	if req.OneTimeImplementationCost != nil {
		if *req.OneTimeImplementationCost < 0 {
			return calc.Inputs{}, domain.ErrInvalidImplementationCost
		}
		implementationCost = *req.OneTimeImplementationCost
	}

	return calc.Inputs{
		ScenarioName:              name,
		MonthlyInvoiceVolume:      req.MonthlyInvoiceVolume,
		NumAPStaff:                req.NumAPStaff,
		AvgHoursPerInvoice:        req.AvgHoursPerInvoice,
		HourlyWage:                req.HourlyWage,
		ErrorRateManual:           req.ErrorRateManual,
		ErrorCost:                 req.ErrorCost,
		TimeHorizonMonths:         req.TimeHorizonMonths,
		OneTimeImplementationCost: implementationCost,
	}, nil
}

func toResponse(row *domain.Scenario) domain.Response {
	resp := domain.Response{
		ID: row.ID.String(),
		Inputs: calc.Inputs{
			ScenarioName:              row.ScenarioName,
			MonthlyInvoiceVolume:      row.MonthlyInvoiceVolume,
			NumAPStaff:                row.NumAPStaff,
			AvgHoursPerInvoice:        row.AvgHoursPerInvoice,
			HourlyWage:                row.HourlyWage,
			ErrorRateManual:           row.ErrorRateManual,
			ErrorCost:                 row.ErrorCost,
			TimeHorizonMonths:         row.TimeHorizonMonths,
			OneTimeImplementationCost: row.OneTimeImplementationCost,
		},
		Results: calc.Results{
			MonthlyLaborCostManual: row.MonthlyLaborCostManual,
			MonthlyAutomationCost:  row.MonthlyAutomationCost,
			MonthlyErrorSavings:    row.MonthlyErrorSavings,
			MonthlySavings:         row.MonthlySavings,
			CumulativeSavings:      row.CumulativeSavings,
			NetSavings:             row.NetSavings,
			PaybackMonths:          row.PaybackMonths,
			ROIPercentage:          row.ROIPercentage,
			ROIUnbounded:           row.ROIUnbounded,
		},
		CreatedAt: row.CreatedAt,
	}
	if len(row.Metadata) > 0 {
		resp.Metadata = map[string]any(row.Metadata)
	}
	return resp
}
