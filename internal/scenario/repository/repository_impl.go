package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/flowmetriclabs/aproi/internal/scenario/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, s *domain.Scenario) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO scenarios (
			id, scenario_name, monthly_invoice_volume, num_ap_staff,
			avg_hours_per_invoice, hourly_wage, error_rate_manual, error_cost,
			time_horizon_months, one_time_implementation_cost,
			monthly_labor_cost_manual, monthly_automation_cost, monthly_error_savings,
			monthly_savings, cumulative_savings, net_savings,
			payback_months, roi_percentage, roi_unbounded,
			metadata, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID,
		s.ScenarioName,
		s.MonthlyInvoiceVolume,
		s.NumAPStaff,
		s.AvgHoursPerInvoice,
		s.HourlyWage,
		s.ErrorRateManual,
		s.ErrorCost,
		s.TimeHorizonMonths,
		s.OneTimeImplementationCost,
		s.MonthlyLaborCostManual,
		s.MonthlyAutomationCost,
		s.MonthlyErrorSavings,
		s.MonthlySavings,
		s.CumulativeSavings,
		s.NetSavings,
		s.PaybackMonths,
		s.ROIPercentage,
		s.ROIUnbounded,
		s.Metadata,
		s.CreatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Scenario, error) {
	var s domain.Scenario
	err := db.WithContext(ctx).
		Model(&domain.Scenario{}).
		Where("id = ?", id).
		Limit(1).
		Find(&s).Error
	if err != nil {
		return nil, err
	}
	if s.ID == 0 {
		return nil, nil
	}
	return &s, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Scenario, error) {
	var items []domain.Scenario
	err := db.WithContext(ctx).
		Model(&domain.Scenario{}).
		Order("created_at DESC, id DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error) {
	tx := db.WithContext(ctx).Exec(`DELETE FROM scenarios WHERE id = ?`, id)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
