package domain

import (
	"context"
	"errors"
	"time"

	"github.com/flowmetriclabs/aproi/internal/calc"
)

type Service interface {
	// Simulate validates and computes without persisting anything.
	Simulate(ctx context.Context, req CreateRequest) (*Estimate, error)
	// Create validates, recomputes results server-side, and persists one
	// immutable scenario. Caller-supplied results are never accepted.
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	List(ctx context.Context) ([]Response, error)
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	ScenarioName              string         `json:"scenario_name"`
	MonthlyInvoiceVolume      int64          `json:"monthly_invoice_volume"`
	NumAPStaff                int64          `json:"num_ap_staff"`
	AvgHoursPerInvoice        float64        `json:"avg_hours_per_invoice"`
	HourlyWage                float64        `json:"hourly_wage"`
	ErrorRateManual           float64        `json:"error_rate_manual"`
	ErrorCost                 float64        `json:"error_cost"`
	TimeHorizonMonths         int64          `json:"time_horizon_months"`
	OneTimeImplementationCost *float64       `json:"one_time_implementation_cost"`
	Metadata                  map[string]any `json:"metadata,omitempty"`
}

// Estimate is a computed-but-unsaved scenario.
type Estimate struct {
	Inputs  calc.Inputs  `json:"inputs"`
	Results calc.Results `json:"results"`
}

type Response struct {
	ID        string         `json:"id"`
	Inputs    calc.Inputs    `json:"inputs"`
	Results   calc.Results   `json:"results"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

var (
	ErrInvalidScenarioName       = errors.New("invalid_scenario_name")
	ErrInvalidInvoiceVolume      = errors.New("invalid_monthly_invoice_volume")
	ErrInvalidStaffCount         = errors.New("invalid_num_ap_staff")
	ErrInvalidHoursPerInvoice    = errors.New("invalid_avg_hours_per_invoice")
	ErrInvalidHourlyWage         = errors.New("invalid_hourly_wage")
	ErrInvalidErrorRate          = errors.New("invalid_error_rate_manual")
	ErrInvalidErrorCost          = errors.New("invalid_error_cost")
	ErrInvalidTimeHorizon        = errors.New("invalid_time_horizon_months")
	ErrInvalidImplementationCost = errors.New("invalid_one_time_implementation_cost")
	ErrInvalidID                 = errors.New("invalid_scenario_id")
	ErrNotFound                  = errors.New("scenario_not_found")
)
