// Package calc implements the financial model for accounts-payable
// automation scenarios. Compute is pure: identical inputs always produce
// identical results, and only the returned values are rounded.
package calc

import "math"

// Assumptions are the policy constants applied to every scenario. They are
// injected rather than compiled in so tests and operators can override them.
type Assumptions struct {
	// AutomatedCostPerInvoice is the per-invoice processing fee once
	// automation is in place.
	AutomatedCostPerInvoice float64
	// AutomatedErrorRate is the residual error rate of the automated
	// workflow, expressed as a fraction (0.001 = 0.1%).
	AutomatedErrorRate float64
	// SavingsAdjustment is a flat multiplier applied to raw monthly savings.
	SavingsAdjustment float64
}

func DefaultAssumptions() Assumptions {
	return Assumptions{
		AutomatedCostPerInvoice: 0.20,
		AutomatedErrorRate:      0.001,
		SavingsAdjustment:       1.1,
	}
}

// Inputs is one validated set of operational parameters. Validation happens
// in the scenario service; Compute assumes the constraints already hold.
type Inputs struct {
	ScenarioName              string  `json:"scenario_name"`
	MonthlyInvoiceVolume      int64   `json:"monthly_invoice_volume"`
	NumAPStaff                int64   `json:"num_ap_staff"`
	AvgHoursPerInvoice        float64 `json:"avg_hours_per_invoice"`
	HourlyWage                float64 `json:"hourly_wage"`
	ErrorRateManual           float64 `json:"error_rate_manual"`
	ErrorCost                 float64 `json:"error_cost"`
	TimeHorizonMonths         int64   `json:"time_horizon_months"`
	OneTimeImplementationCost float64 `json:"one_time_implementation_cost"`
}

// Results are the derived metrics. Currency fields carry two fractional
// digits, PaybackMonths and ROIPercentage one. PaybackMonths is nil when
// monthly savings are exactly zero (payback never occurs by division).
// ROIPercentage is nil when undefined or unbounded; ROIUnbounded marks the
// zero-implementation-cost case where any positive savings repay instantly.
type Results struct {
	MonthlyLaborCostManual float64  `json:"monthly_labor_cost_manual"`
	MonthlyAutomationCost  float64  `json:"monthly_automation_cost"`
	MonthlyErrorSavings    float64  `json:"monthly_error_savings"`
	MonthlySavings         float64  `json:"monthly_savings"`
	CumulativeSavings      float64  `json:"cumulative_savings"`
	NetSavings             float64  `json:"net_savings"`
	PaybackMonths          *float64 `json:"payback_months"`
	ROIPercentage          *float64 `json:"roi_percentage"`
	ROIUnbounded           bool     `json:"roi_unbounded,omitempty"`
}

type Engine struct {
	assumptions Assumptions
}

func NewEngine(a Assumptions) *Engine {
	return &Engine{assumptions: a}
}

func (e *Engine) Assumptions() Assumptions { return e.assumptions }

// Compute derives all metrics from in. Intermediate values stay unrounded;
// rounding is applied once, to the returned fields.
func (e *Engine) Compute(in Inputs) Results {
	volume := float64(in.MonthlyInvoiceVolume)
	staff := float64(in.NumAPStaff)
	horizon := float64(in.TimeHorizonMonths)

	laborCost := staff * in.HourlyWage * in.AvgHoursPerInvoice * volume
	automationCost := volume * e.assumptions.AutomatedCostPerInvoice
	errorSavings := (in.ErrorRateManual/100 - e.assumptions.AutomatedErrorRate) * volume * in.ErrorCost

	rawMonthly := laborCost + errorSavings - automationCost
	monthly := rawMonthly * e.assumptions.SavingsAdjustment

	cumulative := monthly * horizon
	net := cumulative - in.OneTimeImplementationCost

	out := Results{
		MonthlyLaborCostManual: roundTo(laborCost, 2),
		MonthlyAutomationCost:  roundTo(automationCost, 2),
		MonthlyErrorSavings:    roundTo(errorSavings, 2),
		MonthlySavings:         roundTo(monthly, 2),
		CumulativeSavings:      roundTo(cumulative, 2),
		NetSavings:             roundTo(net, 2),
	}

	switch {
	case monthly == 0:
		// 0/0 or cost/0: payback and ROI are both undefined.
	case in.OneTimeImplementationCost == 0:
		zero := 0.0
		out.PaybackMonths = &zero
		out.ROIUnbounded = true
	default:
		payback := roundTo(in.OneTimeImplementationCost/monthly, 1)
		roi := roundTo(net/in.OneTimeImplementationCost*100, 1)
		out.PaybackMonths = &payback
		out.ROIPercentage = &roi
	}

	return out
}

// roundTo rounds half away from zero to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
