package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baselineInputs() Inputs {
	return Inputs{
		ScenarioName:              "Q3 Pilot",
		MonthlyInvoiceVolume:      2000,
		NumAPStaff:                3,
		AvgHoursPerInvoice:        0.17,
		HourlyWage:                30,
		ErrorRateManual:           0.5,
		ErrorCost:                 100,
		TimeHorizonMonths:         36,
		OneTimeImplementationCost: 50000,
	}
}

func TestComputeBaselineScenario(t *testing.T) {
	engine := NewEngine(DefaultAssumptions())
	out := engine.Compute(baselineInputs())

	assert.Equal(t, 30600.00, out.MonthlyLaborCostManual)
	assert.Equal(t, 400.00, out.MonthlyAutomationCost)
	assert.Equal(t, 800.00, out.MonthlyErrorSavings)
	assert.Equal(t, 34100.00, out.MonthlySavings)
	assert.Equal(t, 1227600.00, out.CumulativeSavings)
	assert.Equal(t, 1177600.00, out.NetSavings)
	require.NotNil(t, out.PaybackMonths)
	require.NotNil(t, out.ROIPercentage)
	assert.Equal(t, 1.5, *out.PaybackMonths)
	assert.Equal(t, 2355.2, *out.ROIPercentage)
	assert.False(t, out.ROIUnbounded)
}

func TestComputeIsDeterministic(t *testing.T) {
	engine := NewEngine(DefaultAssumptions())
	in := baselineInputs()
	first := engine.Compute(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, engine.Compute(in))
	}
}

func TestComputeMonotonicity(t *testing.T) {
	engine := NewEngine(DefaultAssumptions())

	low := baselineInputs()
	high := baselineInputs()
	high.HourlyWage = low.HourlyWage + 5
	assert.Greater(t,
		engine.Compute(high).MonthlyLaborCostManual,
		engine.Compute(low).MonthlyLaborCostManual,
	)

	cheap := baselineInputs()
	expensive := baselineInputs()
	expensive.OneTimeImplementationCost = cheap.OneTimeImplementationCost + 25000
	cheapOut := engine.Compute(cheap)
	expensiveOut := engine.Compute(expensive)
	assert.Less(t, expensiveOut.NetSavings, cheapOut.NetSavings)
	require.NotNil(t, cheapOut.PaybackMonths)
	require.NotNil(t, expensiveOut.PaybackMonths)
	assert.Greater(t, *expensiveOut.PaybackMonths, *cheapOut.PaybackMonths)
}

func TestComputeRoundingClosure(t *testing.T) {
	engine := NewEngine(DefaultAssumptions())
	in := baselineInputs()
	in.AvgHoursPerInvoice = 0.1234
	in.HourlyWage = 29.99
	in.ErrorRateManual = 1.7
	out := engine.Compute(in)

	for _, v := range []float64{
		out.MonthlyLaborCostManual,
		out.MonthlyAutomationCost,
		out.MonthlyErrorSavings,
		out.MonthlySavings,
		out.CumulativeSavings,
		out.NetSavings,
	} {
		assert.InDelta(t, v, math.Round(v*100)/100, 1e-9)
	}
	require.NotNil(t, out.PaybackMonths)
	require.NotNil(t, out.ROIPercentage)
	assert.InDelta(t, *out.PaybackMonths, math.Round(*out.PaybackMonths*10)/10, 1e-9)
	assert.InDelta(t, *out.ROIPercentage, math.Round(*out.ROIPercentage*10)/10, 1e-9)
}

func TestComputeZeroImplementationCost(t *testing.T) {
	engine := NewEngine(DefaultAssumptions())
	in := baselineInputs()
	in.OneTimeImplementationCost = 0
	out := engine.Compute(in)

	require.NotNil(t, out.PaybackMonths)
	assert.Equal(t, 0.0, *out.PaybackMonths)
	assert.Nil(t, out.ROIPercentage)
	assert.True(t, out.ROIUnbounded)
}

func TestComputeZeroMonthlySavings(t *testing.T) {
	// Assumptions chosen so labor + error savings exactly cancel the
	// automation cost: raw savings 0, adjusted savings 0.
	engine := NewEngine(Assumptions{
		AutomatedCostPerInvoice: 1,
		AutomatedErrorRate:      0.001,
		SavingsAdjustment:       1.1,
	})
	in := Inputs{
		ScenarioName:              "wash",
		MonthlyInvoiceVolume:      100,
		NumAPStaff:                1,
		AvgHoursPerInvoice:        0.01,
		HourlyWage:                100,
		ErrorRateManual:           0.1,
		ErrorCost:                 100,
		TimeHorizonMonths:         12,
		OneTimeImplementationCost: 1000,
	}
	out := engine.Compute(in)

	assert.Equal(t, 0.0, out.MonthlySavings)
	assert.Nil(t, out.PaybackMonths)
	assert.Nil(t, out.ROIPercentage)
	assert.False(t, out.ROIUnbounded)
}

func TestComputeNegativeSavingsPropagate(t *testing.T) {
	// Manual side already cheap and accurate: automation loses money.
	engine := NewEngine(DefaultAssumptions())
	in := Inputs{
		ScenarioName:              "already lean",
		MonthlyInvoiceVolume:      1000,
		NumAPStaff:                1,
		AvgHoursPerInvoice:        0.001,
		HourlyWage:                20,
		ErrorRateManual:           0.05, // below the automated 0.1%
		ErrorCost:                 50,
		TimeHorizonMonths:         12,
		OneTimeImplementationCost: 5000,
	}
	out := engine.Compute(in)

	assert.Negative(t, out.MonthlyErrorSavings)
	assert.Negative(t, out.MonthlySavings)
	assert.Negative(t, out.NetSavings)
	require.NotNil(t, out.PaybackMonths)
	require.NotNil(t, out.ROIPercentage)
	assert.Negative(t, *out.PaybackMonths)
	assert.Negative(t, *out.ROIPercentage)
}

func TestComputeHonorsAssumptionOverrides(t *testing.T) {
	in := baselineInputs()
	unbiased := NewEngine(Assumptions{
		AutomatedCostPerInvoice: 0.20,
		AutomatedErrorRate:      0.001,
		SavingsAdjustment:       1.0,
	})
	out := unbiased.Compute(in)
	// 30600 + 800 - 400, no uplift.
	assert.Equal(t, 31000.00, out.MonthlySavings)
}

func TestRoundToHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 0.13, roundTo(0.125, 2))
	assert.Equal(t, -0.13, roundTo(-0.125, 2))
	assert.Equal(t, 1.5, roundTo(1.45, 1))
	assert.Equal(t, -1.5, roundTo(-1.45, 1))
}
