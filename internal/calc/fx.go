package calc

import (
	"github.com/flowmetriclabs/aproi/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("calc",
	fx.Provide(ProvideEngine),
)

// ProvideEngine builds the engine from configuration, falling back to the
// published defaults for any assumption left at zero. The savings adjustment
// is logged at startup so the uplift is never silent.
func ProvideEngine(cfg config.Config, log *zap.Logger) *Engine {
	a := Assumptions{
		AutomatedCostPerInvoice: cfg.Calculator.AutomatedCostPerInvoice,
		AutomatedErrorRate:      cfg.Calculator.AutomatedErrorRate,
		SavingsAdjustment:       cfg.Calculator.SavingsAdjustment,
	}
	defaults := DefaultAssumptions()
	if a.AutomatedCostPerInvoice <= 0 {
		a.AutomatedCostPerInvoice = defaults.AutomatedCostPerInvoice
	}
	if a.AutomatedErrorRate <= 0 {
		a.AutomatedErrorRate = defaults.AutomatedErrorRate
	}
	if a.SavingsAdjustment <= 0 {
		a.SavingsAdjustment = defaults.SavingsAdjustment
	}

	log.Named("calc").Info("calculation assumptions loaded",
		zap.Float64("automated_cost_per_invoice", a.AutomatedCostPerInvoice),
		zap.Float64("automated_error_rate", a.AutomatedErrorRate),
		zap.Float64("savings_adjustment", a.SavingsAdjustment),
	)
	return NewEngine(a)
}
