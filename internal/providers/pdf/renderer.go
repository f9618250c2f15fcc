// Package pdf renders scenario reports with maroto. The layout (section
// order, field order, labels) is a fixed contract; nothing here is
// caller-configurable beyond the document title and currency symbol.
package pdf

import (
	"fmt"
	"time"

	"github.com/flowmetriclabs/aproi/internal/config"
	reportdomain "github.com/flowmetriclabs/aproi/internal/report/domain"
	scenariodomain "github.com/flowmetriclabs/aproi/internal/scenario/domain"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotocfg "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type Renderer struct {
	title          string
	currencySymbol string
}

func NewRenderer(cfg config.Config) reportdomain.Renderer {
	title := cfg.Report.Title
	if title == "" {
		title = "ROI Analysis Report"
	}
	symbol := cfg.Report.CurrencySymbol
	if symbol == "" {
		symbol = "$"
	}
	return &Renderer{title: title, currencySymbol: symbol}
}

func (r *Renderer) Render(scenario scenariodomain.Response, generatedAt time.Time) ([]byte, error) {
	m := maroto.New(marotocfg.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build())

	m.AddRow(14, text.NewCol(12, r.title, props.Text{
		Size:  20,
		Style: fontstyle.Bold,
		Align: align.Center,
	}))
	m.AddRow(10, text.NewCol(12, "Scenario: "+scenario.Inputs.ScenarioName, props.Text{
		Size: 14,
	}))
	m.AddRow(8, text.NewCol(12, "Generated: "+generatedAt.Format("January 2, 2006"), props.Text{
		Size: 10,
	}))

	addSection(m, "Input Parameters", r.inputRows(scenario))
	addSection(m, "Results", r.resultRows(scenario))

	m.AddRow(6)
	m.AddRow(10, text.NewCol(12, "Executive Summary", props.Text{
		Size:  13,
		Style: fontstyle.Bold,
	}))
	m.AddRow(24, text.NewCol(12, r.summary(scenario), props.Text{
		Size: 10,
	}))

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

type labeledValue struct {
	label string
	value string
}

func addSection(m core.Maroto, title string, rows []labeledValue) {
	m.AddRow(6)
	m.AddRow(10, text.NewCol(12, title, props.Text{
		Size:  13,
		Style: fontstyle.Bold,
	}))
	for _, item := range rows {
		m.AddRow(6,
			text.NewCol(6, item.label, props.Text{Size: 10}),
			text.NewCol(6, item.value, props.Text{Size: 10}),
		)
	}
}

func (r *Renderer) inputRows(s scenariodomain.Response) []labeledValue {
	in := s.Inputs
	return []labeledValue{
		{"Scenario Name:", in.ScenarioName},
		{"Monthly Invoice Volume:", formatCount(in.MonthlyInvoiceVolume)},
		{"AP Staff Count:", formatCount(in.NumAPStaff)},
		{"Hours per Invoice:", formatHours(in.AvgHoursPerInvoice)},
		{"Hourly Wage:", formatCurrency(r.currencySymbol, in.HourlyWage)},
		{"Manual Error Rate:", formatPercent(in.ErrorRateManual)},
		{"Cost per Error:", formatCurrency(r.currencySymbol, in.ErrorCost)},
		{"Time Horizon:", formatCount(in.TimeHorizonMonths) + " months"},
		{"Implementation Cost:", formatCurrency(r.currencySymbol, in.OneTimeImplementationCost)},
	}
}

func (r *Renderer) resultRows(s scenariodomain.Response) []labeledValue {
	out := s.Results
	return []labeledValue{
		{"Monthly Labor Cost (Manual):", formatCurrency(r.currencySymbol, out.MonthlyLaborCostManual)},
		{"Monthly Automation Cost:", formatCurrency(r.currencySymbol, out.MonthlyAutomationCost)},
		{"Monthly Error Savings:", formatCurrency(r.currencySymbol, out.MonthlyErrorSavings)},
		{"Monthly Savings:", formatCurrency(r.currencySymbol, out.MonthlySavings)},
		{"Cumulative Savings:", formatCurrency(r.currencySymbol, out.CumulativeSavings)},
		{"Net Savings:", formatCurrency(r.currencySymbol, out.NetSavings)},
		{"Payback Period:", r.paybackText(s)},
		{"ROI Percentage:", r.roiText(s)},
	}
}

func (r *Renderer) paybackText(s scenariodomain.Response) string {
	if s.Results.PaybackMonths == nil {
		return "undefined"
	}
	return formatMonths(*s.Results.PaybackMonths)
}

func (r *Renderer) roiText(s scenariodomain.Response) string {
	if s.Results.ROIUnbounded {
		return "unbounded (no implementation cost)"
	}
	if s.Results.ROIPercentage == nil {
		return "undefined"
	}
	return formatPercent(*s.Results.ROIPercentage)
}

func (r *Renderer) summary(s scenariodomain.Response) string {
	return fmt.Sprintf(
		"This analysis shows that automating your invoicing process will generate monthly savings of %s, with a payback period of %s and an ROI of %s over %d months.",
		formatCurrency(r.currencySymbol, s.Results.MonthlySavings),
		r.paybackText(s),
		r.roiText(s),
		s.Inputs.TimeHorizonMonths,
	)
}
