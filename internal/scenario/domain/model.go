// Package domain contains the persistence model and service contracts for
// saved ROI scenarios.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Scenario is one immutable named set of invoicing-automation inputs plus
// the derived financial results. Results are always the calculation engine's
// output for the stored inputs; the row is never updated after creation.
type Scenario struct {
	ID snowflake.ID `gorm:"primaryKey"`

	ScenarioName              string  `gorm:"type:text;not null"`
	MonthlyInvoiceVolume      int64   `gorm:"not null"`
	NumAPStaff                int64   `gorm:"column:num_ap_staff;not null"`
	AvgHoursPerInvoice        float64 `gorm:"type:numeric(12,4);not null"`
	HourlyWage                float64 `gorm:"type:numeric(12,2);not null"`
	ErrorRateManual           float64 `gorm:"type:numeric(6,3);not null"`
	ErrorCost                 float64 `gorm:"type:numeric(12,2);not null"`
	TimeHorizonMonths         int64   `gorm:"not null"`
	OneTimeImplementationCost float64 `gorm:"type:numeric(14,2);not null"`

	MonthlyLaborCostManual float64  `gorm:"type:numeric(14,2);not null"`
	MonthlyAutomationCost  float64  `gorm:"type:numeric(14,2);not null"`
	MonthlyErrorSavings    float64  `gorm:"type:numeric(14,2);not null"`
	MonthlySavings         float64  `gorm:"type:numeric(14,2);not null"`
	CumulativeSavings      float64  `gorm:"type:numeric(16,2);not null"`
	NetSavings             float64  `gorm:"type:numeric(16,2);not null"`
	PaybackMonths          *float64 `gorm:"type:numeric(10,1)"`
	ROIPercentage          *float64 `gorm:"column:roi_percentage;type:numeric(12,1)"`
	ROIUnbounded           bool     `gorm:"column:roi_unbounded;not null;default:false"`

	Metadata  datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_scenarios_created_at,sort:desc"`
}

// TableName sets the database table name.
func (Scenario) TableName() string { return "scenarios" }
