// Package domain contains the append-only lead capture log and its
// contracts. Rows are written once per report generation attempt that
// reaches the recording step and are never mutated or deleted.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// ReportRequest ties a requester email to a scenario at report time. The
// scenario reference is weak: deleting a scenario orphans its rows, which is
// acceptable for an audit log. IDs are ULIDs so the log sorts by creation
// time lexically.
type ReportRequest struct {
	ID          string       `gorm:"primaryKey;type:text"`
	ScenarioID  snowflake.ID `gorm:"not null;index"`
	Email       string       `gorm:"type:text;not null"`
	RequestedAt time.Time    `gorm:"not null"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (ReportRequest) TableName() string { return "report_requests" }
