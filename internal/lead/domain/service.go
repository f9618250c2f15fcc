package domain

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/bwmarrin/snowflake"
)

type Recorder interface {
	// Record appends one lead capture event. It validates the email but
	// does not check that the scenario still exists; the log holds only
	// a weak reference to the scenario id.
	Record(ctx context.Context, scenarioID snowflake.ID, email string) (*ReportRequest, error)
}

type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatJSON ExportFormat = "json"
)

type ExportRequest struct {
	StartDate time.Time
	EndDate   time.Time
	Format    ExportFormat
	Compress  bool
}

type ExportResult struct {
	Data       []byte
	Checksum   string
	Format     ExportFormat
	Count      int
	Compressed bool
}

type ExportService interface {
	Export(ctx context.Context, req ExportRequest) (*ExportResult, error)
}

var (
	ErrInvalidEmail  = errors.New("invalid_email")
	ErrInvalidFormat = errors.New("invalid_export_format")
)

// Deliberately permissive: one non-whitespace run, an @, and a domain
// containing a dot. Full RFC 5322 validation is not the goal here.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}
