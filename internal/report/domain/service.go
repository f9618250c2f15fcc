// Package domain defines the report delivery contracts: validate the
// requester email, fetch the scenario, record the lead, render the PDF.
package domain

import (
	"context"
	"time"

	scenariodomain "github.com/flowmetriclabs/aproi/internal/scenario/domain"
)

type GenerateRequest struct {
	ScenarioID string `json:"scenario_id"`
	Email      string `json:"email"`
}

// Document is the rendered report plus delivery metadata. ReportRequestID is
// empty when lead recording failed; recording is best-effort and never
// blocks delivery.
type Document struct {
	Filename        string
	ContentType     string
	Data            []byte
	ReportRequestID string
}

type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (*Document, error)
}

// Renderer turns one persisted scenario into fixed-layout document bytes.
// Output is stable for a given scenario aside from the generatedAt date.
type Renderer interface {
	Render(scenario scenariodomain.Response, generatedAt time.Time) ([]byte, error)
}
