package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/flowmetriclabs/aproi/internal/lead/domain"
	"github.com/golang/snappy"
	"gorm.io/gorm"
)

type ExportService struct {
	db   *gorm.DB
	repo domain.Repository
}

func NewExportService(db *gorm.DB, repo domain.Repository) domain.ExportService {
	return &ExportService{db: db, repo: repo}
}

// Export renders the lead log over a date range for the follow-up pipeline.
// The checksum is computed over the uncompressed payload so receivers can
// verify integrity after decompression.
func (s *ExportService) Export(ctx context.Context, req domain.ExportRequest) (*domain.ExportResult, error) {
	rows, err := s.repo.FindByRange(ctx, s.db, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	var data []byte
	switch req.Format {
	case domain.ExportFormatCSV:
		data, err = formatCSV(rows)
	case domain.ExportFormatJSON:
		data, err = formatJSON(rows)
	default:
		return nil, domain.ErrInvalidFormat
	}
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(data)
	result := &domain.ExportResult{
		Data:     data,
		Checksum: hex.EncodeToString(sum[:]),
		Format:   req.Format,
		Count:    len(rows),
	}

	if req.Compress {
		result.Data = snappy.Encode(nil, data)
		result.Compressed = true
	}
	return result, nil
}

func formatCSV(rows []domain.ReportRequest) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "scenario_id", "email", "requested_at"}); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := []string{
			row.ID,
			row.ScenarioID.String(),
			row.Email,
			row.RequestedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatJSON(rows []domain.ReportRequest) ([]byte, error) {
	type record struct {
		ID          string `json:"id"`
		ScenarioID  string `json:"scenario_id"`
		Email       string `json:"email"`
		RequestedAt string `json:"requested_at"`
	}

	records := make([]record, 0, len(rows))
	for _, row := range rows {
		records = append(records, record{
			ID:          row.ID,
			ScenarioID:  row.ScenarioID.String(),
			Email:       row.Email,
			RequestedAt: row.RequestedAt.Format(time.RFC3339),
		})
	}
	return json.Marshal(records)
}
