package service

import (
	"context"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/flowmetriclabs/aproi/internal/lead/domain"
	"github.com/flowmetriclabs/aproi/internal/lead/repository"
	"github.com/golang/snappy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedLeads(t *testing.T, db *gorm.DB, rec domain.Recorder, n int) snowflake.ID {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	scenarioID := node.Generate()

	for i := 0; i < n; i++ {
		_, err := rec.Record(context.Background(), scenarioID, "buyer@example.com")
		require.NoError(t, err)
	}
	return scenarioID
}

func TestExport_CSV(t *testing.T) {
	db := newTestDB(t)
	at := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	rec := newTestRecorder(t, db, at)
	scenarioID := seedLeads(t, db, rec, 3)

	svc := NewExportService(db, repository.Provide())
	result, err := svc.Export(context.Background(), domain.ExportRequest{
		StartDate: at.Add(-time.Hour),
		EndDate:   at.Add(time.Hour),
		Format:    domain.ExportFormatCSV,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Count)
	assert.False(t, result.Compressed)

	records, err := csv.NewReader(strings.NewReader(string(result.Data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"id", "scenario_id", "email", "requested_at"}, records[0])
	assert.Equal(t, scenarioID.String(), records[1][1])

	sum := sha256.Sum256(result.Data)
	assert.Equal(t, hex.EncodeToString(sum[:]), result.Checksum)
}

func TestExport_JSON(t *testing.T) {
	db := newTestDB(t)
	at := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	rec := newTestRecorder(t, db, at)
	seedLeads(t, db, rec, 2)

	svc := NewExportService(db, repository.Provide())
	result, err := svc.Export(context.Background(), domain.ExportRequest{
		StartDate: at.Add(-time.Hour),
		EndDate:   at.Add(time.Hour),
		Format:    domain.ExportFormatJSON,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)

	var records []map[string]string
	require.NoError(t, json.Unmarshal(result.Data, &records))
	require.Len(t, records, 2)
	assert.Equal(t, "buyer@example.com", records[0]["email"])
}

func TestExport_SnappyRoundTrip(t *testing.T) {
	db := newTestDB(t)
	at := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	rec := newTestRecorder(t, db, at)
	seedLeads(t, db, rec, 5)

	svc := NewExportService(db, repository.Provide())
	result, err := svc.Export(context.Background(), domain.ExportRequest{
		StartDate: at.Add(-time.Hour),
		EndDate:   at.Add(time.Hour),
		Format:    domain.ExportFormatCSV,
		Compress:  true,
	})
	require.NoError(t, err)
	assert.True(t, result.Compressed)

	decoded, err := snappy.Decode(nil, result.Data)
	require.NoError(t, err)

	// Checksum covers the uncompressed payload.
	sum := sha256.Sum256(decoded)
	assert.Equal(t, hex.EncodeToString(sum[:]), result.Checksum)
}

func TestExport_RangeIsHalfOpen(t *testing.T) {
	db := newTestDB(t)
	at := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	rec := newTestRecorder(t, db, at)
	seedLeads(t, db, rec, 1)

	svc := NewExportService(db, repository.Provide())

	// End date equal to the capture instant excludes it.
	result, err := svc.Export(context.Background(), domain.ExportRequest{
		StartDate: at.Add(-24 * time.Hour),
		EndDate:   at,
		Format:    domain.ExportFormatCSV,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)

	result, err = svc.Export(context.Background(), domain.ExportRequest{
		StartDate: at,
		EndDate:   at.Add(24 * time.Hour),
		Format:    domain.ExportFormatCSV,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
}

func TestExport_UnknownFormat(t *testing.T) {
	db := newTestDB(t)
	svc := NewExportService(db, repository.Provide())

	_, err := svc.Export(context.Background(), domain.ExportRequest{
		StartDate: time.Now().Add(-time.Hour),
		EndDate:   time.Now(),
		Format:    domain.ExportFormat("xml"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
}
