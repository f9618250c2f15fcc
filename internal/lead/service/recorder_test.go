package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/flowmetriclabs/aproi/internal/lead/domain"
	"github.com/flowmetriclabs/aproi/internal/lead/repository"
	"github.com/glebarez/sqlite"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixedClock struct {
	at time.Time
}

func (f fixedClock) Now(context.Context) time.Time { return f.at }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.ReportRequest{}))
	return db
}

func newTestRecorder(t *testing.T, db *gorm.DB, at time.Time) domain.Recorder {
	t.Helper()
	return NewRecorder(Params{
		DB:    db,
		Log:   zap.NewNop(),
		Clock: fixedClock{at: at},
		Repo:  repository.Provide(),
	})
}

func TestRecord_PersistsLead(t *testing.T) {
	db := newTestDB(t)
	at := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	rec := newTestRecorder(t, db, at)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	scenarioID := node.Generate()

	row, err := rec.Record(context.Background(), scenarioID, "  buyer@example.com ")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "buyer@example.com", row.Email)
	assert.Equal(t, at, row.RequestedAt)

	parsed, err := ulid.ParseStrict(row.ID)
	require.NoError(t, err)
	assert.NotZero(t, parsed.Time())

	var stored domain.ReportRequest
	require.NoError(t, db.First(&stored, "id = ?", row.ID).Error)
	assert.Equal(t, scenarioID, stored.ScenarioID)
	assert.Equal(t, "buyer@example.com", stored.Email)
}

func TestRecord_RejectsInvalidEmail(t *testing.T) {
	db := newTestDB(t)
	rec := newTestRecorder(t, db, time.Now().UTC())

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	scenarioID := node.Generate()

	for _, email := range []string{"", "not-an-email", "a@b", "with space@example.com"} {
		_, err := rec.Record(context.Background(), scenarioID, email)
		assert.ErrorIs(t, err, domain.ErrInvalidEmail, "email %q", email)
	}

	var count int64
	require.NoError(t, db.Model(&domain.ReportRequest{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestValidateEmail_Accepts(t *testing.T) {
	for _, email := range []string{"a@b.c", "buyer+tag@example.co.uk", "x_y@sub.domain.io"} {
		assert.NoError(t, domain.ValidateEmail(email), "email %q", email)
	}
}
