package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	leaddomain "github.com/flowmetriclabs/aproi/internal/lead/domain"
	reportdomain "github.com/flowmetriclabs/aproi/internal/report/domain"
	scenariodomain "github.com/flowmetriclabs/aproi/internal/scenario/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixedClock struct {
	at time.Time
}

func (f fixedClock) Now(context.Context) time.Time { return f.at }

type scenarioStub struct {
	resp *scenariodomain.Response
	err  error
}

func (s *scenarioStub) Simulate(context.Context, scenariodomain.CreateRequest) (*scenariodomain.Estimate, error) {
	return nil, nil
}
func (s *scenarioStub) Create(context.Context, scenariodomain.CreateRequest) (*scenariodomain.Response, error) {
	return nil, nil
}
func (s *scenarioStub) Get(context.Context, string) (*scenariodomain.Response, error) {
	return s.resp, s.err
}
func (s *scenarioStub) List(context.Context) ([]scenariodomain.Response, error) { return nil, nil }
func (s *scenarioStub) Delete(context.Context, string) error                    { return nil }

type recorderStub struct {
	err    error
	called bool
	email  string
}

func (r *recorderStub) Record(_ context.Context, _ snowflake.ID, email string) (*leaddomain.ReportRequest, error) {
	r.called = true
	r.email = email
	if r.err != nil {
		return nil, r.err
	}
	return &leaddomain.ReportRequest{ID: "01HTESTREQUESTID0000000000", Email: email}, nil
}

type rendererStub struct {
	data []byte
	err  error
}

func (r *rendererStub) Render(scenariodomain.Response, time.Time) ([]byte, error) {
	return r.data, r.err
}

func testScenario() *scenariodomain.Response {
	resp := &scenariodomain.Response{ID: "1234567890123456789"}
	resp.Inputs.ScenarioName = "Q4 Pilot Plan"
	return resp
}

func newTestService(scenarioSvc scenariodomain.Service, rec leaddomain.Recorder, ren reportdomain.Renderer) reportdomain.Service {
	return New(Params{
		Log:         zap.NewNop(),
		Clock:       fixedClock{at: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)},
		ScenarioSvc: scenarioSvc,
		Recorder:    rec,
		Renderer:    ren,
	})
}

func TestGenerate_Success(t *testing.T) {
	rec := &recorderStub{}
	svc := newTestService(
		&scenarioStub{resp: testScenario()},
		rec,
		&rendererStub{data: []byte("%PDF-1.7 stub")},
	)

	doc, err := svc.Generate(context.Background(), reportdomain.GenerateRequest{
		ScenarioID: "1234567890123456789",
		Email:      " buyer@example.com ",
	})
	require.NoError(t, err)
	assert.Equal(t, "roi-report-q4-pilot-plan.pdf", doc.Filename)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, []byte("%PDF-1.7 stub"), doc.Data)
	assert.Equal(t, "01HTESTREQUESTID0000000000", doc.ReportRequestID)
	assert.True(t, rec.called)
	assert.Equal(t, "buyer@example.com", rec.email)
}

func TestGenerate_InvalidEmailRejectedBeforeLookup(t *testing.T) {
	svc := newTestService(
		&scenarioStub{err: errors.New("should not be reached")},
		&recorderStub{},
		&rendererStub{},
	)

	_, err := svc.Generate(context.Background(), reportdomain.GenerateRequest{
		ScenarioID: "1234567890123456789",
		Email:      "not-an-email",
	})
	assert.ErrorIs(t, err, leaddomain.ErrInvalidEmail)
}

func TestGenerate_UnknownScenario(t *testing.T) {
	rec := &recorderStub{}
	svc := newTestService(
		&scenarioStub{err: scenariodomain.ErrNotFound},
		rec,
		&rendererStub{},
	)

	_, err := svc.Generate(context.Background(), reportdomain.GenerateRequest{
		ScenarioID: "999",
		Email:      "buyer@example.com",
	})
	assert.ErrorIs(t, err, scenariodomain.ErrNotFound)
	assert.False(t, rec.called)
}

func TestGenerate_LeadFailureDoesNotBlockDelivery(t *testing.T) {
	rec := &recorderStub{err: errors.New("insert failed")}
	svc := newTestService(
		&scenarioStub{resp: testScenario()},
		rec,
		&rendererStub{data: []byte("pdf")},
	)

	doc, err := svc.Generate(context.Background(), reportdomain.GenerateRequest{
		ScenarioID: "1234567890123456789",
		Email:      "buyer@example.com",
	})
	require.NoError(t, err)
	assert.True(t, rec.called)
	assert.Empty(t, doc.ReportRequestID)
	assert.Equal(t, []byte("pdf"), doc.Data)
}

func TestGenerate_RenderFailure(t *testing.T) {
	renderErr := errors.New("layout failed")
	svc := newTestService(
		&scenarioStub{resp: testScenario()},
		&recorderStub{},
		&rendererStub{err: renderErr},
	)

	_, err := svc.Generate(context.Background(), reportdomain.GenerateRequest{
		ScenarioID: "1234567890123456789",
		Email:      "buyer@example.com",
	})
	assert.ErrorIs(t, err, renderErr)
}
