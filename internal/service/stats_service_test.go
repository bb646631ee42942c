package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pvpit/gatepass-api/internal/models"
)

type stubStatsRepo struct {
	passes []models.GatePass
	err    error
}

func (s *stubStatsRepo) List(ctx context.Context, typeFilter string) ([]models.GatePass, error) {
	return s.passes, s.err
}

func TestStatsServiceReport(t *testing.T) {
	repo := &stubStatsRepo{passes: []models.GatePass{
		{PassType: "local", Status: "Pending"},
		{PassType: "local", Status: "Approved"},
		{PassType: "leave", Status: "Rejected"},
		{PassType: "leave", Status: "pending"},
	}}
	svc := NewStatsService(repo, zap.NewNop())

	report, err := svc.Report(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, report.Stats.Total.All)
	assert.Equal(t, report.Stats.Local.All+report.Stats.Leave.All, report.Stats.Total.All)
	assert.Equal(t, 2, report.Stats.Total.Pending)
	assert.Equal(t, 1, report.Stats.Total.Approved)
	assert.Equal(t, 1, report.Stats.Total.Rejected)
	assert.Equal(t, 2, report.Stats.Local.All)
	assert.Equal(t, 1, report.Stats.Local.Pending)
	assert.NotEmpty(t, report.LastUpdated)
}

func TestStatsServiceSkipsUnrecognisedRecords(t *testing.T) {
	repo := &stubStatsRepo{passes: []models.GatePass{
		{PassType: "overnight", Status: "Pending"},
		{PassType: "local", Status: "Limbo"},
	}}
	svc := NewStatsService(repo, zap.NewNop())

	report, err := svc.Report(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Stats.Total.All)
	assert.Equal(t, 1, report.Stats.Local.All)
	assert.Equal(t, 0, report.Stats.Total.Pending)
	assert.Equal(t, 0, report.Stats.Local.Pending)
}

func TestStatsServiceSubCountsNeverExceedAll(t *testing.T) {
	repo := &stubStatsRepo{passes: []models.GatePass{
		{PassType: "local", Status: "Approved"},
		{PassType: "local", Status: "Approved"},
		{PassType: "leave", Status: "Rejected"},
	}}
	svc := NewStatsService(repo, zap.NewNop())

	report, err := svc.Report(context.Background())
	require.NoError(t, err)

	for _, bucket := range []models.StatusCounts{report.Stats.Total, report.Stats.Local, report.Stats.Leave} {
		assert.LessOrEqual(t, bucket.Pending, bucket.All)
		assert.LessOrEqual(t, bucket.Approved, bucket.All)
		assert.LessOrEqual(t, bucket.Rejected, bucket.All)
	}
}

func TestStatsServiceStoreFailureYieldsZeroReport(t *testing.T) {
	svc := NewStatsService(&stubStatsRepo{err: errors.New("store down")}, zap.NewNop())

	report, err := svc.Report(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Stats.Total.All)
	assert.NotEmpty(t, report.LastUpdated)
}
