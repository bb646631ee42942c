package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pvpit/gatepass-api/internal/models"
)

type statsRepository interface {
	List(ctx context.Context, typeFilter string) ([]models.GatePass, error)
}

// StatsService produces the per-type, per-status count summary. It is a
// best-effort snapshot: records with an unrecognised pass type or status are
// skipped, not reported.
type StatsService struct {
	repo   statsRepository
	logger *zap.Logger
}

// NewStatsService constructs the statistics service.
func NewStatsService(repo statsRepository, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{repo: repo, logger: logger}
}

// Report scans every pass once and tallies counts per type and status. A
// failed store read yields an all-zero report.
func (s *StatsService) Report(ctx context.Context) (*models.StatisticsReport, error) {
	passes, err := s.repo.List(ctx, "")
	if err != nil {
		s.logger.Warn("statistics query failed", zap.Error(err))
		passes = nil
	}

	var stats models.Statistics
	for _, pass := range passes {
		var bucket *models.StatusCounts
		switch pass.PassType {
		case models.PassTypeLocal:
			bucket = &stats.Local
		case models.PassTypeLeave:
			bucket = &stats.Leave
		default:
			continue
		}

		bucket.All++
		stats.Total.All++

		switch strings.ToLower(pass.Status) {
		case "pending":
			bucket.Pending++
			stats.Total.Pending++
		case "approved":
			bucket.Approved++
			stats.Total.Approved++
		case "rejected":
			bucket.Rejected++
			stats.Total.Rejected++
		}
	}

	return &models.StatisticsReport{
		Stats:       stats,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
