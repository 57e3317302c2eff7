package service

import (
	"context"
	"log"

	"judgesim/internal/cache"
	"judgesim/internal/model"
	"judgesim/internal/repository"
)

const reportHistoryLimit = 50

// ReportService serves stored feedback reports for the dashboard
type ReportService struct {
	repo        repository.ReportRepo
	reportCache cache.ReportCache
}

// NewReportService creates a new report service
func NewReportService(repo repository.ReportRepo, reportCache cache.ReportCache) *ReportService {
	return &ReportService{
		repo:        repo,
		reportCache: reportCache,
	}
}

// History lists the user's reports, newest first
func (s *ReportService) History(ctx context.Context, userID string) ([]model.StoredReport, error) {
	reports, err := s.repo.ListByUser(ctx, userID, reportHistoryLimit)
	if err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []model.StoredReport{}
	}
	return reports, nil
}

// Latest returns the user's most recent report, cache first
func (s *ReportService) Latest(ctx context.Context, userID string) (*model.StoredReport, error) {
	if s.reportCache != nil {
		cached, err := s.reportCache.GetLatest(ctx, userID)
		if err != nil {
			log.Printf("report cache get failed for user %s: %v", userID, err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	report, err := s.repo.LatestByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if report != nil && s.reportCache != nil {
		if err := s.reportCache.SetLatest(ctx, userID, report); err != nil {
			log.Printf("report cache set failed for user %s: %v", userID, err)
		}
	}
	return report, nil
}
