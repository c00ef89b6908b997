package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/socialdeck/management-api/internal/models"
	"github.com/socialdeck/management-api/internal/repository"
	"github.com/socialdeck/management-api/internal/transfer"
)

type AnalyticsService interface {
	Summary(ctx context.Context, userID uuid.UUID) (*transfer.AnalyticsSummaryDto, error)
	TimeSeries(ctx context.Context, userID uuid.UUID, metric string, from, to *time.Time) ([]*transfer.ChartPointDto, error)
}

type analyticsService struct {
	sn repository.SnapshotRepository
	ac repository.SocialAccountRepository
}

func NewAnalyticsService(sn repository.SnapshotRepository, ac repository.SocialAccountRepository) AnalyticsService {
	return &analyticsService{
		sn: sn,
		ac: ac,
	}
}

func (s *analyticsService) Summary(ctx context.Context, userID uuid.UUID) (*transfer.AnalyticsSummaryDto, error) {
	count, err := s.ac.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshots, err := s.sn.ListByUserID(ctx, userID, nil, nil)
	if err != nil {
		return nil, err
	}

	summary := &transfer.AnalyticsSummaryDto{Accounts: count}
	for _, snap := range snapshots {
		summary.TotalFollowers += snap.Followers
		summary.TotalImpressions += snap.Impressions
		summary.TotalEngagements += snap.Engagements
		summary.TotalClicks += snap.Clicks
	}
	return summary, nil
}

// TimeSeries buckets snapshots by UTC calendar day and sums the requested
// metric per day. Unrecognized metric names fall back to impressions.
func (s *analyticsService) TimeSeries(ctx context.Context, userID uuid.UUID, metric string, from, to *time.Time) ([]*transfer.ChartPointDto, error) {
	snapshots, err := s.sn.ListByUserID(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	pick := metricSelector(metric)

	buckets := make(map[time.Time]int)
	for _, snap := range snapshots {
		day := snap.CapturedAt.UTC().Truncate(24 * time.Hour)
		buckets[day] += pick(snap)
	}

	points := make([]*transfer.ChartPointDto, 0, len(buckets))
	for day, value := range buckets {
		points = append(points, &transfer.ChartPointDto{Timestamp: day, Value: value})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Timestamp.Before(points[j].Timestamp)
	})
	return points, nil
}

func metricSelector(metric string) func(*models.AnalyticsSnapshot) int {
	switch strings.ToLower(metric) {
	case "followers":
		return func(s *models.AnalyticsSnapshot) int { return s.Followers }
	case "engagements":
		return func(s *models.AnalyticsSnapshot) int { return s.Engagements }
	case "clicks":
		return func(s *models.AnalyticsSnapshot) int { return s.Clicks }
	default:
		return func(s *models.AnalyticsSnapshot) int { return s.Impressions }
	}
}
