package service

import (
	"fmt"
	"sort"
	"time"

	"newsroom-backend/internal/auth"
	"newsroom-backend/internal/database/models"
	apperrors "newsroom-backend/internal/errors"
	"newsroom-backend/internal/repository"
)

// maxTrendSpan caps the daily trend window for tenants with old archives
const maxTrendSpan = 5 * 365 * 24 * time.Hour

// DashboardService aggregates article statistics for the dashboard
type DashboardService struct {
	articles repository.ArticleRepositoryInterface
	now      func() time.Time
}

// Ensure DashboardService implements DashboardServiceInterface
var _ DashboardServiceInterface = (*DashboardService)(nil)

// NewDashboardService creates a new dashboard service
func NewDashboardService(articles repository.ArticleRepositoryInterface) *DashboardService {
	return NewDashboardServiceWithClock(articles, time.Now)
}

// NewDashboardServiceWithClock creates a dashboard service with an
// explicit clock
func NewDashboardServiceWithClock(articles repository.ArticleRepositoryInterface, now func() time.Time) *DashboardService {
	return &DashboardService{
		articles: articles,
		now:      now,
	}
}

// DashboardStatsRequest selects the aggregation window.
// Valid ranges: today, 7d, 30d, 365d, all (default).
type DashboardStatsRequest struct {
	Range string
}

// TrendPoint is one slot in the article creation trend. Every slot in
// the window is present, zero-filled when nothing was created in it.
type TrendPoint struct {
	Bucket string `json:"bucket"`
	Count  int64  `json:"count"`
}

// DashboardStatsResponse represents the dashboard aggregates
type DashboardStatsResponse struct {
	TotalArticles int64                          `json:"total_articles"`
	ByStatus      map[models.ArticleStatus]int64 `json:"by_status"`
	Trend         []TrendPoint                   `json:"trend"`
}

// GetStats computes article totals, per-status counts, and a
// zero-prefilled creation trend. Non-admins only see their own articles.
func (s *DashboardService) GetStats(actor *auth.Actor, req *DashboardStatsRequest) (*DashboardStatsResponse, error) {
	now := s.now().UTC()

	var filter repository.StatsFilter
	if actor.Role != models.RoleAdmin {
		filter.CreatorID = &actor.ID
	}

	hourly := false
	var since time.Time
	switch req.Range {
	case "today":
		hourly = true
		since = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	case "7d":
		since = now.AddDate(0, 0, -6).Truncate(24 * time.Hour)
	case "30d":
		since = now.AddDate(0, 0, -29).Truncate(24 * time.Hour)
	case "365d":
		since = now.AddDate(0, 0, -364).Truncate(24 * time.Hour)
	case "", "all":
		earliest, err := s.articles.EarliestCreatedAt(actor.TenantID, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to find earliest article: %w", err)
		}
		if earliest == nil {
			since = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		} else {
			since = earliest.UTC().Truncate(24 * time.Hour)
		}
		if now.Sub(since) > maxTrendSpan {
			since = now.Add(-maxTrendSpan).Truncate(24 * time.Hour)
		}
	default:
		return nil, apperrors.ErrInvalidRange
	}
	filter.Since = &since

	total, err := s.articles.CountTotal(actor.TenantID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}

	byStatus, err := s.articles.CountByStatus(actor.TenantID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count articles by status: %w", err)
	}
	for _, status := range []models.ArticleStatus{models.StatusDraft, models.StatusPublished, models.StatusArchived} {
		if _, ok := byStatus[status]; !ok {
			byStatus[status] = 0
		}
	}

	var trend []TrendPoint
	if hourly {
		trend, err = s.hourlyTrend(actor, filter)
	} else {
		trend, err = s.dailyTrend(actor, filter, since, now)
	}
	if err != nil {
		return nil, err
	}

	return &DashboardStatsResponse{
		TotalArticles: total,
		ByStatus:      byStatus,
		Trend:         trend,
	}, nil
}

// hourlyTrend builds the 24 fixed "00:00".."23:00" slots for today
func (s *DashboardService) hourlyTrend(actor *auth.Actor, filter repository.StatsFilter) ([]TrendPoint, error) {
	counts, err := s.articles.CountByHour(actor.TenantID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count articles by hour: %w", err)
	}

	byBucket := make(map[string]int64, len(counts))
	for _, c := range counts {
		byBucket[c.Bucket] = c.Count
	}

	trend := make([]TrendPoint, 24)
	for h := 0; h < 24; h++ {
		bucket := fmt.Sprintf("%02d:00", h)
		trend[h] = TrendPoint{Bucket: bucket, Count: byBucket[bucket]}
	}
	return trend, nil
}

// dailyTrend builds one slot per day from the window start through today
func (s *DashboardService) dailyTrend(actor *auth.Actor, filter repository.StatsFilter, since, now time.Time) ([]TrendPoint, error) {
	counts, err := s.articles.CountByDay(actor.TenantID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count articles by day: %w", err)
	}

	byBucket := make(map[string]int64, len(counts))
	for _, c := range counts {
		byBucket[c.Bucket] = c.Count
	}

	var trend []TrendPoint
	for day := since; !day.After(now); day = day.AddDate(0, 0, 1) {
		bucket := day.Format("2006-01-02")
		trend = append(trend, TrendPoint{Bucket: bucket, Count: byBucket[bucket]})
	}

	sort.Slice(trend, func(i, j int) bool { return trend[i].Bucket < trend[j].Bucket })
	return trend, nil
}
