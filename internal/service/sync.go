package service

import (
	"context"
	"fmt"
	"time"

	"newsroom-backend/internal/audit"
	"newsroom-backend/internal/auth"
	"newsroom-backend/internal/database/models"
	apperrors "newsroom-backend/internal/errors"
	"newsroom-backend/internal/feed"
	"newsroom-backend/internal/logger"
	"newsroom-backend/internal/repository"

	"github.com/google/uuid"
)

// untitledFallback is used when a feed item carries no title
const untitledFallback = "Untitled"

// SyncService ingests feed items into the article store
type SyncService struct {
	sources  repository.SourceRepositoryInterface
	inserter repository.ArticleInserter
	fetcher  feed.FetcherInterface
	recorder audit.Recorder
	log      *logger.Logger
}

// Ensure SyncService implements SyncServiceInterface
var _ SyncServiceInterface = (*SyncService)(nil)

// NewSyncService creates a new feed ingestion service
func NewSyncService(sources repository.SourceRepositoryInterface, inserter repository.ArticleInserter, fetcher feed.FetcherInterface, recorder audit.Recorder) *SyncService {
	return &SyncService{
		sources:  sources,
		inserter: inserter,
		fetcher:  fetcher,
		recorder: recorder,
		log:      logger.WithComponent("sync"),
	}
}

// SyncItem describes the newest item seen during a sync
type SyncItem struct {
	Title       string  `json:"title"`
	Link        string  `json:"link"`
	PublishedAt *string `json:"published_at,omitempty"`
}

// SyncResult summarizes one sync run
type SyncResult struct {
	Success       bool      `json:"success"`
	ItemsFetched  int       `json:"items_fetched"`
	ItemsInserted int64     `json:"items_inserted"`
	LatestItem    *SyncItem `json:"latest_item,omitempty"`
}

// SyncSource fetches a source's feed and inserts the items it has not
// seen before. Re-running a sync never creates duplicates: items whose
// (tenant, link) pair already exists are skipped. The source's
// last_fetched_at is updated even when nothing new was found.
func (s *SyncService) SyncSource(ctx context.Context, actor *auth.Actor, sourceID uuid.UUID, meta audit.RequestMeta) (*SyncResult, error) {
	source, err := s.sources.GetByID(actor.TenantID, sourceID)
	if err != nil {
		return nil, apperrors.ErrSourceNotFound
	}

	return s.syncOne(ctx, source, actor, meta)
}

// SyncDueSources syncs every NEWS source registered at the given
// frequency. Used by the scheduler; failures on one source do not stop
// the rest.
func (s *SyncService) SyncDueSources(ctx context.Context, freq models.UpdateFrequency) error {
	sources, err := s.sources.GetSyncableByFrequency(freq)
	if err != nil {
		return fmt.Errorf("failed to list syncable sources: %w", err)
	}

	for i := range sources {
		source := &sources[i]
		if _, err := s.syncOne(ctx, source, nil, audit.RequestMeta{}); err != nil {
			s.log.WithError(err).WithFields(map[string]interface{}{
				"source_id": source.ID,
				"tenant_id": source.TenantID,
			}).Error("scheduled sync failed")
			s.recorder.Record(ctx, audit.Entry{
				TenantID:     source.TenantID,
				Action:       models.ActionSystemError,
				ResourceType: "news_source",
				ResourceID:   source.ID.String(),
				Metadata: map[string]interface{}{
					"operation": "scheduled_sync",
					"error":     err.Error(),
				},
			})
		}
	}
	return nil
}

func (s *SyncService) syncOne(ctx context.Context, source *models.NewsSource, actor *auth.Actor, meta audit.RequestMeta) (*SyncResult, error) {
	if source.Type != models.SourceTypeNews {
		return nil, apperrors.ErrSourceNotSyncable
	}

	parsed, err := s.fetcher.Fetch(ctx, source.BaseURL)
	if err != nil {
		return nil, apperrors.NewExternalError("feed", err.Error())
	}

	articles := make([]models.Article, 0, len(parsed.Items))
	var latest *feed.Item
	for i := range parsed.Items {
		item := &parsed.Items[i]
		articles = append(articles, s.toArticle(source, item))
		if latest == nil || newerThan(item, latest) {
			latest = item
		}
	}

	inserted, err := s.inserter.InsertSkipConflicts(articles)
	if err != nil {
		return nil, fmt.Errorf("failed to insert articles: %w", err)
	}

	now := time.Now().UTC()
	if err := s.sources.UpdateLastFetchedAt(source.TenantID, source.ID, now); err != nil {
		s.log.WithError(err).WithField("source_id", source.ID).Error("failed to update last_fetched_at")
	}

	entry := audit.Entry{
		TenantID:     source.TenantID,
		Action:       models.ActionSourceSync,
		ResourceType: "news_source",
		ResourceID:   source.ID.String(),
		Meta:         meta,
		Metadata: map[string]interface{}{
			"items_fetched":  len(parsed.Items),
			"items_inserted": inserted,
		},
	}
	if actor != nil {
		entry.ActorID = &actor.ID
		entry.ActorEmail = actor.Email
		entry.ActorRole = string(actor.Role)
	}
	s.recorder.Record(ctx, entry)

	result := &SyncResult{
		Success:       true,
		ItemsFetched:  len(parsed.Items),
		ItemsInserted: inserted,
	}
	if latest != nil {
		result.LatestItem = &SyncItem{
			Title: latest.Title,
			Link:  latest.Link,
		}
		if latest.Title == "" {
			result.LatestItem.Title = untitledFallback
		}
		if latest.PublishedAt != nil {
			published := latest.PublishedAt.Format("2006-01-02T15:04:05Z07:00")
			result.LatestItem.PublishedAt = &published
		}
	}
	return result, nil
}

// toArticle normalizes one feed item into an article row
func (s *SyncService) toArticle(source *models.NewsSource, item *feed.Item) models.Article {
	title := item.Title
	if title == "" {
		title = untitledFallback
	}
	return models.Article{
		TenantID:    source.TenantID,
		SourceID:    &source.ID,
		Title:       title,
		Link:        item.Link,
		GUID:        item.GUID,
		Description: item.Description,
		Content:     item.Content,
		ImageURL:    item.ImageURL,
		Author:      item.Author,
		Status:      models.StatusDraft,
		PublishedAt: item.PublishedAt,
	}
}

// newerThan prefers the item with the later published time; items
// without one never win
func newerThan(a, b *feed.Item) bool {
	if a.PublishedAt == nil {
		return false
	}
	if b.PublishedAt == nil {
		return true
	}
	return a.PublishedAt.After(*b.PublishedAt)
}
