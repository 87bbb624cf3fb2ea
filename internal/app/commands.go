package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"flex_reviews/internal/domain"
)

// IngestionService syncs per-listing reviews from the channel API into
// MySQL so the dashboard can warm from a local snapshot when Hostaway is
// unreachable.
type IngestionService struct {
	client domain.HostawayClient
	repo   domain.ReviewRepository
	cache  domain.Cache
}

func NewIngestionService(c domain.HostawayClient, r domain.ReviewRepository, cache domain.Cache) *IngestionService {
	return &IngestionService{client: c, repo: r, cache: cache}
}

// SyncListing fetches one listing's reviews and upserts them. Known
// 404/401/403 responses are recorded as misses and do not fail the run;
// anything else (network/5xx/JSON) bubbles up.
func (s *IngestionService) SyncListing(ctx context.Context, listingID int64) error {
	rs, err := s.client.ListingReviews(ctx, listingID)
	if err != nil {
		low := strings.ToLower(err.Error())
		switch {
		case errors.Is(err, domain.ErrNotFound) || strings.Contains(low, "not found"):
			_ = s.repo.LogMiss(ctx, listingID, 404, "not found")
			return nil
		case strings.Contains(low, "403") || strings.Contains(low, "forbidden") ||
			strings.Contains(low, "401") || strings.Contains(low, "unauthorized"):
			_ = s.repo.LogMiss(ctx, listingID, 403, "inactive")
			return nil
		default:
			return err
		}
	}

	if len(rs) > 0 {
		if err := s.repo.UpsertReviews(ctx, rs); err != nil {
			return fmt.Errorf("upsert reviews failed for listing %d: %w", listingID, err)
		}
	}

	// even a zero-review sync means the stats snapshot may be stale
	if s.cache != nil {
		_ = s.cache.Del(ctx, statsKey)
	}
	return nil
}
