package app_test

import (
	"context"
	"errors"
	"testing"

	"flex_reviews/internal/app"
	"flex_reviews/internal/domain"
)

type fakeChannelClient struct {
	reviews []domain.Review
	err     error
}

func (f *fakeChannelClient) AccountReviews(ctx context.Context) ([]domain.Review, error) {
	return f.reviews, f.err
}

func (f *fakeChannelClient) ListingReviews(ctx context.Context, listingID int64) ([]domain.Review, error) {
	return f.reviews, f.err
}

type fakeRepo struct {
	upserts [][]domain.Review
	misses  []int
}

func (f *fakeRepo) UpsertReviews(ctx context.Context, rs []domain.Review) error {
	f.upserts = append(f.upserts, rs)
	return nil
}

func (f *fakeRepo) ListReviews(ctx context.Context) ([]domain.Review, error) { return nil, nil }

func (f *fakeRepo) LogMiss(ctx context.Context, listingID int64, status int, reason string) error {
	f.misses = append(f.misses, status)
	return nil
}

func TestSyncListing_UpsertsAndInvalidates(t *testing.T) {
	client := &fakeChannelClient{reviews: []domain.Review{{ID: 1}, {ID: 2}}}
	repo := &fakeRepo{}
	cache := &fakeCache{store: map[string]any{"stats:v1": domain.StatsReport{}}}
	ing := app.NewIngestionService(client, repo, cache)

	if err := ing.SyncListing(context.Background(), 42); err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(repo.upserts) != 1 || len(repo.upserts[0]) != 2 {
		t.Fatalf("upserts: %+v", repo.upserts)
	}
	if len(cache.dels) != 1 {
		t.Fatalf("expected stats invalidation, dels=%v", cache.dels)
	}
}

func TestSyncListing_NotFoundIsAMiss(t *testing.T) {
	client := &fakeChannelClient{err: errors.New("hostaway: not found")}
	repo := &fakeRepo{}
	ing := app.NewIngestionService(client, repo, nil)

	if err := ing.SyncListing(context.Background(), 42); err != nil {
		t.Fatalf("404 should not fail the sync: %v", err)
	}
	if len(repo.misses) != 1 || repo.misses[0] != 404 {
		t.Fatalf("misses: %v", repo.misses)
	}
}

func TestSyncListing_UnexpectedErrorBubbles(t *testing.T) {
	client := &fakeChannelClient{err: errors.New("connection reset")}
	ing := app.NewIngestionService(client, &fakeRepo{}, nil)

	if err := ing.SyncListing(context.Background(), 42); err == nil {
		t.Fatal("expected error to surface")
	}
}
