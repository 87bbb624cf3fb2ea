package domain

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// HostawayClient fetches reviews from the channel API. AccountReviews is
// the dashboard's load path; ListingReviews is used by the ingestor to
// sync one listing at a time.
type HostawayClient interface {
	AccountReviews(ctx context.Context) ([]Review, error)
	ListingReviews(ctx context.Context, listingID int64) ([]Review, error)
}

// ApprovalLog durably records approval decisions. The store treats it as
// fire-and-forget: a failed write is logged and the local state stands.
type ApprovalLog interface {
	RecordApproval(ctx context.Context, id int64, approved bool) error
	LoadApprovals(ctx context.Context) (map[int64]bool, error)
}

// ReviewRepository persists review snapshots written by the ingestor so
// the dashboard has data to warm from when the channel API is down.
type ReviewRepository interface {
	UpsertReviews(ctx context.Context, rs []Review) error
	ListReviews(ctx context.Context) ([]Review, error)
	LogMiss(ctx context.Context, listingID int64, status int, reason string) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
