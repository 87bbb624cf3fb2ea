package app

import (
	"context"
	"time"

	"flex_reviews/internal/analytics"
	"flex_reviews/internal/domain"
)

const statsKey = "stats:v1"

// CollectionReader is the store surface the query side needs.
type CollectionReader interface {
	Snapshot() []domain.Review
	Source() string
}

type QueryService struct {
	store    CollectionReader
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(s CollectionReader, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{store: s, cache: c, cacheTTL: ttl}
}

// Statistics returns the portfolio/per-property/per-channel report,
// cache-aside with a short TTL. Approval mutations must call
// InvalidateStats so approvedCount stays honest between expiries.
func (s *QueryService) Statistics(ctx context.Context) domain.StatsReport {
	var out domain.StatsReport
	if ok, _ := s.cache.Get(ctx, statsKey, &out); ok {
		return out
	}
	out = analytics.Report(s.store.Snapshot(), time.Now())

	// copy grouped slices so cached values can't alias a later mutation
	cp := deepCopyReport(out)
	_ = s.cache.Set(ctx, statsKey, cp, int(s.cacheTTL.Seconds()))
	return out
}

func (s *QueryService) InvalidateStats(ctx context.Context) {
	_ = s.cache.Del(ctx, statsKey)
}

// Filtered applies the operator's filter and sort selections. Never
// cached: the parameter space is wide and the pass is cheap.
func (s *QueryService) Filtered(f domain.FilterConfig, key domain.SortKey) []domain.Review {
	return analytics.Apply(s.store.Snapshot(), f, key)
}

func (s *QueryService) Public() []domain.Review {
	return analytics.PublicView(s.store.Snapshot())
}

func (s *QueryService) Selectors() domain.SelectorOptions {
	return analytics.Selectors(s.store.Snapshot())
}

// Collection returns the full snapshot plus the tag of where it came
// from (live fetch or bundled fallback).
func (s *QueryService) Collection() ([]domain.Review, string) {
	return s.store.Snapshot(), s.store.Source()
}

func deepCopyReport(in domain.StatsReport) domain.StatsReport {
	out := domain.StatsReport{Portfolio: in.Portfolio}
	if n := len(in.ByProperty); n > 0 {
		out.ByProperty = make([]domain.PropertyStats, n)
		copy(out.ByProperty, in.ByProperty)
	}
	if n := len(in.ByChannel); n > 0 {
		out.ByChannel = make([]domain.ChannelCount, n)
		copy(out.ByChannel, in.ByChannel)
	}
	return out
}
