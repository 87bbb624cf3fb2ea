// Package store holds the authoritative in-memory review collection for
// the operator session. Mutation is limited to the approval flag.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"flex_reviews/internal/domain"
	"flex_reviews/internal/seed"
)

const recordTimeout = 5 * time.Second

// Source tags reported by Source() after a Load.
const (
	SourceHostaway = "hostaway_api"
	SourceFallback = "fallback"
)

type Store struct {
	client   domain.HostawayClient
	approval domain.ApprovalLog // optional

	mu      sync.RWMutex
	reviews []domain.Review
	source  string
	onLoad  []func()
}

func New(client domain.HostawayClient, approval domain.ApprovalLog) *Store {
	return &Store{client: client, approval: approval}
}

// OnLoad registers fn to run after every Load, once the new collection
// is visible. Callers use it to drop caches derived from a previous
// collection, so a fresh session never serves the old session's
// numbers. Register before the first Load; not safe concurrently with
// it.
func (s *Store) OnLoad(fn func()) {
	s.onLoad = append(s.onLoad, fn)
}

// Load replaces the held collection from the channel API. A fetch
// failure is not surfaced: the bundled sample set is ingested instead,
// because the dashboard must always have something to render. Approvals
// previously recorded in the log are re-applied on top, which is the
// reconciliation path after fire-and-forget writes.
func (s *Store) Load(ctx context.Context) {
	rs, err := s.client.AccountReviews(ctx)
	source := SourceHostaway
	if err != nil {
		log.Warn().Err(err).Msg("hostaway fetch failed, using fallback sample")
		rs = seed.Reviews()
		source = SourceFallback
	}

	if s.approval != nil {
		if saved, err := s.approval.LoadApprovals(ctx); err != nil {
			log.Warn().Err(err).Msg("approval log unavailable, skipping reconcile")
		} else {
			for i := range rs {
				if v, ok := saved[rs[i].ID]; ok {
					rs[i].IsApproved = v
				}
			}
		}
	}

	s.mu.Lock()
	s.reviews = rs
	s.source = source
	s.mu.Unlock()
	log.Info().Str("source", source).Int("count", len(rs)).Msg("collection loaded")

	for _, fn := range s.onLoad {
		fn()
	}
}

// Snapshot returns a copy of the collection for derivations.
func (s *Store) Snapshot() []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}

func (s *Store) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

// SetApproval flips the approval flag for id. Unknown ids are a silent
// no-op. The durable write is fire-and-forget: local state is
// authoritative and is never rolled back on a failed write.
func (s *Store) SetApproval(id int64, approved bool) (domain.Review, bool) {
	s.mu.Lock()
	var out domain.Review
	found := false
	for i := range s.reviews {
		if s.reviews[i].ID == id {
			s.reviews[i].IsApproved = approved
			out = s.reviews[i]
			found = true
			break
		}
	}
	s.mu.Unlock()

	if found && s.approval != nil {
		go s.record(id, approved)
	}
	return out, found
}

// ToggleApproval flips the current flag for id. The read-and-flip runs
// under one write lock so concurrent toggles alternate instead of
// converging. Unknown ids leave the collection unchanged.
func (s *Store) ToggleApproval(id int64) (domain.Review, bool) {
	s.mu.Lock()
	var out domain.Review
	found := false
	for i := range s.reviews {
		if s.reviews[i].ID == id {
			s.reviews[i].IsApproved = !s.reviews[i].IsApproved
			out = s.reviews[i]
			found = true
			break
		}
	}
	s.mu.Unlock()

	if found && s.approval != nil {
		go s.record(id, out.IsApproved)
	}
	return out, found
}

func (s *Store) record(id int64, approved bool) {
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()
	if err := s.approval.RecordApproval(ctx, id, approved); err != nil {
		log.Warn().Err(err).Int64("id", id).Bool("approved", approved).
			Msg("approval write failed, local state stands")
	}
}
