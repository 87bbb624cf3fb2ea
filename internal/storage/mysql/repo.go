package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"flex_reviews/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func valStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// UpsertReviews writes a batch of review snapshots in one multi-row
// statement. Approval state lives in its own table and is not touched
// here.
func (r *Repo) UpsertReviews(ctx context.Context, rs []domain.Review) error {
	if len(rs) == 0 {
		return nil
	}
	values := make([]string, 0, len(rs))
	args := make([]any, 0, len(rs)*10)
	for _, rv := range rs {
		cats, _ := json.Marshal(rv.CategoryScores)
		values = append(values, "(?,?,?,?,?,?,?,?,?,?)")
		args = append(args,
			rv.ID,
			rv.Type,
			rv.Status,
			rv.Rating,
			rv.Text,
			string(cats),
			valStr(rv.SubmittedAt),
			rv.GuestName,
			rv.ListingName,
			rv.Channel,
		)
	}
	sqlStr := insertReviewsPrefix + strings.Join(values, ",") + insertReviewsOnDup
	_, err := r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *Repo) ListReviews(ctx context.Context) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, selectReviewsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var rv domain.Review
		var catsRaw sql.RawBytes
		var submitted sql.NullString
		if err := rows.Scan(
			&rv.ID,
			&rv.Type,
			&rv.Status,
			&rv.Rating,
			&rv.Text,
			&catsRaw,
			&submitted,
			&rv.GuestName,
			&rv.ListingName,
			&rv.Channel,
		); err != nil {
			return nil, err
		}
		if len(catsRaw) > 0 {
			_ = json.Unmarshal(catsRaw, &rv.CategoryScores)
		}
		if submitted.Valid {
			rv.SubmittedAt = submitted.String
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) RecordApproval(ctx context.Context, id int64, approved bool) error {
	_, err := r.db.ExecContext(ctx, upsertApprovalSQL, id, approved)
	return err
}

func (r *Repo) LoadApprovals(ctx context.Context) (map[int64]bool, error) {
	rows, err := r.db.QueryContext(ctx, selectApprovalsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64]bool)
	for rows.Next() {
		var id int64
		var approved bool
		if err := rows.Scan(&id, &approved); err != nil {
			return nil, err
		}
		out[id] = approved
	}
	return out, rows.Err()
}

func (r *Repo) LogMiss(ctx context.Context, listingID int64, status int, reason string) error {
	_, err := r.db.ExecContext(ctx, insertMissSQL, listingID, status, reason)
	return err
}
