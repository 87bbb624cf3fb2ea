package mysql

// Note: `text` is reserved; keep it quoted everywhere.
const insertReviewsPrefix = "INSERT INTO reviews\n  (review_id, type, status, rating, `text`, categories, submitted_at, guest_name, listing_name, channel)\nVALUES "

// COALESCE keeps the old value when the new one is NULL; ingests never
// touch approval state, which lives in its own table.
const insertReviewsOnDup = " ON DUPLICATE KEY UPDATE\n" +
	"  type         = VALUES(type),\n" +
	"  status       = VALUES(status),\n" +
	"  rating       = VALUES(rating),\n" +
	"  `text`       = VALUES(`text`),\n" +
	"  categories   = COALESCE(VALUES(categories), reviews.categories),\n" +
	"  submitted_at = COALESCE(VALUES(submitted_at), reviews.submitted_at),\n" +
	"  guest_name   = VALUES(guest_name),\n" +
	"  listing_name = VALUES(listing_name),\n" +
	"  channel      = VALUES(channel),\n" +
	"  updated_at   = CURRENT_TIMESTAMP\n"

const selectReviewsSQL = "SELECT\n" +
	"  review_id, type, status, rating, `text`, categories,\n" +
	"  submitted_at, guest_name, listing_name, channel\n" +
	"FROM reviews\n" +
	"ORDER BY submitted_at DESC, review_id DESC"

const upsertApprovalSQL = `
INSERT INTO approvals (review_id, approved)
VALUES (?, ?)
ON DUPLICATE KEY UPDATE
  approved   = VALUES(approved),
  updated_at = CURRENT_TIMESTAMP
`

const selectApprovalsSQL = `SELECT review_id, approved FROM approvals`

const insertMissSQL = `
INSERT INTO ingest_misses (listing_id, http_status, reason)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE seen_at = CURRENT_TIMESTAMP
`
