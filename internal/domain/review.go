package domain

import "time"

// Timestamp layouts accepted for Review.SubmittedAt. Hostaway sends the
// space-separated form; RFC3339 shows up in older exports.
var submittedLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
}

type CategoryScore struct {
	Category string  `json:"category"`
	Rating   float64 `json:"rating"`
}

// Review is one guest-submitted feedback record. IsApproved is the only
// field the engine ever mutates; it gates public visibility and defaults
// to false for newly ingested reviews.
type Review struct {
	ID             int64           `json:"id"`
	Type           string          `json:"type"`
	Status         string          `json:"status"`
	Rating         float64         `json:"rating"`
	Text           string          `json:"publicReview"`
	CategoryScores []CategoryScore `json:"reviewCategory"`
	SubmittedAt    string          `json:"submittedAt"`
	GuestName      string          `json:"guestName"`
	ListingName    string          `json:"listingName"`
	Channel        string          `json:"channel"`
	IsApproved     bool            `json:"isApproved"`
}

// SubmittedTime parses SubmittedAt. ok is false when the value is absent
// or unparseable; such reviews are excluded from recency counts and sort
// oldest under the recency order.
func (r Review) SubmittedTime() (time.Time, bool) {
	if r.SubmittedAt == "" {
		return time.Time{}, false
	}
	for _, layout := range submittedLayouts {
		if t, err := time.Parse(layout, r.SubmittedAt); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
