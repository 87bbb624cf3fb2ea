package hostaway

import "testing"

func TestNormalize_RatingFromCategoryMean(t *testing.T) {
	in := []map[string]any{
		{
			"id": 1.0,
			"reviewCategory": []any{
				map[string]any{"category": "cleanliness", "rating": 10.0},
				map[string]any{"category": "value", "rating": 6.0},
			},
		},
	}
	out := normalizeReviews(in)
	if len(out) != 1 {
		t.Fatalf("len: %d", len(out))
	}
	if out[0].Rating != 8.0 {
		t.Fatalf("derived rating: got %v, want 8.0", out[0].Rating)
	}
	if len(out[0].CategoryScores) != 2 || out[0].CategoryScores[0].Category != "cleanliness" {
		t.Fatalf("categories: %+v", out[0].CategoryScores)
	}
}

func TestNormalize_Defaults(t *testing.T) {
	out := normalizeReviews([]map[string]any{{"id": 2.0}})
	r := out[0]
	if r.GuestName != "Anonymous" {
		t.Errorf("guestName: got %q", r.GuestName)
	}
	if r.ListingName != "Unknown Property" {
		t.Errorf("listingName: got %q", r.ListingName)
	}
	if r.Channel != "Hostaway" {
		t.Errorf("channel: got %q", r.Channel)
	}
	if r.Type != "guest-to-host" || r.Status != "published" {
		t.Errorf("type/status: got %q/%q", r.Type, r.Status)
	}
	if r.IsApproved {
		t.Error("new reviews must start unapproved")
	}
	if len(r.CategoryScores) != 0 {
		t.Errorf("categoryScores should be empty: %+v", r.CategoryScores)
	}
}

func TestNormalize_AliasAndStringRating(t *testing.T) {
	in := []map[string]any{
		{
			"review_id":     "99",
			"overallRating": "8,5",
			"public_review": "nice",
			"guest_name":    "Ana",
			"listing_name":  "Camden Court",
			"channelName":   "Booking.com",
			"submitted_at":  "2024-10-12 09:15:44",
		},
	}
	r := normalizeReviews(in)[0]
	if r.ID != 99 {
		t.Errorf("id: got %d", r.ID)
	}
	if r.Rating != 8.5 {
		t.Errorf("rating: got %v", r.Rating)
	}
	if r.Text != "nice" || r.GuestName != "Ana" || r.ListingName != "Camden Court" || r.Channel != "Booking.com" {
		t.Errorf("fields: %+v", r)
	}
	if _, ok := r.SubmittedTime(); !ok {
		t.Error("submittedAt should parse")
	}
}
