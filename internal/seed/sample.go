// Package seed bundles the fallback sample collection. The dashboard must
// always have something to render, so a failed channel fetch resolves to
// this set instead of an empty screen.
package seed

import "flex_reviews/internal/domain"

// Reviews returns a fresh copy of the sample collection so callers can
// mutate approval state without bleeding into later fallbacks.
func Reviews() []domain.Review {
	out := make([]domain.Review, len(sample))
	copy(out, sample)
	for i := range out {
		out[i].CategoryScores = append([]domain.CategoryScore(nil), sample[i].CategoryScores...)
	}
	return out
}

var sample = []domain.Review{
	{
		ID:     7453,
		Type:   "guest-to-host",
		Status: "published",
		Rating: 9.5,
		Text:   "Amazing stay! The property was clean, modern, and in a great location. Host was very responsive.",
		CategoryScores: []domain.CategoryScore{
			{Category: "cleanliness", Rating: 10},
			{Category: "communication", Rating: 10},
			{Category: "location", Rating: 9},
			{Category: "value", Rating: 9},
		},
		SubmittedAt: "2024-10-15 14:30:22",
		GuestName:   "Sarah Johnson",
		ListingName: "2B N1 A - 29 Shoreditch Heights",
		Channel:     "Airbnb",
	},
	{
		ID:     7454,
		Type:   "guest-to-host",
		Status: "published",
		Rating: 8.5,
		Text:   "Great apartment in central location. Could use better kitchen equipment but overall excellent.",
		CategoryScores: []domain.CategoryScore{
			{Category: "cleanliness", Rating: 9},
			{Category: "communication", Rating: 9},
			{Category: "location", Rating: 10},
			{Category: "value", Rating: 8},
		},
		SubmittedAt: "2024-10-12 09:15:44",
		GuestName:   "Michael Chen",
		ListingName: "1B S2 B - 15 Camden Court",
		Channel:     "Booking.com",
		IsApproved:  true,
	},
	{
		ID:     7455,
		Type:   "guest-to-host",
		Status: "published",
		Rating: 10,
		Text:   "Perfect! Everything was as described. The check-in process was smooth and the place was spotless.",
		CategoryScores: []domain.CategoryScore{
			{Category: "cleanliness", Rating: 10},
			{Category: "communication", Rating: 10},
			{Category: "location", Rating: 10},
			{Category: "value", Rating: 10},
		},
		SubmittedAt: "2024-10-18 16:22:11",
		GuestName:   "Emma Wilson",
		ListingName: "2B N1 A - 29 Shoreditch Heights",
		Channel:     "Airbnb",
		IsApproved:  true,
	},
	{
		ID:     7456,
		Type:   "guest-to-host",
		Status: "published",
		Rating: 7.0,
		Text:   "Decent place but had some issues with noise from neighbors. Location is good though.",
		CategoryScores: []domain.CategoryScore{
			{Category: "cleanliness", Rating: 8},
			{Category: "communication", Rating: 9},
			{Category: "location", Rating: 9},
			{Category: "value", Rating: 6},
		},
		SubmittedAt: "2024-10-08 11:45:33",
		GuestName:   "David Martinez",
		ListingName: "Studio W1 - 42 Westminster Plaza",
		Channel:     "Vrbo",
	},
	{
		ID:     7457,
		Type:   "guest-to-host",
		Status: "published",
		Rating: 9.2,
		Text:   "Loved our stay! Modern furnishings and great amenities. Would definitely recommend.",
		CategoryScores: []domain.CategoryScore{
			{Category: "cleanliness", Rating: 10},
			{Category: "communication", Rating: 9},
			{Category: "location", Rating: 9},
			{Category: "value", Rating: 9},
		},
		SubmittedAt: "2024-10-20 13:55:28",
		GuestName:   "Lisa Anderson",
		ListingName: "1B S2 B - 15 Camden Court",
		Channel:     "Airbnb",
		IsApproved:  true,
	},
}
