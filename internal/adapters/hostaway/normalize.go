package hostaway

import (
	"strconv"
	"strings"

	"flex_reviews/internal/domain"
)

// Alias registry: the sandbox and production Hostaway payloads disagree
// on field names, so each target field lists its known spellings in
// preference order.
var reviewAliases = map[string][]string{
	"id":        {"id", "reviewId", "review_id"},
	"type":      {"type", "reviewType"},
	"status":    {"status"},
	"rating":    {"rating", "overallRating", "overall_rating", "score"},
	"text":      {"publicReview", "public_review", "review", "comment", "text"},
	"submitted": {"submittedAt", "submitted_at", "createdAt", "created_at"},
	"guest":     {"guestName", "guest_name", "author", "name"},
	"listing":   {"listingName", "listing_name", "listing.name"},
	"channel":   {"channel", "channelName", "source", "platform"},
}

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// firstStr returns the first non-empty string across an alias set.
func firstStr(m map[string]any, key string) string {
	for _, p := range reviewAliases[key] {
		if s := lookupStr(m, p); s != "" {
			return s
		}
	}
	return ""
}

// firstFloat accepts float64/int/string forms ("8,0" included).
func firstFloat(m map[string]any, key string) (float64, bool) {
	for _, p := range reviewAliases[key] {
		switch v := lookupAny(m, p).(type) {
		case float64:
			return v, true
		case int:
			return float64(v), true
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

func firstInt64(m map[string]any, key string) int64 {
	if f, ok := firstFloat(m, key); ok {
		return int64(f)
	}
	return 0
}

func categories(m map[string]any) []domain.CategoryScore {
	for _, p := range []string{"reviewCategory", "review_category", "categories"} {
		raw, ok := lookupAny(m, p).([]any)
		if !ok {
			continue
		}
		out := make([]domain.CategoryScore, 0, len(raw))
		for _, it := range raw {
			cm, ok := it.(map[string]any)
			if !ok {
				continue
			}
			cs := domain.CategoryScore{Category: lookupStr(cm, "category")}
			switch v := cm["rating"].(type) {
			case float64:
				cs.Rating = v
			case int:
				cs.Rating = float64(v)
			}
			out = append(out, cs)
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// normalizeReviews maps raw Hostaway records to the dashboard shape.
// A missing overall rating is derived from the mean of the category
// scores; display fields fall back to safe defaults. Approval always
// starts false: public display is opt-in.
func normalizeReviews(in []map[string]any) []domain.Review {
	out := make([]domain.Review, 0, len(in))
	for _, m := range in {
		rv := domain.Review{
			ID:             firstInt64(m, "id"),
			Type:           withDefault(firstStr(m, "type"), "guest-to-host"),
			Status:         withDefault(firstStr(m, "status"), "published"),
			Text:           firstStr(m, "text"),
			CategoryScores: categories(m),
			SubmittedAt:    firstStr(m, "submitted"),
			GuestName:      withDefault(firstStr(m, "guest"), "Anonymous"),
			ListingName:    withDefault(firstStr(m, "listing"), "Unknown Property"),
			Channel:        withDefault(firstStr(m, "channel"), "Hostaway"),
		}
		if f, ok := firstFloat(m, "rating"); ok {
			rv.Rating = f
		} else if n := len(rv.CategoryScores); n > 0 {
			var sum float64
			for _, c := range rv.CategoryScores {
				sum += c.Rating
			}
			rv.Rating = sum / float64(n)
		}
		out = append(out, rv)
	}
	return out
}

func withDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
