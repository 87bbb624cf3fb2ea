// Package analytics derives read-only views from a collection snapshot.
// Every function is pure: inputs in, views out, no hidden state, and the
// snapshot is never mutated.
package analytics

import (
	"math"
	"sort"
	"time"

	"flex_reviews/internal/domain"
)

const recentWindow = 7 * 24 * time.Hour

// Portfolio computes the headline numbers over the full collection.
// The average is rounded to one decimal and is 0.0 for an empty
// collection. RecentCount is time-dependent and must be recomputed per
// call; reviews without a parseable timestamp never count as recent.
func Portfolio(rs []domain.Review, now time.Time) domain.PortfolioStats {
	st := domain.PortfolioStats{TotalCount: len(rs)}
	cutoff := now.Add(-recentWindow)
	var sum float64
	for _, r := range rs {
		sum += r.Rating
		if r.IsApproved {
			st.ApprovedCount++
		}
		if t, ok := r.SubmittedTime(); ok && t.After(cutoff) {
			st.RecentCount++
		}
	}
	if len(rs) > 0 {
		st.AverageRating = roundOne(sum / float64(len(rs)))
	}
	return st
}

// ByProperty groups by exact listingName equality, no normalization.
// Groups appear in first-seen order.
func ByProperty(rs []domain.Review) []domain.PropertyStats {
	idx := map[string]int{}
	sums := map[string]float64{}
	var out []domain.PropertyStats
	for _, r := range rs {
		i, ok := idx[r.ListingName]
		if !ok {
			i = len(out)
			idx[r.ListingName] = i
			out = append(out, domain.PropertyStats{Name: r.ListingName})
		}
		out[i].Count++
		sums[r.ListingName] += r.Rating
		if r.IsApproved {
			out[i].ApprovedCount++
		}
	}
	for i := range out {
		out[i].AverageRating = roundOne(sums[out[i].Name] / float64(out[i].Count))
	}
	return out
}

func ByChannel(rs []domain.Review) []domain.ChannelCount {
	idx := map[string]int{}
	var out []domain.ChannelCount
	for _, r := range rs {
		i, ok := idx[r.Channel]
		if !ok {
			i = len(out)
			idx[r.Channel] = i
			out = append(out, domain.ChannelCount{Channel: r.Channel})
		}
		out[i].Count++
	}
	return out
}

func Report(rs []domain.Review, now time.Time) domain.StatsReport {
	return domain.StatsReport{
		Portfolio:  Portfolio(rs, now),
		ByProperty: ByProperty(rs),
		ByChannel:  ByChannel(rs),
	}
}

// Apply produces the review list the operator browses: the three AND
// filters first, then the selected sort. The sort is stable so equal
// keys keep their input order. The input slice is left untouched.
func Apply(rs []domain.Review, f domain.FilterConfig, key domain.SortKey) []domain.Review {
	out := make([]domain.Review, 0, len(rs))
	for _, r := range rs {
		if !matchesProperty(r, f.Property) || !matchesChannel(r, f.Channel) || !matchesBand(r, f.Band) {
			continue
		}
		out = append(out, r)
	}
	switch key {
	case domain.SortByRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	default: // most recent first; unparseable timestamps sort last
		sort.SliceStable(out, func(i, j int) bool {
			ti, _ := out[i].SubmittedTime()
			tj, _ := out[j].SubmittedTime()
			return ti.After(tj)
		})
	}
	return out
}

func matchesProperty(r domain.Review, property string) bool {
	return property == "" || property == "all" || r.ListingName == property
}

func matchesChannel(r domain.Review, channel string) bool {
	return channel == "" || channel == "all" || r.Channel == channel
}

func matchesBand(r domain.Review, band domain.RatingBand) bool {
	switch band {
	case domain.BandHigh:
		return r.Rating >= 9
	case domain.BandMedium:
		return r.Rating >= 7 && r.Rating < 9
	case domain.BandLow:
		return r.Rating < 7
	default:
		return true
	}
}

// PublicView is the approved-only subset in insertion order, with no
// further filtering.
func PublicView(rs []domain.Review) []domain.Review {
	var out []domain.Review
	for _, r := range rs {
		if r.IsApproved {
			out = append(out, r)
		}
	}
	return out
}

// Selectors lists the distinct property and channel values of the
// unfiltered collection, in first-seen order, so a dropdown never
// narrows itself out of existence.
func Selectors(rs []domain.Review) domain.SelectorOptions {
	var opts domain.SelectorOptions
	seenP := map[string]bool{}
	seenC := map[string]bool{}
	for _, r := range rs {
		if !seenP[r.ListingName] {
			seenP[r.ListingName] = true
			opts.Properties = append(opts.Properties, r.ListingName)
		}
		if !seenC[r.Channel] {
			seenC[r.Channel] = true
			opts.Channels = append(opts.Channels, r.Channel)
		}
	}
	return opts
}

// Stars maps the 0-10 rating onto a 0-5 star rendering as round(r/2),
// clamped to the displayable range.
func Stars(rating float64) int {
	s := int(math.Round(rating / 2))
	if s < 0 {
		return 0
	}
	if s > 5 {
		return 5
	}
	return s
}

func roundOne(x float64) float64 {
	return math.Round(x*10) / 10
}
