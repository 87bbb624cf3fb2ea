package domain

// Read models for the dashboard. Statistics are always computed over the
// unfiltered collection; filters shape only the review list the operator
// browses.

type PortfolioStats struct {
	AverageRating float64 `json:"averageRating"`
	TotalCount    int     `json:"totalReviews"`
	ApprovedCount int     `json:"approvedReviews"`
	RecentCount   int     `json:"recentReviews"`
}

type PropertyStats struct {
	Name          string  `json:"property"`
	AverageRating float64 `json:"averageRating"`
	Count         int     `json:"count"`
	ApprovedCount int     `json:"approvedCount"`
}

type ChannelCount struct {
	Channel string `json:"channel"`
	Count   int    `json:"count"`
}

type StatsReport struct {
	Portfolio  PortfolioStats  `json:"portfolio"`
	ByProperty []PropertyStats `json:"byProperty"`
	ByChannel  []ChannelCount  `json:"byChannel"`
}

// RatingBand buckets the 0-10 overall rating for coarse filtering.
// Bands are contiguous and exhaustive: high is >=9, medium is [7,9),
// low is <7.
type RatingBand string

const (
	BandAll    RatingBand = "all"
	BandHigh   RatingBand = "high"
	BandMedium RatingBand = "medium"
	BandLow    RatingBand = "low"
)

type SortKey string

const (
	SortByDate   SortKey = "date"
	SortByRating SortKey = "rating"
)

// FilterConfig holds the operator's selections. Zero values (or "all")
// mean no restriction on that dimension; dimensions combine with AND.
type FilterConfig struct {
	Property string
	Channel  string
	Band     RatingBand
}

// SelectorOptions are the distinct values present in the unfiltered
// collection, for building the dashboard's dropdowns.
type SelectorOptions struct {
	Properties []string `json:"properties"`
	Channels   []string `json:"channels"`
}
