package entity

import "time"

// WindowMetrics contains the computed figures for one reporting window.
type WindowMetrics struct {
	Range             DateRange
	Sales             int64
	OrderCount        int
	SessionCount      int
	ConversionRate    float64 // percent, two decimals
	AverageOrderValue int64
}

// RankingEntry is one product line of the quantity ranking.
type RankingEntry struct {
	Title    string
	Quantity int
}

// Report is everything the digest message is rendered from.
type Report struct {
	ReportDate time.Time
	Month      WindowMetrics
	Day        WindowMetrics
	Ranking    []RankingEntry
}
