// Package admin derives read-only dashboard statistics from the order list.
package admin

import (
	"sort"

	"carameche/internal/domain"
)

// Stats summarizes the full order list. Cancelled orders are excluded from
// revenue and items sold but still counted per status.
type Stats struct {
	RevenueCents    int64      `json:"revenueCents"`
	PendingCount    int        `json:"pendingCount"`
	CompletedCount  int        `json:"completedCount"`
	CancelledCount  int        `json:"cancelledCount"`
	UniqueCustomers int        `json:"uniqueCustomers"`
	ItemsSold       int        `json:"itemsSold"`
	Timeline        []DayStats `json:"timeline"`
}

// DayStats is one calendar date of the order time series.
type DayStats struct {
	Date           string `json:"date"`
	PendingCount   int    `json:"pendingCount"`
	CompletedCount int    `json:"completedCount"`
	CancelledCount int    `json:"cancelledCount"`
	RevenueCents   int64  `json:"revenueCents"`
}

// Compute aggregates orders into dashboard statistics. The timeline is
// grouped by creation date and sorted chronologically ascending.
func Compute(orders []domain.Order) Stats {
	stats := Stats{Timeline: []DayStats{}}
	customers := make(map[string]struct{})
	days := make(map[string]*DayStats)

	for _, o := range orders {
		customers[o.CustomerName] = struct{}{}

		date := o.CreatedAt.Format("2006-01-02")
		day, ok := days[date]
		if !ok {
			day = &DayStats{Date: date}
			days[date] = day
		}

		switch o.Status {
		case domain.StatusPending:
			stats.PendingCount++
			day.PendingCount++
		case domain.StatusCompleted:
			stats.CompletedCount++
			day.CompletedCount++
		case domain.StatusCancelled:
			stats.CancelledCount++
			day.CancelledCount++
		}

		if o.Status != domain.StatusCancelled {
			stats.RevenueCents += o.TotalCents
			day.RevenueCents += o.TotalCents
			for _, item := range o.Items {
				stats.ItemsSold += item.Quantity
			}
		}
	}

	stats.UniqueCustomers = len(customers)
	for _, day := range days {
		stats.Timeline = append(stats.Timeline, *day)
	}
	sort.Slice(stats.Timeline, func(i, j int) bool {
		return stats.Timeline[i].Date < stats.Timeline[j].Date
	})
	return stats
}
