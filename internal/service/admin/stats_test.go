package admin

import (
	"testing"
	"time"

	"carameche/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCompute_RevenueExcludesCancelled(t *testing.T) {
	orders := []domain.Order{
		{ID: "1", CustomerName: "a", TotalCents: 10000, Status: domain.StatusCompleted, CreatedAt: day("2026-08-01")},
		{ID: "2", CustomerName: "b", TotalCents: 5000, Status: domain.StatusCancelled, CreatedAt: day("2026-08-02")},
		{ID: "3", CustomerName: "c", TotalCents: 3000, Status: domain.StatusPending, CreatedAt: day("2026-08-03")},
	}

	stats := Compute(orders)
	assert.Equal(t, int64(13000), stats.RevenueCents)
	assert.Equal(t, 1, stats.PendingCount)
	assert.Equal(t, 1, stats.CompletedCount)
	assert.Equal(t, 1, stats.CancelledCount)
	assert.Equal(t, 3, stats.UniqueCustomers)
}

func TestCompute_ItemsSoldExcludesCancelled(t *testing.T) {
	orders := []domain.Order{
		{ID: "1", CustomerName: "a", Status: domain.StatusCompleted, CreatedAt: day("2026-08-01"),
			Items: []domain.OrderItem{{Quantity: 2}, {Quantity: 1}}},
		{ID: "2", CustomerName: "a", Status: domain.StatusCancelled, CreatedAt: day("2026-08-01"),
			Items: []domain.OrderItem{{Quantity: 5}}},
	}

	stats := Compute(orders)
	assert.Equal(t, 3, stats.ItemsSold)
	assert.Equal(t, 1, stats.UniqueCustomers)
}

func TestCompute_TimelineGroupedAndSorted(t *testing.T) {
	orders := []domain.Order{
		{ID: "1", CustomerName: "a", TotalCents: 100, Status: domain.StatusCompleted, CreatedAt: day("2026-08-03")},
		{ID: "2", CustomerName: "b", TotalCents: 200, Status: domain.StatusPending, CreatedAt: day("2026-08-01")},
		{ID: "3", CustomerName: "c", TotalCents: 300, Status: domain.StatusCancelled, CreatedAt: day("2026-08-03")},
		{ID: "4", CustomerName: "d", TotalCents: 400, Status: domain.StatusCompleted, CreatedAt: day("2026-08-03")},
	}

	stats := Compute(orders)
	require.Len(t, stats.Timeline, 2)

	assert.Equal(t, "2026-08-01", stats.Timeline[0].Date)
	assert.Equal(t, 1, stats.Timeline[0].PendingCount)
	assert.Equal(t, int64(200), stats.Timeline[0].RevenueCents)

	assert.Equal(t, "2026-08-03", stats.Timeline[1].Date)
	assert.Equal(t, 2, stats.Timeline[1].CompletedCount)
	assert.Equal(t, 1, stats.Timeline[1].CancelledCount)
	assert.Equal(t, int64(500), stats.Timeline[1].RevenueCents)
}

func TestCompute_EmptyOrders(t *testing.T) {
	stats := Compute(nil)
	assert.Zero(t, stats.RevenueCents)
	assert.Empty(t, stats.Timeline)
	assert.Zero(t, stats.UniqueCustomers)
}
