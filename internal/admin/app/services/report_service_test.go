package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resto-admin/internal/admin/app/core"
	"resto-admin/internal/admin/domain/models"
)

func newReportService(orderRepo core.IOrderRepo, menuRepo core.IMenuRepo) *ReportService {
	if menuRepo == nil {
		menuRepo = &mockMenuRepo{}
	}
	return NewReportService(orderRepo, menuRepo, testLogger())
}

func TestReportServiceFetchWindow(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects inverted windows", func(t *testing.T) {
		rs := newReportService(&mockOrderRepo{}, nil)

		_, err := rs.FetchWindow(ctx, day(t, "2025-01-10"), day(t, "2025-01-01"), nil)

		assert.ErrorIs(t, err, core.ErrInvalidWindow)
	})

	t.Run("wraps store failures as fetch errors", func(t *testing.T) {
		rs := newReportService(&mockOrderRepo{err: errors.New("connection refused")}, nil)

		_, err := rs.FetchWindow(ctx, day(t, "2025-01-01"), day(t, "2025-01-10"), nil)

		assert.ErrorIs(t, err, core.ErrFetch)
	})
}

func TestReportServiceRevenueReport(t *testing.T) {
	ctx := context.Background()
	start := day(t, "2025-01-08")
	end := day(t, "2025-01-14")

	t.Run("aggregates the window and compares against the previous one", func(t *testing.T) {
		repo := &mockOrderRepo{orders: []models.Order{
			// Previous window, 2025-01-01 .. 2025-01-07.
			orderAt(day(t, "2025-01-03").Add(10*time.Hour), 100),
			// Current window.
			orderAt(day(t, "2025-01-09").Add(11*time.Hour), 90),
			orderAt(day(t, "2025-01-12").Add(19*time.Hour), 60),
		}}
		rs := newReportService(repo, nil)

		report, err := rs.RevenueReport(ctx, start, end)

		require.NoError(t, err)
		assert.Equal(t, 150.0, report.Totals.TotalRevenue)
		assert.Equal(t, 2, report.Totals.TotalOrders)
		assert.Equal(t, 50.0, report.PercentChange)
		require.Len(t, report.Daily, 7)
		assert.Equal(t, "2025-01-08", report.Daily[0].Date)

		// Both the current and the previous query use the same inclusion rule.
		require.Len(t, repo.fetchCalls, 2)
		assert.Equal(t, models.RevenueStatuses, repo.fetchCalls[0])
		assert.Equal(t, models.RevenueStatuses, repo.fetchCalls[1])
	})

	t.Run("store failure degrades to zeroed buckets", func(t *testing.T) {
		rs := newReportService(&mockOrderRepo{err: errors.New("store down")}, nil)

		report, err := rs.RevenueReport(ctx, start, end)

		assert.ErrorIs(t, err, core.ErrFetch)
		require.Len(t, report.Daily, 7)
		for _, bucket := range report.Daily {
			assert.Zero(t, bucket.Count)
			assert.Zero(t, bucket.Revenue)
		}
		assert.Zero(t, report.Totals.TotalRevenue)
	})

	t.Run("previous window failure skips the comparison", func(t *testing.T) {
		calls := 0
		repo := &mockOrderRepo{}
		repo.fetchFn = func(ctx context.Context, s, e time.Time, statuses []string) ([]models.Order, error) {
			calls++
			if calls > 1 {
				return nil, errors.New("store down")
			}
			return []models.Order{orderAt(day(t, "2025-01-09"), 100)}, nil
		}
		rs := newReportService(repo, nil)

		report, err := rs.RevenueReport(ctx, start, end)

		require.NoError(t, err)
		assert.Equal(t, 100.0, report.Totals.TotalRevenue)
		assert.Zero(t, report.PercentChange)
	})
}

func TestReportServiceRefreshGuard(t *testing.T) {
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	var fetches int32
	repo := &mockOrderRepo{}
	repo.fetchFn = func(ctx context.Context, s, e time.Time, statuses []string) ([]models.Order, error) {
		if atomic.AddInt32(&fetches, 1) == 1 {
			close(started)
			<-release
		}
		return nil, nil
	}
	rs := newReportService(repo, nil)

	done := make(chan error, 1)
	go func() {
		_, err := rs.RevenueWidget(ctx, day(t, "2025-01-31"))
		done <- err
	}()

	<-started
	_, err := rs.RevenueWidget(ctx, day(t, "2025-01-31"))
	assert.ErrorIs(t, err, core.ErrRefreshInFlight)

	// Different widgets refresh independently.
	_, err = rs.OrderTimeWidget(ctx, day(t, "2025-01-31"))
	assert.NoError(t, err)

	close(release)
	require.NoError(t, <-done)

	// Finished refreshes release the guard.
	_, err = rs.RevenueWidget(ctx, day(t, "2025-01-31"))
	assert.NoError(t, err)
}

func TestReportServiceRevenueWidget(t *testing.T) {
	ctx := context.Background()
	now := day(t, "2025-01-31")

	repo := &mockOrderRepo{orders: []models.Order{
		// Previous seven days of the window.
		orderAt(day(t, "2025-01-20").Add(9*time.Hour), 100),
		// Last seven days.
		orderAt(day(t, "2025-01-28").Add(9*time.Hour), 150),
	}}
	rs := newReportService(repo, nil)

	widget, err := rs.RevenueWidget(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 250.0, widget.TotalRevenue)
	assert.Equal(t, 50.0, widget.PercentChange)
	require.Len(t, widget.Daily, core.DashboardWindowDays+1)
}

func TestReportServiceOrderStatsWidget(t *testing.T) {
	ctx := context.Background()
	now := day(t, "2025-01-31")

	repo := &mockOrderRepo{orders: []models.Order{
		orderAt(day(t, "2025-01-02").Add(9*time.Hour), 10),  // first week of the window
		orderAt(day(t, "2025-01-29").Add(9*time.Hour), 10),  // last week
		orderAt(day(t, "2025-01-30").Add(12*time.Hour), 10), // last week
	}}
	rs := newReportService(repo, nil)

	widget, err := rs.OrderStatsWidget(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 3, widget.TotalOrders)
	assert.Equal(t, 100.0, widget.PercentChange)

	// The stats widget counts every status, so no filter is passed down.
	require.Len(t, repo.fetchCalls, 1)
	assert.Nil(t, repo.fetchCalls[0])
}

func TestReportServiceOrderTimeWidget(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 20, 18, 0, 0, 0, time.Local)

	repo := &mockOrderRepo{orders: []models.Order{
		orderAt(time.Date(2025, 1, 15, 8, 0, 0, 0, time.Local), 10),
		orderAt(time.Date(2025, 1, 16, 13, 0, 0, 0, time.Local), 10),
		orderAt(time.Date(2025, 1, 17, 20, 0, 0, 0, time.Local), 10),
	}}
	rs := newReportService(repo, nil)

	dist, err := rs.OrderTimeWidget(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 1, dist.Morning)
	assert.Equal(t, 1, dist.Afternoon)
	assert.Equal(t, 1, dist.Evening)
	assert.Equal(t, 3, dist.Total)
}

func TestReportServiceMostOrdered(t *testing.T) {
	ctx := context.Background()
	now := day(t, "2025-01-31")

	orders := []models.Order{
		{
			Status:    models.StatusCompleted,
			CreatedAt: day(t, "2025-01-20"),
			Items: []models.OrderItem{
				{MenuItemID: "m-1", Name: "Sate Ayam", Price: 25, Quantity: 3},
				{MenuItemID: "m-2", Name: "Es Teh", Price: 5, Quantity: 1},
			},
		},
	}

	t.Run("enriches from the current menu", func(t *testing.T) {
		menuRepo := &mockMenuRepo{items: map[string]models.MenuItem{
			"m-1": {
				ID:    "m-1",
				Price: 30,
				Image: "satay.png",
				Translations: map[string]models.Translation{
					"en": {Name: "Chicken Satay"},
				},
			},
		}}
		rs := newReportService(&mockOrderRepo{orders: orders}, menuRepo)

		items, err := rs.MostOrdered(ctx, now)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Chicken Satay", items[0].Name)
		assert.Equal(t, 30.0, items[0].Price)
		assert.Equal(t, "satay.png", items[0].Image)
		assert.Equal(t, 3, items[0].OrderCount)
		// m-2 no longer exists on the menu, the order snapshot stands.
		assert.Equal(t, "Es Teh", items[1].Name)
		assert.Equal(t, 5.0, items[1].Price)
	})

	t.Run("menu failure falls back to order snapshots", func(t *testing.T) {
		menuRepo := &mockMenuRepo{err: errors.New("menu store down")}
		rs := newReportService(&mockOrderRepo{orders: orders}, menuRepo)

		items, err := rs.MostOrdered(ctx, now)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Sate Ayam", items[0].Name)
		assert.Equal(t, 25.0, items[0].Price)
	})
}

func TestReportServiceExportWindow(t *testing.T) {
	ctx := context.Background()

	repo := &mockOrderRepo{orders: []models.Order{
		orderAt(day(t, "2025-01-05").Add(10*time.Hour), 75),
	}}
	rs := newReportService(repo, nil)

	data, err := rs.ExportWindow(ctx, day(t, "2025-01-01"), day(t, "2025-01-10"))

	require.NoError(t, err)
	assert.Contains(t, string(data), `"2025-01-05"`)
	assert.Contains(t, string(data), `"75"`)
}
