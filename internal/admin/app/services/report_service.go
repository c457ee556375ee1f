package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"resto-admin/internal/admin/app/core"
	"resto-admin/internal/admin/domain/models"
	"resto-admin/internal/xpkg/logger"
)

// ReportService turns windows of order documents into dashboard and report
// aggregates. All aggregation happens in memory over a single fetch; nothing
// is cached between views.
type ReportService struct {
	orderRepo core.IOrderRepo
	menuRepo  core.IMenuRepo
	mylog     logger.Logger

	mu       sync.Mutex
	inflight map[string]bool
}

func NewReportService(orderRepo core.IOrderRepo, menuRepo core.IMenuRepo, mylog logger.Logger) *ReportService {
	return &ReportService{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
		mylog:     mylog,
		inflight:  map[string]bool{},
	}
}

// FetchWindow loads orders created between the start of the first day and
// the end of the last one. The store being unreachable surfaces as ErrFetch;
// callers degrade to an empty dataset with a visible banner, never stale data.
func (rs *ReportService) FetchWindow(ctx context.Context, start, end time.Time, statuses []string) ([]models.Order, error) {
	if start.After(end) {
		return nil, core.ErrInvalidWindow
	}

	orders, err := rs.orderRepo.FetchWindow(ctx, dayStart(start), dayEnd(end), statuses)
	if err != nil {
		rs.mylog.Action("fetch_window_failed").Error("Failed to fetch orders from store", err)
		return nil, fmt.Errorf("%w: %v", core.ErrFetch, err)
	}
	return orders, nil
}

// RevenueReport aggregates one window for the revenue report page: totals,
// daily buckets, top products and change against the preceding window of the
// same length.
func (rs *ReportService) RevenueReport(ctx context.Context, start, end time.Time) (models.RevenueReport, error) {
	if err := rs.begin("revenue-report"); err != nil {
		return models.RevenueReport{}, err
	}
	defer rs.finish("revenue-report")

	orders, err := rs.FetchWindow(ctx, start, end, models.RevenueStatuses)
	if err != nil {
		return models.RevenueReport{Daily: BucketByDay(nil, start, end)}, err
	}

	totals := ComputeTotals(orders)
	return models.RevenueReport{
		Totals:        totals,
		PercentChange: rs.previousWindowChange(ctx, start, end, totals.TotalRevenue),
		Daily:         BucketByDay(orders, start, end),
		TopProducts:   TopProducts(orders, core.TopProductsLimit),
		Orders:        orders,
	}, nil
}

// ExportWindow renders the CSV download for a report window.
func (rs *ReportService) ExportWindow(ctx context.Context, start, end time.Time) ([]byte, error) {
	orders, err := rs.FetchWindow(ctx, start, end, models.RevenueStatuses)
	if err != nil {
		return nil, err
	}
	return ExportCSV(orders), nil
}

// RevenueWidget covers the dashboard revenue card: last 30 days of revenue
// buckets and a last-7 vs previous-7 day trend.
func (rs *ReportService) RevenueWidget(ctx context.Context, now time.Time) (models.RevenueWidget, error) {
	if err := rs.begin("dashboard-revenue"); err != nil {
		return models.RevenueWidget{}, err
	}
	defer rs.finish("dashboard-revenue")

	start := now.AddDate(0, 0, -core.DashboardWindowDays)
	orders, err := rs.FetchWindow(ctx, start, now, models.RevenueStatuses)
	if err != nil {
		return models.RevenueWidget{Daily: BucketByDay(nil, start, now)}, err
	}

	buckets := BucketByDay(orders, start, now)
	last, previous := weeklyRevenue(buckets)
	return models.RevenueWidget{
		TotalRevenue:  ComputeTotals(orders).TotalRevenue,
		PercentChange: PercentChange(last, previous),
		Daily:         buckets,
	}, nil
}

// OrderStatsWidget counts all orders per day over the last 30 days,
// comparing the first week of the window against the last.
func (rs *ReportService) OrderStatsWidget(ctx context.Context, now time.Time) (models.OrderStatsWidget, error) {
	if err := rs.begin("dashboard-orders"); err != nil {
		return models.OrderStatsWidget{}, err
	}
	defer rs.finish("dashboard-orders")

	start := now.AddDate(0, 0, -core.DashboardWindowDays)
	orders, err := rs.FetchWindow(ctx, start, now, nil)
	if err != nil {
		return models.OrderStatsWidget{Daily: BucketByDay(nil, start, now)}, err
	}

	buckets := BucketByDay(orders, start, now)
	firstWeek, lastWeek := 0, 0
	for i, bucket := range buckets {
		if i < 7 {
			firstWeek += bucket.Count
		}
		if i >= len(buckets)-7 {
			lastWeek += bucket.Count
		}
	}

	return models.OrderStatsWidget{
		TotalOrders:   len(orders),
		PercentChange: PercentChange(float64(lastWeek), float64(firstWeek)),
		Daily:         buckets,
	}, nil
}

// OrderTimeWidget distributes the current month's orders over hour bands.
func (rs *ReportService) OrderTimeWidget(ctx context.Context, now time.Time) (models.HourBandDistribution, error) {
	if err := rs.begin("dashboard-order-time"); err != nil {
		return models.HourBandDistribution{}, err
	}
	defer rs.finish("dashboard-order-time")

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	orders, err := rs.FetchWindow(ctx, monthStart, now, nil)
	if err != nil {
		return models.HourBandDistribution{}, err
	}
	return BucketByHourBand(orders), nil
}

// MostOrdered lists the most ordered products of the last 30 days, enriched
// with current menu data where the referenced item still exists. Menu lookup
// failures fall back to the snapshot data carried on the order items.
func (rs *ReportService) MostOrdered(ctx context.Context, now time.Time) ([]models.MostOrderedItem, error) {
	if err := rs.begin("dashboard-most-ordered"); err != nil {
		return nil, err
	}
	defer rs.finish("dashboard-most-ordered")

	start := now.AddDate(0, 0, -core.DashboardWindowDays)
	orders, err := rs.FetchWindow(ctx, start, now, nil)
	if err != nil {
		return nil, err
	}

	top := rs.mostOrderedFromOrders(orders)
	rs.enrichFromMenu(ctx, top)
	return top, nil
}

func (rs *ReportService) mostOrderedFromOrders(orders []models.Order) []models.MostOrderedItem {
	stats := TopProductsByCount(orders, core.MostOrderedLimit)

	// Map product names back to the menu item id seen first for that name.
	idByName := map[string]string{}
	priceByName := map[string]float64{}
	for _, order := range orders {
		for _, item := range order.Items {
			if _, ok := idByName[item.Name]; !ok && item.MenuItemID != "" {
				idByName[item.Name] = item.MenuItemID
			}
			if _, ok := priceByName[item.Name]; !ok && item.Price > 0 {
				priceByName[item.Name] = item.Price
			}
		}
	}

	items := make([]models.MostOrderedItem, 0, len(stats))
	for _, stat := range stats {
		items = append(items, models.MostOrderedItem{
			MenuItemID: idByName[stat.Name],
			Name:       stat.Name,
			Price:      priceByName[stat.Name],
			OrderCount: stat.Count,
		})
	}
	return items
}

func (rs *ReportService) enrichFromMenu(ctx context.Context, items []models.MostOrderedItem) {
	ids := []string{}
	for _, item := range items {
		if item.MenuItemID != "" {
			ids = append(ids, item.MenuItemID)
		}
	}
	if len(ids) == 0 {
		return
	}

	menuItems, err := rs.menuRepo.GetByIDs(ctx, ids)
	if err != nil {
		rs.mylog.Action("menu_enrich_failed").Error("Falling back to order snapshot data", err)
		return
	}

	for i := range items {
		menuItem, ok := menuItems[items[i].MenuItemID]
		if !ok {
			continue
		}
		if name := menuItem.DisplayName(); name != "" {
			items[i].Name = name
		}
		if menuItem.Price > 0 {
			items[i].Price = menuItem.Price
		}
		items[i].Image = menuItem.Image
	}
}

func (rs *ReportService) previousWindowChange(ctx context.Context, start, end time.Time, currentRevenue float64) float64 {
	periodDays := int(dayStart(end).Sub(dayStart(start)).Hours() / 24)
	if periodDays < 1 {
		periodDays = 1
	}

	previousEnd := start.AddDate(0, 0, -1)
	previousStart := previousEnd.AddDate(0, 0, -periodDays)

	previousOrders, err := rs.FetchWindow(ctx, previousStart, previousEnd, models.RevenueStatuses)
	if err != nil {
		rs.mylog.Action("previous_window_failed").Error("Skipping percent change", err)
		return 0
	}
	return PercentChange(currentRevenue, ComputeTotals(previousOrders).TotalRevenue)
}

// begin marks a widget refresh as in flight. A second trigger for the same
// widget while one is outstanding is rejected, not queued.
func (rs *ReportService) begin(widget string) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if rs.inflight[widget] {
		return core.ErrRefreshInFlight
	}
	rs.inflight[widget] = true
	return nil
}

func (rs *ReportService) finish(widget string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	delete(rs.inflight, widget)
}
