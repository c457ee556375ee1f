package services

import (
	"math"
	"sort"
	"time"

	"resto-admin/internal/admin/app/core"
	"resto-admin/internal/admin/domain/models"
)

const dayKeyFormat = "2006-01-02"

// BucketByDay initializes one zeroed bucket per calendar day in [start, end]
// and folds each order into the bucket matching its local day. Orders whose
// day falls outside the range (clock skew, timezone edges) are dropped.
// The result is ordered ascending by date.
func BucketByDay(orders []models.Order, start, end time.Time) []models.DailyBucket {
	buckets := []models.DailyBucket{}
	index := map[string]int{}

	for day := dayStart(start); !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(dayKeyFormat)
		index[key] = len(buckets)
		buckets = append(buckets, models.DailyBucket{Date: key})
	}

	for _, order := range orders {
		key := order.CreatedAt.In(start.Location()).Format(dayKeyFormat)
		i, ok := index[key]
		if !ok {
			continue
		}
		buckets[i].Count++
		buckets[i].Revenue += orderAmount(order)
	}

	return buckets
}

// BucketByHourBand classifies orders by local hour: [5,12) morning,
// [12,17) afternoon, everything else evening. Percentages are rounded to the
// nearest integer and are all zero when there are no orders.
func BucketByHourBand(orders []models.Order) models.HourBandDistribution {
	dist := models.HourBandDistribution{}

	for _, order := range orders {
		hour := order.CreatedAt.Local().Hour()
		switch {
		case hour >= core.MorningStartHour && hour < core.AfternoonStartHour:
			dist.Morning++
		case hour >= core.AfternoonStartHour && hour < core.EveningStartHour:
			dist.Afternoon++
		default:
			dist.Evening++
		}
		dist.Total++
	}

	if dist.Total > 0 {
		dist.MorningPercent = roundPercent(dist.Morning, dist.Total)
		dist.AfternoonPercent = roundPercent(dist.Afternoon, dist.Total)
		dist.EveningPercent = roundPercent(dist.Evening, dist.Total)
	}

	return dist
}

// ComputeTotals sums order amounts into revenue, count and average order
// value. The average is zero for an empty window.
func ComputeTotals(orders []models.Order) models.Totals {
	totals := models.Totals{TotalOrders: len(orders)}
	for _, order := range orders {
		totals.TotalRevenue += orderAmount(order)
	}
	if totals.TotalOrders > 0 {
		totals.AverageOrderValue = totals.TotalRevenue / float64(totals.TotalOrders)
	}
	return totals
}

// PercentChange is the relative difference between two period revenues,
// rounded to one decimal. A zero baseline yields 100 when the current period
// has revenue and 0 otherwise, signaling growth without dividing by zero.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	change := (current - previous) / previous * 100
	return math.Round(change*10) / 10
}

// TopProducts accumulates quantity and revenue per product name and returns
// the top N by revenue. Ties keep the first-seen product for determinism.
func TopProducts(orders []models.Order, limit int) []models.ProductStat {
	stats := accumulateProducts(orders)
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Revenue > stats[j].Revenue
	})
	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

// TopProductsByCount is the quantity-ordered variant used by the
// most-ordered-items widget.
func TopProductsByCount(orders []models.Order, limit int) []models.ProductStat {
	stats := accumulateProducts(orders)
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})
	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

func accumulateProducts(orders []models.Order) []models.ProductStat {
	index := map[string]int{}
	stats := []models.ProductStat{}

	for _, order := range orders {
		for _, item := range order.Items {
			name := item.Name
			if name == "" {
				name = models.UnknownProduct
			}
			i, ok := index[name]
			if !ok {
				i = len(stats)
				index[name] = i
				stats = append(stats, models.ProductStat{Name: name})
			}
			quantity := item.Quantity
			if quantity <= 0 {
				quantity = 1
			}
			stats[i].Count += quantity
			stats[i].Revenue += item.Price * float64(quantity)
		}
	}

	return stats
}

// orderAmount falls back to the sum of item subtotals when the stored total
// is absent. Field-name fallbacks inside the raw document are handled at
// decode time; this covers orders that carried no total at all.
func orderAmount(order models.Order) float64 {
	if order.TotalAmount != 0 {
		return order.TotalAmount
	}
	sum := 0.0
	for _, item := range order.Items {
		sum += item.Subtotal
	}
	return sum
}

// weeklyRevenue sums the last seven daily buckets and the seven before them.
// Windows shorter than two weeks shrink the earlier period first.
func weeklyRevenue(buckets []models.DailyBucket) (last, previous float64) {
	lastFrom := len(buckets) - 7
	if lastFrom < 0 {
		lastFrom = 0
	}
	previousFrom := lastFrom - 7
	if previousFrom < 0 {
		previousFrom = 0
	}

	for i := previousFrom; i < lastFrom; i++ {
		previous += buckets[i].Revenue
	}
	for i := lastFrom; i < len(buckets); i++ {
		last += buckets[i].Revenue
	}
	return last, previous
}

func roundPercent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}

func dayStart(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, 0, t.Location())
}
