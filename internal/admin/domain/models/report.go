package models

// DailyBucket is one aggregation cell of a day-keyed series. Buckets are
// derived on each report view, never persisted.
type DailyBucket struct {
	Date    string  `json:"date"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type Totals struct {
	TotalRevenue      float64 `json:"total_revenue"`
	TotalOrders       int     `json:"total_orders"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// HourBandDistribution classifies orders by local hour of day:
// [5,12) morning, [12,17) afternoon, everything else evening.
type HourBandDistribution struct {
	Morning          int `json:"morning"`
	Afternoon        int `json:"afternoon"`
	Evening          int `json:"evening"`
	Total            int `json:"total"`
	MorningPercent   int `json:"morning_percent"`
	AfternoonPercent int `json:"afternoon_percent"`
	EveningPercent   int `json:"evening_percent"`
}

type ProductStat struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// RevenueReport is the full reporting view over one window.
type RevenueReport struct {
	Totals        Totals        `json:"totals"`
	PercentChange float64       `json:"percent_change"`
	Daily         []DailyBucket `json:"daily"`
	TopProducts   []ProductStat `json:"top_products"`
	Orders        []Order       `json:"orders"`
}

// Dashboard widget payloads.

type RevenueWidget struct {
	TotalRevenue  float64       `json:"total_revenue"`
	PercentChange float64       `json:"percent_change"`
	Daily         []DailyBucket `json:"daily"`
}

type OrderStatsWidget struct {
	TotalOrders   int           `json:"total_orders"`
	PercentChange float64       `json:"percent_change"`
	Daily         []DailyBucket `json:"daily"`
}

type MostOrderedItem struct {
	MenuItemID string  `json:"menu_item_id,omitempty"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Image      string  `json:"image,omitempty"`
	OrderCount int     `json:"order_count"`
}

type StatusCounts struct {
	All        int `json:"all"`
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
}
