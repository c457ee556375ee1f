package dto

import (
	"time"

	"resto-admin/internal/admin/domain/models"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type StatusChangeRequest struct {
	Status    string `json:"status"`
	ChangedBy string `json:"changed_by,omitempty"`
}

type OrderResponse struct {
	ID            string             `json:"id"`
	CustomerName  string             `json:"customer_name"`
	Status        string             `json:"status"`
	PaymentStatus string             `json:"payment_status"`
	TotalAmount   float64            `json:"total_amount"`
	ItemCount     int                `json:"item_count"`
	CreatedAt     time.Time          `json:"created_at"`
	Items         []models.OrderItem `json:"items,omitempty"`
}

func NewOrderResponse(order models.Order) OrderResponse {
	return OrderResponse{
		ID:            order.ID,
		CustomerName:  order.CustomerName,
		Status:        order.Status,
		PaymentStatus: models.PaymentStatus(order.Status),
		TotalAmount:   order.TotalAmount,
		ItemCount:     len(order.Items),
		CreatedAt:     order.CreatedAt,
		Items:         order.Items,
	}
}

type OrdersListResponse struct {
	Orders []OrderResponse     `json:"orders"`
	Counts models.StatusCounts `json:"counts"`
	Error  string              `json:"error,omitempty"`
}

// RevenueReportResponse carries the aggregated report. When the store is
// unreachable the report degrades to zeroed data with the error banner set
// instead of failing the page.
type RevenueReportResponse struct {
	Totals        models.Totals        `json:"totals"`
	PercentChange float64              `json:"percent_change"`
	Daily         []models.DailyBucket `json:"daily"`
	TopProducts   []models.ProductStat `json:"top_products"`
	Orders        []OrderResponse      `json:"orders"`
	Error         string               `json:"error,omitempty"`
}

type RevenueWidgetResponse struct {
	TotalRevenue  float64              `json:"total_revenue"`
	PercentChange float64              `json:"percent_change"`
	Daily         []models.DailyBucket `json:"daily"`
	Error         string               `json:"error,omitempty"`
}

type OrderStatsWidgetResponse struct {
	TotalOrders   int                  `json:"total_orders"`
	PercentChange float64              `json:"percent_change"`
	Daily         []models.DailyBucket `json:"daily"`
	Error         string               `json:"error,omitempty"`
}

type OrderTimeWidgetResponse struct {
	models.HourBandDistribution
	Error string `json:"error,omitempty"`
}

type MostOrderedResponse struct {
	Items []models.MostOrderedItem `json:"items"`
	Error string                   `json:"error,omitempty"`
}

type MenuItemRequest struct {
	Category     string                        `json:"category"`
	Image        string                        `json:"image"`
	Price        float64                       `json:"price"`
	Rating       float64                       `json:"rating,omitempty"`
	Reviews      int                           `json:"reviews,omitempty"`
	Translations map[string]models.Translation `json:"translations"`
}

type PromotionRequest struct {
	Active       bool                          `json:"active"`
	Image        string                        `json:"image,omitempty"`
	ActionLink   string                        `json:"action_link,omitempty"`
	DisplayOrder int                           `json:"display_order"`
	Translations map[string]models.Translation `json:"translations"`
	MenuItemIDs  []string                      `json:"menu_item_ids,omitempty"`
}
