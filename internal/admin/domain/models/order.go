package models

import "time"

// Order statuses. Orders are created by the customer-facing ordering client;
// the admin panel only moves them through the lifecycle below. "delivered" is
// written by some ordering clients instead of "completed" and is treated as
// terminal revenue-bearing state on read.
const (
	StatusPendingPayment = "pending_payment"
	StatusPending        = "pending"
	StatusProcessing     = "processing"
	StatusCompleted      = "completed"
	StatusCancelled      = "cancelled"
	StatusDelivered      = "delivered"
)

// RevenueStatuses is the single inclusion rule for revenue aggregation.
// Every revenue query, including previous-period comparisons, uses it.
var RevenueStatuses = []string{StatusCompleted, StatusDelivered}

var statusTransitions = map[string][]string{
	StatusPendingPayment: {StatusPending, StatusCancelled},
	StatusPending:        {StatusProcessing, StatusCancelled},
	StatusProcessing:     {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether a staff action may move an order from one
// status to another. Completed, delivered and cancelled are terminal.
func CanTransition(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusPendingPayment, StatusPending, StatusProcessing,
		StatusCompleted, StatusCancelled, StatusDelivered:
		return true
	}
	return false
}

// PaymentStatus is derived from the order status, it is not stored.
func PaymentStatus(status string) string {
	switch status {
	case StatusPendingPayment:
		return "unpaid"
	case StatusCompleted, StatusDelivered:
		return "paid"
	default:
		return "processing"
	}
}

type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customer_name"`
	Status       string      `json:"status"`
	TotalAmount  float64     `json:"total_amount"`
	CreatedAt    time.Time   `json:"created_at"`
	Items        []OrderItem `json:"items"`
}

// OrderItem is a denormalized snapshot of the menu item at order time.
// It is never re-synced if the menu later changes.
type OrderItem struct {
	MenuItemID string  `json:"menu_item_id,omitempty"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Subtotal   float64 `json:"subtotal"`
}

type OrderStatusLog struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}

type StatusUpdateMessage struct {
	OrderID   string    `json:"order_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ChangedBy string    `json:"changed_by"`
	Timestamp time.Time `json:"timestamp"`
}
