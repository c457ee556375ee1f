package services

import (
	"context"
	"fmt"
	"time"

	"resto-admin/internal/admin/app/core"
	"resto-admin/internal/admin/domain/models"
	"resto-admin/internal/xpkg/logger"
)

type OrderService struct {
	orderRepo core.IOrderRepo
	broker    core.IBroker
	mylog     logger.Logger
}

func NewOrderService(orderRepo core.IOrderRepo, broker core.IBroker, mylog logger.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		broker:    broker,
		mylog:     mylog,
	}
}

// ListWindow returns the orders of a window, optionally narrowed to one
// status, together with per-status counts for the filter badges. The counts
// always cover the whole window. "pending" groups pending_payment with
// pending the way the orders screen shows them.
func (os *OrderService) ListWindow(ctx context.Context, start, end time.Time, statusFilter string) ([]models.Order, models.StatusCounts, error) {
	if start.After(end) {
		return nil, models.StatusCounts{}, core.ErrInvalidWindow
	}

	orders, err := os.orderRepo.FetchWindow(ctx, dayStart(start), dayEnd(end), nil)
	if err != nil {
		os.mylog.Action("list_orders_failed").Error("Failed to fetch orders", err)
		return nil, models.StatusCounts{}, fmt.Errorf("%w: %v", core.ErrFetch, err)
	}

	counts := countByStatus(orders)
	if statusFilter == "" || statusFilter == "all" {
		return orders, counts, nil
	}

	filtered := []models.Order{}
	for _, order := range orders {
		if matchesStatusFilter(order.Status, statusFilter) {
			filtered = append(filtered, order)
		}
	}
	return filtered, counts, nil
}

func (os *OrderService) Get(ctx context.Context, id string) (models.Order, error) {
	return os.orderRepo.Get(ctx, id)
}

func (os *OrderService) StatusHistory(ctx context.Context, id string) ([]models.OrderStatusLog, error) {
	return os.orderRepo.StatusHistory(ctx, id)
}

// ChangeStatus validates the transition against the order lifecycle, records
// it, and fans out a notification. The notification is advisory: a publish
// failure after the status is committed is logged, not returned.
func (os *OrderService) ChangeStatus(ctx context.Context, id, newStatus, changedBy string) (models.Order, error) {
	mylog := os.mylog.Action("change_status").With("order_id", id, "new_status", newStatus)

	if !models.IsValidStatus(newStatus) {
		return models.Order{}, core.ErrUnknownStatus
	}
	if changedBy == "" {
		changedBy = core.DefaultChangedBy
	}

	order, err := os.orderRepo.Get(ctx, id)
	if err != nil {
		return models.Order{}, err
	}

	if !models.CanTransition(order.Status, newStatus) {
		mylog.Warn("Rejected status transition", "current_status", order.Status)
		return models.Order{}, fmt.Errorf("%w: %s -> %s", core.ErrInvalidTransition, order.Status, newStatus)
	}

	if err := os.orderRepo.UpdateStatus(ctx, id, newStatus, changedBy); err != nil {
		mylog.Error("Failed to update order status", err)
		return models.Order{}, err
	}

	if err := os.broker.PublishStatusUpdate(ctx, models.StatusUpdateMessage{
		OrderID:   id,
		OldStatus: order.Status,
		NewStatus: newStatus,
		ChangedBy: changedBy,
		Timestamp: time.Now().UTC(),
	}); err != nil {
		mylog.Error("Failed to publish status update", err)
	}

	order.Status = newStatus
	mylog.Info("Order status changed")
	return order, nil
}

func countByStatus(orders []models.Order) models.StatusCounts {
	counts := models.StatusCounts{All: len(orders)}
	for _, order := range orders {
		switch order.Status {
		case models.StatusPendingPayment, models.StatusPending:
			counts.Pending++
		case models.StatusProcessing:
			counts.Processing++
		case models.StatusCompleted, models.StatusDelivered:
			counts.Completed++
		case models.StatusCancelled:
			counts.Cancelled++
		}
	}
	return counts
}

func matchesStatusFilter(status, filter string) bool {
	if filter == models.StatusPending {
		return status == models.StatusPending || status == models.StatusPendingPayment
	}
	return status == filter
}
