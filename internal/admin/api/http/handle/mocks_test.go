package handle

import (
	"context"
	"time"

	"resto-admin/internal/admin/app/core"
	"resto-admin/internal/admin/domain/models"
	"resto-admin/internal/xpkg/logger"
)

func testLogger() logger.Logger {
	return logger.New("test")
}

type stubOrderRepo struct {
	orders  []models.Order
	err     error
	history []models.OrderStatusLog
}

func (s *stubOrderRepo) FetchWindow(ctx context.Context, start, end time.Time, statuses []string) ([]models.Order, error) {
	if s.err != nil {
		return nil, s.err
	}

	matched := []models.Order{}
	for _, order := range s.orders {
		if order.CreatedAt.Before(start) || order.CreatedAt.After(end) {
			continue
		}
		matched = append(matched, order)
	}
	return matched, nil
}

func (s *stubOrderRepo) Get(ctx context.Context, id string) (models.Order, error) {
	if s.err != nil {
		return models.Order{}, s.err
	}
	for _, order := range s.orders {
		if order.ID == id {
			return order, nil
		}
	}
	return models.Order{}, core.ErrOrderNotFound
}

func (s *stubOrderRepo) UpdateStatus(ctx context.Context, id, status, changedBy string) error {
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return nil
		}
	}
	return core.ErrOrderNotFound
}

func (s *stubOrderRepo) StatusHistory(ctx context.Context, id string) ([]models.OrderStatusLog, error) {
	if len(s.history) == 0 {
		return nil, core.ErrOrderNotFound
	}
	return s.history, nil
}

type stubMenuRepo struct {
	items map[string]models.MenuItem
}

func (s *stubMenuRepo) List(ctx context.Context) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	for _, item := range s.items {
		items = append(items, item)
	}
	return items, nil
}

func (s *stubMenuRepo) Get(ctx context.Context, id string) (models.MenuItem, error) {
	if item, ok := s.items[id]; ok {
		return item, nil
	}
	return models.MenuItem{}, core.ErrMenuItemNotFound
}

func (s *stubMenuRepo) GetByIDs(ctx context.Context, ids []string) (map[string]models.MenuItem, error) {
	found := map[string]models.MenuItem{}
	for _, id := range ids {
		if item, ok := s.items[id]; ok {
			found[id] = item
		}
	}
	return found, nil
}

func (s *stubMenuRepo) Create(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	if s.items == nil {
		s.items = map[string]models.MenuItem{}
	}
	s.items[item.ID] = item
	return item, nil
}

func (s *stubMenuRepo) Update(ctx context.Context, item models.MenuItem) error {
	if _, ok := s.items[item.ID]; !ok {
		return core.ErrMenuItemNotFound
	}
	s.items[item.ID] = item
	return nil
}

func (s *stubMenuRepo) Delete(ctx context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return core.ErrMenuItemNotFound
	}
	delete(s.items, id)
	return nil
}

type stubBroker struct {
	published []models.StatusUpdateMessage
}

func (s *stubBroker) Close() error { return nil }

func (s *stubBroker) PublishStatusUpdate(ctx context.Context, msg models.StatusUpdateMessage) error {
	s.published = append(s.published, msg)
	return nil
}
