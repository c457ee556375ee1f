package services

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

type statusUpdateCall struct {
	id        string
	status    string
	changedBy string
}

type mockOrderRepo struct {
	orders  []models.Order
	err     error
	fetchFn func(ctx context.Context, start, end time.Time, statuses []string) ([]models.Order, error)

	fetchCalls    []([]string)
	statusUpdates []statusUpdateCall
}

func (m *mockOrderRepo) FetchWindow(ctx context.Context, start, end time.Time, statuses []string) ([]models.Order, error) {
	m.fetchCalls = append(m.fetchCalls, statuses)
	if m.fetchFn != nil {
		return m.fetchFn(ctx, start, end, statuses)
	}
	if m.err != nil {
		return nil, m.err
	}

	matched := []models.Order{}
	for _, order := range m.orders {
		if order.CreatedAt.Before(start) || order.CreatedAt.After(end) {
			continue
		}
		if len(statuses) > 0 && !containsStatus(statuses, order.Status) {
			continue
		}
		matched = append(matched, order)
	}
	return matched, nil
}

func (m *mockOrderRepo) Get(ctx context.Context, id string) (models.Order, error) {
	if m.err != nil {
		return models.Order{}, m.err
	}
	for _, order := range m.orders {
		if order.ID == id {
			return order, nil
		}
	}
	return models.Order{}, core.ErrOrderNotFound
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id, status, changedBy string) error {
	if m.err != nil {
		return m.err
	}
	m.statusUpdates = append(m.statusUpdates, statusUpdateCall{id: id, status: status, changedBy: changedBy})
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders[i].Status = status
			return nil
		}
	}
	return core.ErrOrderNotFound
}

func (m *mockOrderRepo) StatusHistory(ctx context.Context, id string) ([]models.OrderStatusLog, error) {
	return nil, core.ErrOrderNotFound
}

func containsStatus(statuses []string, status string) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

type mockMenuRepo struct {
	items map[string]models.MenuItem
	err   error

	created []models.MenuItem
	updated []models.MenuItem
	deleted []string
}

func (m *mockMenuRepo) List(ctx context.Context) ([]models.MenuItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	items := []models.MenuItem{}
	for _, item := range m.items {
		items = append(items, item)
	}
	return items, nil
}

func (m *mockMenuRepo) Get(ctx context.Context, id string) (models.MenuItem, error) {
	if m.err != nil {
		return models.MenuItem{}, m.err
	}
	if item, ok := m.items[id]; ok {
		return item, nil
	}
	return models.MenuItem{}, core.ErrMenuItemNotFound
}

func (m *mockMenuRepo) GetByIDs(ctx context.Context, ids []string) (map[string]models.MenuItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	found := map[string]models.MenuItem{}
	for _, id := range ids {
		if item, ok := m.items[id]; ok {
			found[id] = item
		}
	}
	return found, nil
}

func (m *mockMenuRepo) Create(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	if m.err != nil {
		return models.MenuItem{}, m.err
	}
	if m.items == nil {
		m.items = map[string]models.MenuItem{}
	}
	m.items[item.ID] = item
	m.created = append(m.created, item)
	return item, nil
}

func (m *mockMenuRepo) Update(ctx context.Context, item models.MenuItem) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.items[item.ID]; !ok {
		return core.ErrMenuItemNotFound
	}
	m.items[item.ID] = item
	m.updated = append(m.updated, item)
	return nil
}

func (m *mockMenuRepo) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.items[id]; !ok {
		return core.ErrMenuItemNotFound
	}
	delete(m.items, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockPromotionRepo struct {
	promos map[string]models.Promotion
	err    error

	activeChanges map[string]bool
}

func (m *mockPromotionRepo) List(ctx context.Context) ([]models.Promotion, error) {
	if m.err != nil {
		return nil, m.err
	}
	promos := []models.Promotion{}
	for _, promo := range m.promos {
		promos = append(promos, promo)
	}
	return promos, nil
}

func (m *mockPromotionRepo) Get(ctx context.Context, id string) (models.Promotion, error) {
	if m.err != nil {
		return models.Promotion{}, m.err
	}
	if promo, ok := m.promos[id]; ok {
		return promo, nil
	}
	return models.Promotion{}, core.ErrPromotionNotFound
}

func (m *mockPromotionRepo) Create(ctx context.Context, promo models.Promotion) (models.Promotion, error) {
	if m.err != nil {
		return models.Promotion{}, m.err
	}
	if m.promos == nil {
		m.promos = map[string]models.Promotion{}
	}
	m.promos[promo.ID] = promo
	return promo, nil
}

func (m *mockPromotionRepo) Update(ctx context.Context, promo models.Promotion) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.promos[promo.ID]; !ok {
		return core.ErrPromotionNotFound
	}
	m.promos[promo.ID] = promo
	return nil
}

func (m *mockPromotionRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.promos[id]; !ok {
		return core.ErrPromotionNotFound
	}
	delete(m.promos, id)
	return nil
}

func (m *mockPromotionRepo) SetActive(ctx context.Context, id string, active bool) error {
	promo, ok := m.promos[id]
	if !ok {
		return core.ErrPromotionNotFound
	}
	promo.Active = active
	m.promos[id] = promo
	if m.activeChanges == nil {
		m.activeChanges = map[string]bool{}
	}
	m.activeChanges[id] = active
	return nil
}

type mockBroker struct {
	published []models.StatusUpdateMessage
	err       error
}

func (m *mockBroker) Close() error { return nil }

func (m *mockBroker) PublishStatusUpdate(ctx context.Context, msg models.StatusUpdateMessage) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, msg)
	return nil
}
