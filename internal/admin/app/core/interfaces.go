package core

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"resto-admin/internal/admin/domain/models"
)

type IDB interface {
	Close() error
	IsAlive() error
	GetPool() *pgxpool.Pool
}

type IOrderRepo interface {
	// FetchWindow returns orders created in [start, end], newest first.
	// An empty statuses slice means no status filter.
	FetchWindow(ctx context.Context, start, end time.Time, statuses []string) ([]models.Order, error)
	Get(ctx context.Context, id string) (models.Order, error)
	UpdateStatus(ctx context.Context, id, status, changedBy string) error
	StatusHistory(ctx context.Context, id string) ([]models.OrderStatusLog, error)
}

type IMenuRepo interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	Get(ctx context.Context, id string) (models.MenuItem, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]models.MenuItem, error)
	Create(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	Update(ctx context.Context, item models.MenuItem) error
	Delete(ctx context.Context, id string) error
}

type IPromotionRepo interface {
	List(ctx context.Context) ([]models.Promotion, error)
	Get(ctx context.Context, id string) (models.Promotion, error)
	Create(ctx context.Context, promo models.Promotion) (models.Promotion, error)
	Update(ctx context.Context, promo models.Promotion) error
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
}

type IBroker interface {
	Close() error
	PublishStatusUpdate(ctx context.Context, msg models.StatusUpdateMessage) error
}
