package db

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"resto-admin/internal/admin/app/core"
	"resto-admin/internal/admin/domain/models"
)

// OrderRepo reads and mutates the order documents ingested from the
// customer-facing ordering client. The raw document is kept as JSONB next to
// indexed created_at/status columns; decoding tolerates the field-name drift
// between client versions.
type OrderRepo struct {
	db core.IDB
}

func NewOrderRepo(db core.IDB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (or *OrderRepo) FetchWindow(ctx context.Context, start, end time.Time, statuses []string) ([]models.Order, error) {
	if err := or.db.IsAlive(); err != nil {
		return nil, core.ErrDBConn
	}

	q := `
	SELECT
		id,
		status,
		created_at,
		payload
	FROM
		orders
	WHERE
		created_at >= $1 AND created_at <= $2
	`
	args := []any{start, end}
	if len(statuses) > 0 {
		q += ` AND status = ANY($3)`
		args = append(args, statuses)
	}
	q += ` ORDER BY created_at DESC`

	rows, err := or.db.GetPool().Query(ctx, q, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query orders window")
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (or *OrderRepo) Get(ctx context.Context, id string) (models.Order, error) {
	if err := or.db.IsAlive(); err != nil {
		return models.Order{}, core.ErrDBConn
	}

	q := `SELECT id, status, created_at, payload FROM orders WHERE id = $1`
	row := or.db.GetPool().QueryRow(ctx, q, id)

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Order{}, core.ErrOrderNotFound
		}
		return models.Order{}, err
	}
	return order, nil
}

func (or *OrderRepo) UpdateStatus(ctx context.Context, id, status, changedBy string) error {
	if err := or.db.IsAlive(); err != nil {
		return core.ErrDBConn
	}

	tx, err := or.db.GetPool().Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer tx.Rollback(ctx)

	// The status column is authoritative; the copy inside the document is
	// kept in sync so exports of the raw payload stay consistent.
	tag, err := tx.Exec(ctx, `
		UPDATE orders
		SET status = $2,
		    payload = jsonb_set(payload, '{status}', to_jsonb($2::text))
		WHERE id = $1
	`, id, status)
	if err != nil {
		return errors.Wrap(err, "update order status")
	}
	if tag.RowsAffected() == 0 {
		return core.ErrOrderNotFound
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO order_status_log (order_id, status, changed_by, changed_at)
		VALUES ($1, $2, $3, $4)
	`, id, status, changedBy, time.Now().UTC())
	if err != nil {
		return errors.Wrap(err, "insert status log")
	}

	return tx.Commit(ctx)
}

func (or *OrderRepo) StatusHistory(ctx context.Context, id string) ([]models.OrderStatusLog, error) {
	if err := or.db.IsAlive(); err != nil {
		return nil, core.ErrDBConn
	}

	q := `
	SELECT
		order_id,
		status,
		changed_by,
		changed_at
	FROM
		order_status_log
	WHERE
		order_id = $1
	ORDER BY changed_at ASC
	`
	rows, err := or.db.GetPool().Query(ctx, q, id)
	if err != nil {
		return nil, errors.Wrap(err, "query status history")
	}
	defer rows.Close()

	logs := []models.OrderStatusLog{}
	for rows.Next() {
		var entry models.OrderStatusLog
		if err := rows.Scan(&entry.OrderID, &entry.Status, &entry.ChangedBy, &entry.ChangedAt); err != nil {
			return nil, err
		}
		logs = append(logs, entry)
	}
	if len(logs) == 0 {
		return nil, core.ErrOrderNotFound
	}
	return logs, rows.Err()
}

func scanOrder(row pgx.Row) (models.Order, error) {
	var (
		id        string
		status    string
		createdAt time.Time
		payload   []byte
	)
	if err := row.Scan(&id, &status, &createdAt, &payload); err != nil {
		return models.Order{}, err
	}

	// A payload that fails to decode yields a nil document; the model layer
	// coerces it to safe defaults instead of dropping the order.
	var doc map[string]any
	_ = json.Unmarshal(payload, &doc)

	return models.OrderFromDocument(id, status, createdAt, doc), nil
}
