package db

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"resto-admin/internal/admin/app/core"
	"resto-admin/internal/admin/domain/models"
)

type MenuRepo struct {
	db core.IDB
}

func NewMenuRepo(db core.IDB) *MenuRepo {
	return &MenuRepo{db: db}
}

const menuColumns = `id, category, image, price, rating, reviews, translations, created_at, updated_at`

func (mr *MenuRepo) List(ctx context.Context) ([]models.MenuItem, error) {
	if err := mr.db.IsAlive(); err != nil {
		return nil, core.ErrDBConn
	}

	q := `SELECT ` + menuColumns + ` FROM menu_items ORDER BY category, created_at`
	rows, err := mr.db.GetPool().Query(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "query menu items")
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (mr *MenuRepo) Get(ctx context.Context, id string) (models.MenuItem, error) {
	if err := mr.db.IsAlive(); err != nil {
		return models.MenuItem{}, core.ErrDBConn
	}

	q := `SELECT ` + menuColumns + ` FROM menu_items WHERE id = $1`
	item, err := scanMenuItem(mr.db.GetPool().QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.MenuItem{}, core.ErrMenuItemNotFound
		}
		return models.MenuItem{}, err
	}
	return item, nil
}

func (mr *MenuRepo) GetByIDs(ctx context.Context, ids []string) (map[string]models.MenuItem, error) {
	if err := mr.db.IsAlive(); err != nil {
		return nil, core.ErrDBConn
	}

	q := `SELECT ` + menuColumns + ` FROM menu_items WHERE id = ANY($1)`
	rows, err := mr.db.GetPool().Query(ctx, q, ids)
	if err != nil {
		return nil, errors.Wrap(err, "query menu items by ids")
	}
	defer rows.Close()

	items := map[string]models.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items[item.ID] = item
	}
	return items, rows.Err()
}

func (mr *MenuRepo) Create(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	if err := mr.db.IsAlive(); err != nil {
		return models.MenuItem{}, core.ErrDBConn
	}

	translations, err := json.Marshal(item.Translations)
	if err != nil {
		return models.MenuItem{}, errors.Wrap(err, "marshal translations")
	}

	_, err = mr.db.GetPool().Exec(ctx, `
		INSERT INTO menu_items (id, category, image, price, rating, reviews, translations, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, item.ID, item.Category, item.Image, item.Price, item.Rating, item.Reviews, translations, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return models.MenuItem{}, errors.Wrap(err, "insert menu item")
	}
	return item, nil
}

func (mr *MenuRepo) Update(ctx context.Context, item models.MenuItem) error {
	if err := mr.db.IsAlive(); err != nil {
		return core.ErrDBConn
	}

	translations, err := json.Marshal(item.Translations)
	if err != nil {
		return errors.Wrap(err, "marshal translations")
	}

	tag, err := mr.db.GetPool().Exec(ctx, `
		UPDATE menu_items
		SET category = $2, image = $3, price = $4, rating = $5, reviews = $6,
		    translations = $7, updated_at = $8
		WHERE id = $1
	`, item.ID, item.Category, item.Image, item.Price, item.Rating, item.Reviews, translations, item.UpdatedAt)
	if err != nil {
		return errors.Wrap(err, "update menu item")
	}
	if tag.RowsAffected() == 0 {
		return core.ErrMenuItemNotFound
	}
	return nil
}

func (mr *MenuRepo) Delete(ctx context.Context, id string) error {
	if err := mr.db.IsAlive(); err != nil {
		return core.ErrDBConn
	}

	tag, err := mr.db.GetPool().Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "delete menu item")
	}
	if tag.RowsAffected() == 0 {
		return core.ErrMenuItemNotFound
	}
	return nil
}

func scanMenuItem(row pgx.Row) (models.MenuItem, error) {
	var (
		item         models.MenuItem
		translations []byte
	)
	err := row.Scan(
		&item.ID,
		&item.Category,
		&item.Image,
		&item.Price,
		&item.Rating,
		&item.Reviews,
		&translations,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return models.MenuItem{}, err
	}

	if err := json.Unmarshal(translations, &item.Translations); err != nil {
		item.Translations = map[string]models.Translation{}
	}
	return item, nil
}
