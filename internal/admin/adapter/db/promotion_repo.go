package db

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"resto-admin/internal/admin/app/core"
	"resto-admin/internal/admin/domain/models"
)

type PromotionRepo struct {
	db core.IDB
}

func NewPromotionRepo(db core.IDB) *PromotionRepo {
	return &PromotionRepo{db: db}
}

const promoColumns = `id, active, image, action_link, display_order, translations, menu_item_ids, created_at, updated_at`

func (pr *PromotionRepo) List(ctx context.Context) ([]models.Promotion, error) {
	if err := pr.db.IsAlive(); err != nil {
		return nil, core.ErrDBConn
	}

	q := `SELECT ` + promoColumns + ` FROM promotions ORDER BY display_order ASC`
	rows, err := pr.db.GetPool().Query(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "query promotions")
	}
	defer rows.Close()

	promos := []models.Promotion{}
	for rows.Next() {
		promo, err := scanPromotion(rows)
		if err != nil {
			return nil, err
		}
		promos = append(promos, promo)
	}
	return promos, rows.Err()
}

func (pr *PromotionRepo) Get(ctx context.Context, id string) (models.Promotion, error) {
	if err := pr.db.IsAlive(); err != nil {
		return models.Promotion{}, core.ErrDBConn
	}

	q := `SELECT ` + promoColumns + ` FROM promotions WHERE id = $1`
	promo, err := scanPromotion(pr.db.GetPool().QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Promotion{}, core.ErrPromotionNotFound
		}
		return models.Promotion{}, err
	}
	return promo, nil
}

func (pr *PromotionRepo) Create(ctx context.Context, promo models.Promotion) (models.Promotion, error) {
	if err := pr.db.IsAlive(); err != nil {
		return models.Promotion{}, core.ErrDBConn
	}

	translations, err := json.Marshal(promo.Translations)
	if err != nil {
		return models.Promotion{}, errors.Wrap(err, "marshal translations")
	}

	_, err = pr.db.GetPool().Exec(ctx, `
		INSERT INTO promotions (id, active, image, action_link, display_order, translations, menu_item_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, promo.ID, promo.Active, promo.Image, promo.ActionLink, promo.DisplayOrder, translations, promo.MenuItemIDs, promo.CreatedAt, promo.UpdatedAt)
	if err != nil {
		return models.Promotion{}, errors.Wrap(err, "insert promotion")
	}
	return promo, nil
}

func (pr *PromotionRepo) Update(ctx context.Context, promo models.Promotion) error {
	if err := pr.db.IsAlive(); err != nil {
		return core.ErrDBConn
	}

	translations, err := json.Marshal(promo.Translations)
	if err != nil {
		return errors.Wrap(err, "marshal translations")
	}

	tag, err := pr.db.GetPool().Exec(ctx, `
		UPDATE promotions
		SET active = $2, image = $3, action_link = $4, display_order = $5,
		    translations = $6, menu_item_ids = $7, updated_at = $8
		WHERE id = $1
	`, promo.ID, promo.Active, promo.Image, promo.ActionLink, promo.DisplayOrder, translations, promo.MenuItemIDs, promo.UpdatedAt)
	if err != nil {
		return errors.Wrap(err, "update promotion")
	}
	if tag.RowsAffected() == 0 {
		return core.ErrPromotionNotFound
	}
	return nil
}

func (pr *PromotionRepo) SetActive(ctx context.Context, id string, active bool) error {
	if err := pr.db.IsAlive(); err != nil {
		return core.ErrDBConn
	}

	tag, err := pr.db.GetPool().Exec(ctx, `
		UPDATE promotions SET active = $2, updated_at = now() WHERE id = $1
	`, id, active)
	if err != nil {
		return errors.Wrap(err, "set promotion active")
	}
	if tag.RowsAffected() == 0 {
		return core.ErrPromotionNotFound
	}
	return nil
}

func (pr *PromotionRepo) Delete(ctx context.Context, id string) error {
	if err := pr.db.IsAlive(); err != nil {
		return core.ErrDBConn
	}

	tag, err := pr.db.GetPool().Exec(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "delete promotion")
	}
	if tag.RowsAffected() == 0 {
		return core.ErrPromotionNotFound
	}
	return nil
}

func scanPromotion(row pgx.Row) (models.Promotion, error) {
	var (
		promo        models.Promotion
		translations []byte
	)
	err := row.Scan(
		&promo.ID,
		&promo.Active,
		&promo.Image,
		&promo.ActionLink,
		&promo.DisplayOrder,
		&translations,
		&promo.MenuItemIDs,
		&promo.CreatedAt,
		&promo.UpdatedAt,
	)
	if err != nil {
		return models.Promotion{}, err
	}

	if err := json.Unmarshal(translations, &promo.Translations); err != nil {
		promo.Translations = map[string]models.Translation{}
	}
	return promo, nil
}
