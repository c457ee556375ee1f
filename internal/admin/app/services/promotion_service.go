package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"resto-admin/internal/admin/app/core"
	"resto-admin/internal/admin/domain/dto"
	"resto-admin/internal/admin/domain/models"
	"resto-admin/internal/xpkg/logger"
)

type PromotionService struct {
	promoRepo core.IPromotionRepo
	mylog     logger.Logger
}

func NewPromotionService(promoRepo core.IPromotionRepo, mylog logger.Logger) *PromotionService {
	return &PromotionService{
		promoRepo: promoRepo,
		mylog:     mylog,
	}
}

// List returns promotions ordered by display order.
func (ps *PromotionService) List(ctx context.Context) ([]models.Promotion, error) {
	return ps.promoRepo.List(ctx)
}

func (ps *PromotionService) Create(ctx context.Context, req dto.PromotionRequest) (models.Promotion, error) {
	if err := validatePromotion(req); err != nil {
		return models.Promotion{}, err
	}

	now := time.Now().UTC()
	promo := models.Promotion{
		ID:           uuid.NewString(),
		Active:       req.Active,
		Image:        req.Image,
		ActionLink:   req.ActionLink,
		DisplayOrder: req.DisplayOrder,
		Translations: req.Translations,
		MenuItemIDs:  req.MenuItemIDs,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := ps.promoRepo.Create(ctx, promo)
	if err != nil {
		ps.mylog.Action("promotion_create_failed").Error("Failed to create promotion", err)
		return models.Promotion{}, err
	}

	ps.mylog.Action("promotion_created").Info("Promotion created", "promotion_id", created.ID)
	return created, nil
}

func (ps *PromotionService) Update(ctx context.Context, id string, req dto.PromotionRequest) (models.Promotion, error) {
	if err := validatePromotion(req); err != nil {
		return models.Promotion{}, err
	}

	promo, err := ps.promoRepo.Get(ctx, id)
	if err != nil {
		return models.Promotion{}, err
	}

	promo.Active = req.Active
	promo.Image = req.Image
	promo.ActionLink = req.ActionLink
	promo.DisplayOrder = req.DisplayOrder
	promo.Translations = req.Translations
	promo.MenuItemIDs = req.MenuItemIDs
	promo.UpdatedAt = time.Now().UTC()

	if err := ps.promoRepo.Update(ctx, promo); err != nil {
		ps.mylog.Action("promotion_update_failed").Error("Failed to update promotion", err)
		return models.Promotion{}, err
	}
	return promo, nil
}

// ToggleActive flips the visibility flag and returns the new state.
func (ps *PromotionService) ToggleActive(ctx context.Context, id string) (bool, error) {
	promo, err := ps.promoRepo.Get(ctx, id)
	if err != nil {
		return false, err
	}

	next := !promo.Active
	if err := ps.promoRepo.SetActive(ctx, id, next); err != nil {
		return false, err
	}

	ps.mylog.Action("promotion_toggled").Info("Promotion visibility changed", "promotion_id", id, "active", next)
	return next, nil
}

func (ps *PromotionService) Delete(ctx context.Context, id string) error {
	if err := ps.promoRepo.Delete(ctx, id); err != nil {
		return err
	}
	ps.mylog.Action("promotion_deleted").Info("Promotion deleted", "promotion_id", id)
	return nil
}

func validatePromotion(req dto.PromotionRequest) error {
	for _, t := range req.Translations {
		if t.Name != "" {
			return nil
		}
	}
	return core.ErrNoTranslation
}
