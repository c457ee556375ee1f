package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resto-admin/internal/admin/app/core"
	"resto-admin/internal/admin/domain/dto"
	"resto-admin/internal/admin/domain/models"
	"resto-admin/internal/xpkg/logger"
)

type MenuService struct {
	menuRepo core.IMenuRepo
	mylog    logger.Logger
}

func NewMenuService(menuRepo core.IMenuRepo, mylog logger.Logger) *MenuService {
	return &MenuService{
		menuRepo: menuRepo,
		mylog:    mylog,
	}
}

// List filters by category and a case-insensitive search over translated
// names. Empty category or "All" means no category filter.
func (ms *MenuService) List(ctx context.Context, category, search string) ([]models.MenuItem, error) {
	items, err := ms.menuRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if (category == "" || category == "All") && search == "" {
		return items, nil
	}

	search = strings.ToLower(search)
	filtered := []models.MenuItem{}
	for _, item := range items {
		if category != "" && category != "All" && item.Category != category {
			continue
		}
		if search != "" && !menuItemMatches(item, search) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered, nil
}

func (ms *MenuService) Get(ctx context.Context, id string) (models.MenuItem, error) {
	return ms.menuRepo.Get(ctx, id)
}

func (ms *MenuService) Create(ctx context.Context, req dto.MenuItemRequest) (models.MenuItem, error) {
	if err := validateMenuItem(req); err != nil {
		return models.MenuItem{}, err
	}

	now := time.Now().UTC()
	item := models.MenuItem{
		ID:           uuid.NewString(),
		Category:     req.Category,
		Image:        req.Image,
		Price:        req.Price,
		Rating:       req.Rating,
		Reviews:      req.Reviews,
		Translations: req.Translations,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := ms.menuRepo.Create(ctx, item)
	if err != nil {
		ms.mylog.Action("menu_create_failed").Error("Failed to create menu item", err)
		return models.MenuItem{}, err
	}

	ms.mylog.Action("menu_created").Info("Menu item created", "menu_item_id", created.ID)
	return created, nil
}

func (ms *MenuService) Update(ctx context.Context, id string, req dto.MenuItemRequest) (models.MenuItem, error) {
	if err := validateMenuItem(req); err != nil {
		return models.MenuItem{}, err
	}

	item, err := ms.menuRepo.Get(ctx, id)
	if err != nil {
		return models.MenuItem{}, err
	}

	item.Category = req.Category
	item.Image = req.Image
	item.Price = req.Price
	item.Rating = req.Rating
	item.Reviews = req.Reviews
	item.Translations = req.Translations
	item.UpdatedAt = time.Now().UTC()

	if err := ms.menuRepo.Update(ctx, item); err != nil {
		ms.mylog.Action("menu_update_failed").Error("Failed to update menu item", err)
		return models.MenuItem{}, err
	}
	return item, nil
}

func (ms *MenuService) Delete(ctx context.Context, id string) error {
	if err := ms.menuRepo.Delete(ctx, id); err != nil {
		return err
	}
	ms.mylog.Action("menu_deleted").Info("Menu item deleted", "menu_item_id", id)
	return nil
}

func validateMenuItem(req dto.MenuItemRequest) error {
	if req.Category == "" {
		return fmt.Errorf("category: %w", core.ErrFieldIsEmpty)
	}
	if !core.MenuCategories[req.Category] {
		return fmt.Errorf("%w: %s", core.ErrUnknownCategory, req.Category)
	}
	if req.Price < 0 {
		return core.ErrNegativePrice
	}

	for _, t := range req.Translations {
		if t.Name != "" {
			return nil
		}
	}
	return core.ErrNoTranslation
}

func menuItemMatches(item models.MenuItem, search string) bool {
	for _, t := range item.Translations {
		if strings.Contains(strings.ToLower(t.Name), search) {
			return true
		}
	}
	return false
}
