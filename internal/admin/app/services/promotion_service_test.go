package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resto-admin/internal/admin/app/core"
	"resto-admin/internal/admin/domain/dto"
	"resto-admin/internal/admin/domain/models"
)

func validPromotionRequest() dto.PromotionRequest {
	return dto.PromotionRequest{
		Active:       true,
		DisplayOrder: 1,
		MenuItemIDs:  []string{"m-1"},
		Translations: map[string]models.Translation{
			"id": {Name: "Promo Spesial"},
		},
	}
}

func TestPromotionServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with generated id", func(t *testing.T) {
		repo := &mockPromotionRepo{}
		svc := NewPromotionService(repo, testLogger())

		promo, err := svc.Create(ctx, validPromotionRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, promo.ID)
		assert.True(t, promo.Active)
		assert.Equal(t, []string{"m-1"}, promo.MenuItemIDs)
		assert.Len(t, repo.promos, 1)
	})

	t.Run("requires a named translation", func(t *testing.T) {
		svc := NewPromotionService(&mockPromotionRepo{}, testLogger())

		req := validPromotionRequest()
		req.Translations = nil

		_, err := svc.Create(ctx, req)

		assert.ErrorIs(t, err, core.ErrNoTranslation)
	})
}

func TestPromotionServiceToggleActive(t *testing.T) {
	ctx := context.Background()

	t.Run("flips the flag and returns the new state", func(t *testing.T) {
		repo := &mockPromotionRepo{promos: map[string]models.Promotion{
			"p-1": {ID: "p-1", Active: true},
		}}
		svc := NewPromotionService(repo, testLogger())

		active, err := svc.ToggleActive(ctx, "p-1")
		require.NoError(t, err)
		assert.False(t, active)
		assert.False(t, repo.promos["p-1"].Active)

		active, err = svc.ToggleActive(ctx, "p-1")
		require.NoError(t, err)
		assert.True(t, active)
	})

	t.Run("missing promotion surfaces not found", func(t *testing.T) {
		svc := NewPromotionService(&mockPromotionRepo{}, testLogger())

		_, err := svc.ToggleActive(ctx, "ghost")

		assert.ErrorIs(t, err, core.ErrPromotionNotFound)
	})
}

func TestPromotionServiceUpdate(t *testing.T) {
	ctx := context.Background()

	repo := &mockPromotionRepo{promos: map[string]models.Promotion{
		"p-1": {ID: "p-1", Active: true, DisplayOrder: 1},
	}}
	svc := NewPromotionService(repo, testLogger())

	req := validPromotionRequest()
	req.Active = false
	req.DisplayOrder = 5

	promo, err := svc.Update(ctx, "p-1", req)

	require.NoError(t, err)
	assert.Equal(t, "p-1", promo.ID)
	assert.False(t, promo.Active)
	assert.Equal(t, 5, promo.DisplayOrder)
	assert.False(t, promo.UpdatedAt.IsZero())
}

func TestPromotionServiceDelete(t *testing.T) {
	ctx := context.Background()

	repo := &mockPromotionRepo{promos: map[string]models.Promotion{
		"p-1": {ID: "p-1"},
	}}
	svc := NewPromotionService(repo, testLogger())

	require.NoError(t, svc.Delete(ctx, "p-1"))
	assert.ErrorIs(t, svc.Delete(ctx, "p-1"), core.ErrPromotionNotFound)
}
