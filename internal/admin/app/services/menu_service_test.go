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

func validMenuRequest() dto.MenuItemRequest {
	return dto.MenuItemRequest{
		Category: "Makanan",
		Price:    25000,
		Translations: map[string]models.Translation{
			"id": {Name: "Nasi Goreng"},
			"en": {Name: "Fried Rice"},
		},
	}
}

func TestMenuServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with generated id and timestamps", func(t *testing.T) {
		repo := &mockMenuRepo{}
		svc := NewMenuService(repo, testLogger())

		item, err := svc.Create(ctx, validMenuRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, item.ID)
		assert.Equal(t, "Makanan", item.Category)
		assert.Equal(t, 25000.0, item.Price)
		assert.False(t, item.CreatedAt.IsZero())
		assert.Equal(t, item.CreatedAt, item.UpdatedAt)
		require.Len(t, repo.created, 1)
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(req *dto.MenuItemRequest)
			wantErr error
		}{
			{
				name:    "empty category",
				mutate:  func(req *dto.MenuItemRequest) { req.Category = "" },
				wantErr: core.ErrFieldIsEmpty,
			},
			{
				name:    "unknown category",
				mutate:  func(req *dto.MenuItemRequest) { req.Category = "Sushi" },
				wantErr: core.ErrUnknownCategory,
			},
			{
				name:    "negative price",
				mutate:  func(req *dto.MenuItemRequest) { req.Price = -1 },
				wantErr: core.ErrNegativePrice,
			},
			{
				name:    "no translations",
				mutate:  func(req *dto.MenuItemRequest) { req.Translations = nil },
				wantErr: core.ErrNoTranslation,
			},
			{
				name: "translations without a name",
				mutate: func(req *dto.MenuItemRequest) {
					req.Translations = map[string]models.Translation{"id": {Description: "enak"}}
				},
				wantErr: core.ErrNoTranslation,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				repo := &mockMenuRepo{}
				svc := NewMenuService(repo, testLogger())

				req := validMenuRequest()
				tc.mutate(&req)

				_, err := svc.Create(ctx, req)

				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, repo.created)
			})
		}
	})
}

func TestMenuServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces fields and bumps updated_at", func(t *testing.T) {
		repo := &mockMenuRepo{items: map[string]models.MenuItem{
			"m-1": {ID: "m-1", Category: "Makanan", Price: 20000},
		}}
		svc := NewMenuService(repo, testLogger())

		req := validMenuRequest()
		req.Category = "Minuman"
		req.Price = 8000

		item, err := svc.Update(ctx, "m-1", req)

		require.NoError(t, err)
		assert.Equal(t, "m-1", item.ID)
		assert.Equal(t, "Minuman", item.Category)
		assert.Equal(t, 8000.0, item.Price)
		assert.False(t, item.UpdatedAt.IsZero())
	})

	t.Run("missing item surfaces not found", func(t *testing.T) {
		svc := NewMenuService(&mockMenuRepo{}, testLogger())

		_, err := svc.Update(ctx, "ghost", validMenuRequest())

		assert.ErrorIs(t, err, core.ErrMenuItemNotFound)
	})
}

func TestMenuServiceList(t *testing.T) {
	ctx := context.Background()

	repo := &mockMenuRepo{items: map[string]models.MenuItem{
		"m-1": {ID: "m-1", Category: "Makanan", Translations: map[string]models.Translation{
			"id": {Name: "Nasi Goreng"},
			"en": {Name: "Fried Rice"},
		}},
		"m-2": {ID: "m-2", Category: "Minuman", Translations: map[string]models.Translation{
			"id": {Name: "Es Teh"},
		}},
	}}
	svc := NewMenuService(repo, testLogger())

	t.Run("no filters returns everything", func(t *testing.T) {
		items, err := svc.List(ctx, "", "")
		require.NoError(t, err)
		assert.Len(t, items, 2)

		items, err = svc.List(ctx, "All", "")
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("filters by category", func(t *testing.T) {
		items, err := svc.List(ctx, "Minuman", "")

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "m-2", items[0].ID)
	})

	t.Run("search is case-insensitive across translations", func(t *testing.T) {
		items, err := svc.List(ctx, "", "fried")

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "m-1", items[0].ID)
	})

	t.Run("category and search combine", func(t *testing.T) {
		items, err := svc.List(ctx, "Minuman", "nasi")

		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestMenuServiceDelete(t *testing.T) {
	ctx := context.Background()

	repo := &mockMenuRepo{items: map[string]models.MenuItem{
		"m-1": {ID: "m-1"},
	}}
	svc := NewMenuService(repo, testLogger())

	require.NoError(t, svc.Delete(ctx, "m-1"))
	assert.Equal(t, []string{"m-1"}, repo.deleted)

	assert.ErrorIs(t, svc.Delete(ctx, "m-1"), core.ErrMenuItemNotFound)
}
