package service

import (
	"context"
	"errors"
	"testing"

	"github.com/heavymart/backend/internal/config"
	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/internal/store"
	"github.com/heavymart/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService(products *mockProductRepo, categories *mockCategoryRepo, fallback string) CatalogService {
	return NewCatalogService(products, categories, config.Catalog{Fallback: fallback}, logger.Nop())
}

func TestListProducts_FallbackNone_Propagates(t *testing.T) {
	products := &mockProductRepo{
		ListVisibleProductsFunc: func(_ context.Context) ([]models.Product, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := newCatalogService(products, &mockCategoryRepo{}, config.FallbackNone)

	_, err := svc.ListProducts(context.Background())
	assert.Error(t, err)
}

func TestListProducts_FallbackSample_ServesBuiltIn(t *testing.T) {
	products := &mockProductRepo{
		ListVisibleProductsFunc: func(_ context.Context) ([]models.Product, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := newCatalogService(products, &mockCategoryRepo{}, config.FallbackSample)

	got, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, got)
	for _, p := range got {
		assert.True(t, p.Visible)
	}
}

func TestGetProduct_NotFoundNeverFallsBack(t *testing.T) {
	products := &mockProductRepo{
		GetProductFunc: func(_ context.Context, _ int64) (models.Product, error) {
			return models.Product{}, store.ErrProductNotFound
		},
	}
	svc := newCatalogService(products, &mockCategoryRepo{}, config.FallbackSample)

	_, err := svc.GetProduct(context.Background(), 1)
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestGetProduct_FallbackSample_ByID(t *testing.T) {
	products := &mockProductRepo{
		GetProductFunc: func(_ context.Context, _ int64) (models.Product, error) {
			return models.Product{}, errors.New("connection refused")
		},
	}
	svc := newCatalogService(products, &mockCategoryRepo{}, config.FallbackSample)

	got, err := svc.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	_, err = svc.GetProduct(context.Background(), 9999)
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestCreateProduct_MissingFields(t *testing.T) {
	svc := newCatalogService(&mockProductRepo{}, &mockCategoryRepo{}, config.FallbackNone)

	_, err := svc.CreateProduct(context.Background(), models.Product{Name: "Press"})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestListCategories_AnnotatesVisibleCounts(t *testing.T) {
	categories := &mockCategoryRepo{
		ListCategoriesFunc: func(_ context.Context) ([]models.Category, error) {
			return []models.Category{{ID: 1, Name: "Presses"}, {ID: 2, Name: "Machining"}}, nil
		},
	}
	products := &mockProductRepo{
		CountVisibleByCategoryFunc: func(_ context.Context, name string) (int, error) {
			if name == "Presses" {
				return 3, nil
			}
			return 0, nil
		},
	}
	svc := newCatalogService(products, categories, config.FallbackNone)

	got, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].ProductCount)
	assert.Equal(t, 0, got[1].ProductCount)
}

func TestUpdateCategory_RenameCascadesLabel(t *testing.T) {
	relabeled := false
	categories := &mockCategoryRepo{
		GetCategoryFunc: func(_ context.Context, id int64) (models.Category, error) {
			return models.Category{ID: id, Name: "Presses"}, nil
		},
		UpdateCategoryFunc: func(_ context.Context, category models.Category) (models.Category, error) {
			return category, nil
		},
	}
	products := &mockProductRepo{
		RelabelCategoryFunc: func(_ context.Context, categoryID int64, name string) error {
			relabeled = true
			assert.Equal(t, int64(1), categoryID)
			assert.Equal(t, "Metal presses", name)
			return nil
		},
	}
	svc := newCatalogService(products, categories, config.FallbackNone)

	_, err := svc.UpdateCategory(context.Background(), models.Category{ID: 1, Name: "Metal presses"})
	require.NoError(t, err)
	assert.True(t, relabeled)
}

func TestUpdateCategory_NoRenameNoCascade(t *testing.T) {
	categories := &mockCategoryRepo{
		GetCategoryFunc: func(_ context.Context, id int64) (models.Category, error) {
			return models.Category{ID: id, Name: "Presses"}, nil
		},
		UpdateCategoryFunc: func(_ context.Context, category models.Category) (models.Category, error) {
			return category, nil
		},
	}
	// RelabelCategoryFunc deliberately unset: a call would panic the test
	svc := newCatalogService(&mockProductRepo{}, categories, config.FallbackNone)

	_, err := svc.UpdateCategory(context.Background(), models.Category{ID: 1, Name: "Presses", Description: "new"})
	require.NoError(t, err)
}

func TestDeleteCategory_BlockedByVisibleProducts(t *testing.T) {
	categories := &mockCategoryRepo{
		GetCategoryFunc: func(_ context.Context, id int64) (models.Category, error) {
			return models.Category{ID: id, Name: "Presses"}, nil
		},
	}
	products := &mockProductRepo{
		CountVisibleByCategoryFunc: func(_ context.Context, _ string) (int, error) {
			return 2, nil
		},
	}
	svc := newCatalogService(products, categories, config.FallbackNone)

	err := svc.DeleteCategory(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCategoryInUse)
}

func TestDeleteCategory_UnblockedWhenProductsHidden(t *testing.T) {
	deleted := false
	categories := &mockCategoryRepo{
		GetCategoryFunc: func(_ context.Context, id int64) (models.Category, error) {
			return models.Category{ID: id, Name: "Presses"}, nil
		},
		DeleteCategoryFunc: func(_ context.Context, id int64) error {
			deleted = true
			return nil
		},
	}
	products := &mockProductRepo{
		CountVisibleByCategoryFunc: func(_ context.Context, _ string) (int, error) {
			return 0, nil
		},
	}
	svc := newCatalogService(products, categories, config.FallbackNone)

	require.NoError(t, svc.DeleteCategory(context.Background(), 1))
	assert.True(t, deleted)
}
