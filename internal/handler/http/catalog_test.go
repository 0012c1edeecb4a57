package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heavymart/backend/internal/service"
	"github.com/heavymart/backend/internal/store"
	"github.com/heavymart/backend/models"
)

// adminSession resolves every token as an active admin.
func adminSession() *mockAuthService {
	return &mockAuthService{
		resolveSessionFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{ID: 1, Role: models.RoleAdmin, Active: true}, nil
		},
	}
}

func TestListProducts(t *testing.T) {
	catalog := &mockCatalogService{
		listProductsFn: func(_ context.Context) ([]models.Product, error) {
			return []models.Product{
				{ID: 1, Name: "Diesel Generator 40kW", Visible: true},
				{ID: 2, Name: "Air Compressor", Visible: true},
			}, nil
		},
	}
	h := newTestHandler(t, &service.Services{Catalog: catalog})

	rec := doRequest(t, h, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Len(t, products, 2)
}

func TestGetProduct(t *testing.T) {
	catalog := &mockCatalogService{
		getProductFn: func(_ context.Context, id int64) (models.Product, error) {
			if id != 5 {
				return models.Product{}, store.ErrProductNotFound
			}
			return models.Product{ID: 5, Name: "Welding Machine", Visible: true}, nil
		},
	}
	h := newTestHandler(t, &service.Services{Catalog: catalog})

	t.Run("found", func(t *testing.T) {
		rec := doRequest(t, h, httptest.NewRequest(http.MethodGet, "/api/products/5", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var product models.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
		assert.Equal(t, "Welding Machine", product.Name)
	})

	t.Run("missing", func(t *testing.T) {
		rec := doRequest(t, h, httptest.NewRequest(http.MethodGet, "/api/products/999", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"product not found"}`, rec.Body.String())
	})

	t.Run("non-numeric id", func(t *testing.T) {
		rec := doRequest(t, h, httptest.NewRequest(http.MethodGet, "/api/products/abc", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateProduct(t *testing.T) {
	catalog := &mockCatalogService{
		createProductFn: func(_ context.Context, product models.Product) (models.Product, error) {
			product.ID = 11
			return product, nil
		},
	}
	h := newTestHandler(t, &service.Services{Auth: adminSession(), Catalog: catalog})

	req := httptest.NewRequest(http.MethodPost, "/api/products", jsonBody(t, map[string]any{
		"name":     "Hydraulic Press",
		"price":    "€12,500",
		"category": "Workshop",
		"visible":  true,
	}))
	req.Header.Set("Authorization", "Bearer tok")
	rec := doRequest(t, h, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var product models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
	assert.Equal(t, int64(11), product.ID)
	assert.Equal(t, "Hydraulic Press", product.Name)
}

func TestUpdateProductSetsPathID(t *testing.T) {
	var gotUpdate models.ProductUpdate
	catalog := &mockCatalogService{
		updateProductFn: func(_ context.Context, update models.ProductUpdate) (models.Product, error) {
			gotUpdate = update
			return models.Product{ID: update.ID}, nil
		},
	}
	h := newTestHandler(t, &service.Services{Auth: adminSession(), Catalog: catalog})

	req := httptest.NewRequest(http.MethodPut, "/api/products/8", jsonBody(t, map[string]any{
		"id":   999,
		"name": "Renamed",
	}))
	req.Header.Set("Authorization", "Bearer tok")
	rec := doRequest(t, h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// the path parameter wins over any id in the body
	assert.Equal(t, int64(8), gotUpdate.ID)
	require.NotNil(t, gotUpdate.Name)
	assert.Equal(t, "Renamed", *gotUpdate.Name)
}

func TestDeleteCategoryInUse(t *testing.T) {
	catalog := &mockCatalogService{
		deleteCategoryFn: func(_ context.Context, _ int64) error {
			return service.ErrCategoryInUse
		},
	}
	h := newTestHandler(t, &service.Services{Auth: adminSession(), Catalog: catalog})

	req := httptest.NewRequest(http.MethodDelete, "/api/categories/3", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := doRequest(t, h, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"category has visible products"}`, rec.Body.String())
}

func TestCreateCategoryNameTaken(t *testing.T) {
	catalog := &mockCatalogService{
		createCategoryFn: func(_ context.Context, _ models.Category) (models.Category, error) {
			return models.Category{}, store.ErrCategoryNameTaken
		},
	}
	h := newTestHandler(t, &service.Services{Auth: adminSession(), Catalog: catalog})

	req := httptest.NewRequest(http.MethodPost, "/api/categories", jsonBody(t, map[string]string{
		"name": "Generators",
	}))
	req.Header.Set("Authorization", "Bearer tok")
	rec := doRequest(t, h, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAdminListAllProducts(t *testing.T) {
	catalog := &mockCatalogService{
		listAllProductsFn: func(_ context.Context) ([]models.Product, error) {
			return []models.Product{
				{ID: 1, Visible: true},
				{ID: 2, Visible: false},
			}, nil
		},
	}
	h := newTestHandler(t, &service.Services{Auth: adminSession(), Catalog: catalog})

	req := httptest.NewRequest(http.MethodGet, "/api/products/admin/all", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := doRequest(t, h, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Len(t, products, 2)
}
