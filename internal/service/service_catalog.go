package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/heavymart/backend/internal/config"
	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/internal/store"
	"github.com/heavymart/backend/models"
)

// catalogService is the concrete implementation of CatalogService. Public
// read paths honor the configured storage-unavailability fallback policy;
// admin and write paths always fail closed.
type catalogService struct {
	products   store.ProductRepository
	categories store.CategoryRepository

	// fallback is config.FallbackNone or config.FallbackSample.
	fallback string

	logger *logger.Logger
}

// NewCatalogService constructs a CatalogService wired to the given
// repositories and the configured fallback policy.
func NewCatalogService(products store.ProductRepository, categories store.CategoryRepository, cfg config.Catalog, logger *logger.Logger) CatalogService {
	return &catalogService{
		products:   products,
		categories: categories,
		fallback:   cfg.Fallback,
		logger:     logger,
	}
}

// ListProducts returns the storefront catalog: visible products, newest
// first. Under FallbackSample a storage failure yields the built-in sample
// set instead of an error.
func (c *catalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	products, err := c.products.ListVisibleProducts(ctx)
	if err != nil {
		if c.fallback == config.FallbackSample {
			log.Warn().Err(err).Msg("catalog storage unavailable, serving sample products")
			return sampleProducts(), nil
		}
		log.Err(err).Msg("product listing ended with error")
		return nil, fmt.Errorf("product listing ended with error: %w", err)
	}

	return products, nil
}

// ListAllProducts returns every product including hidden ones. Admin only at
// the route layer; no fallback applies.
func (c *catalogService) ListAllProducts(ctx context.Context) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	products, err := c.products.ListAllProducts(ctx)
	if err != nil {
		log.Err(err).Msg("product listing ended with error")
		return nil, fmt.Errorf("product listing ended with error: %w", err)
	}

	return products, nil
}

// GetProduct returns one product by id. Not-found propagates as
// store.ErrProductNotFound; other storage failures honor the fallback policy
// through the sample lookup table.
func (c *catalogService) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	product, err := c.products.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			return models.Product{}, err
		}
		if c.fallback == config.FallbackSample {
			if sample, ok := sampleProductByID(id); ok {
				log.Warn().Err(err).Int64("id", id).Msg("catalog storage unavailable, serving sample product")
				return sample, nil
			}
			return models.Product{}, store.ErrProductNotFound
		}
		log.Err(err).Int64("id", id).Msg("product lookup ended with error")
		return models.Product{}, fmt.Errorf("product lookup ended with error: %w", err)
	}

	return product, nil
}

// CreateProduct validates required fields and persists a new catalog entry.
func (c *catalogService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	if product.Name == "" || product.Description == "" || product.Category == "" {
		return models.Product{}, ErrMissingFields
	}

	created, err := c.products.CreateProduct(ctx, product)
	if err != nil {
		log.Err(err).Str("name", product.Name).Msg("product creation ended with error")
		return models.Product{}, fmt.Errorf("product creation ended with error: %w", err)
	}

	return created, nil
}

// UpdateProduct applies a partial update to an existing product.
func (c *catalogService) UpdateProduct(ctx context.Context, update models.ProductUpdate) (models.Product, error) {
	log := logger.FromContext(ctx)

	updated, err := c.products.UpdateProduct(ctx, update)
	if err != nil {
		log.Err(err).Int64("id", update.ID).Msg("product update ended with error")
		return models.Product{}, fmt.Errorf("product update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteProduct removes a product by id.
func (c *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := c.products.DeleteProduct(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("product deletion ended with error")
		return fmt.Errorf("product deletion ended with error: %w", err)
	}

	return nil
}

// ListCategories returns all categories, each annotated with the count of
// visible products currently carrying its label.
func (c *catalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	categories, err := c.categories.ListCategories(ctx)
	if err != nil {
		log.Err(err).Msg("category listing ended with error")
		return nil, fmt.Errorf("category listing ended with error: %w", err)
	}

	for i := range categories {
		count, err := c.products.CountVisibleByCategory(ctx, categories[i].Name)
		if err != nil {
			log.Err(err).Str("name", categories[i].Name).Msg("category product count ended with error")
			return nil, fmt.Errorf("category product count ended with error: %w", err)
		}
		categories[i].ProductCount = count
	}

	return categories, nil
}

// CreateCategory persists a new category. Name is required; uniqueness is
// case-insensitive.
func (c *catalogService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	if category.Name == "" {
		return models.Category{}, ErrMissingFields
	}

	created, err := c.categories.CreateCategory(ctx, category)
	if err != nil {
		log.Err(err).Str("name", category.Name).Msg("category creation ended with error")
		return models.Category{}, fmt.Errorf("category creation ended with error: %w", err)
	}

	return created, nil
}

// UpdateCategory rewrites a category. A rename cascades the denormalized
// label to every product referencing the category.
func (c *catalogService) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	current, err := c.categories.GetCategory(ctx, category.ID)
	if err != nil {
		return models.Category{}, fmt.Errorf("category lookup ended with error: %w", err)
	}

	updated, err := c.categories.UpdateCategory(ctx, category)
	if err != nil {
		log.Err(err).Int64("id", category.ID).Msg("category update ended with error")
		return models.Category{}, fmt.Errorf("category update ended with error: %w", err)
	}

	if current.Name != updated.Name {
		if err := c.products.RelabelCategory(ctx, updated.ID, updated.Name); err != nil {
			log.Err(err).Int64("id", updated.ID).Msg("category relabel ended with error")
			return models.Category{}, fmt.Errorf("category relabel ended with error: %w", err)
		}
	}

	return updated, nil
}

// DeleteCategory removes a category unless a visible product still carries
// its label, in which case ErrCategoryInUse is returned. Hidden products do
// not block deletion.
func (c *catalogService) DeleteCategory(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	category, err := c.categories.GetCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("category lookup ended with error: %w", err)
	}

	count, err := c.products.CountVisibleByCategory(ctx, category.Name)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("category product count ended with error")
		return fmt.Errorf("category product count ended with error: %w", err)
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	if err := c.categories.DeleteCategory(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("category deletion ended with error")
		return fmt.Errorf("category deletion ended with error: %w", err)
	}

	return nil
}
