package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/models"
	"github.com/jackc/pgerrcode"
)

// productRepository is the PostgreSQL-backed implementation of
// [ProductRepository]. Partial updates build their SET clause dynamically with
// squirrel so that only the fields present in a [models.ProductUpdate] are
// touched.
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by the provided
// database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

func scanProduct(row userScanner) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.Category, &p.Price,
		&p.Images, &p.Specs, &p.Tags, &p.Featured, &p.Visible, &p.Rating, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// CreateProduct persists a new catalog entry and returns the stored row.
func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProduct,
		product.Name, product.Description, product.CategoryID, product.Category, product.Price,
		product.Images, product.Specs, product.Tags, product.Featured, product.Visible, product.Rating)

	created, err := scanProduct(row)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Product{}, ErrCategoryNotFound
		}
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error: scanning error")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetProduct retrieves a product by primary key. Returns [ErrProductNotFound]
// when no row matches.
func (r *productRepository) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	found, err := scanProduct(r.db.QueryRowContext(ctx, getProduct, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}
		log.Err(err).Str("func", "*productRepository.GetProduct").Msg("error: scanning error")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListVisibleProducts returns the storefront view: visible products only,
// newest first.
func (r *productRepository) ListVisibleProducts(ctx context.Context) ([]models.Product, error) {
	return r.list(ctx, listVisibleProducts)
}

// ListAllProducts returns every product regardless of visibility. Admin only.
func (r *productRepository) ListAllProducts(ctx context.Context) ([]models.Product, error) {
	return r.list(ctx, listAllProducts)
}

func (r *productRepository) list(ctx context.Context, query string) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.list").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}

// UpdateProduct applies a partial update. Only non-nil fields of update make
// it into the SET clause; updated_at is always refreshed. Returns
// [ErrProductNotFound] when the id does not resolve and [ErrCategoryNotFound]
// when the new category id does not exist.
func (r *productRepository) UpdateProduct(ctx context.Context, update models.ProductUpdate) (models.Product, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("products").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING " + productColumns)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.CategoryID != nil {
		builder = builder.Set("category_id", *update.CategoryID)
	}
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
	}
	if update.Price != nil {
		builder = builder.Set("price", *update.Price)
	}
	if update.Images != nil {
		builder = builder.Set("images", *update.Images)
	}
	if update.Specs != nil {
		builder = builder.Set("specs", *update.Specs)
	}
	if update.Tags != nil {
		builder = builder.Set("tags", *update.Tags)
	}
	if update.Featured != nil {
		builder = builder.Set("featured", *update.Featured)
	}
	if update.Visible != nil {
		builder = builder.Set("visible", *update.Visible)
	}
	if update.Rating != nil {
		builder = builder.Set("rating", *update.Rating)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*productRepository.UpdateProduct").Msg("error building query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Product{}, ErrCategoryNotFound
		}
		log.Err(err).Str("func", "*productRepository.UpdateProduct").Msg("error: scanning error")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteProduct removes a product row. Returns [ErrProductNotFound] when the
// id does not resolve.
func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteProduct, id)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.DeleteProduct").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// CountVisibleByCategory counts visible products carrying the given category
// label, compared case-insensitively.
func (r *productRepository) CountVisibleByCategory(ctx context.Context, name string) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	if err := r.db.QueryRowContext(ctx, countVisibleByCategory, name).Scan(&count); err != nil {
		log.Err(err).Str("func", "*productRepository.CountVisibleByCategory").Msg("error: scanning error")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}

// RelabelCategory rewrites the denormalized category label on every product
// referencing the given category id. Called on category rename.
func (r *productRepository) RelabelCategory(ctx context.Context, categoryID int64, name string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, relabelCategory, categoryID, name); err != nil {
		log.Err(err).Str("func", "*productRepository.RelabelCategory").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
