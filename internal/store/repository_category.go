package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/models"
	"github.com/jackc/pgerrcode"
)

// categoryRepository is the PostgreSQL-backed implementation of
// [CategoryRepository].
type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCategoryRepository constructs a [CategoryRepository] backed by the
// provided database connection and logger.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

func scanCategory(row userScanner) (models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// CreateCategory persists a new category. Returns [ErrCategoryNameTaken] when
// the name collides with an existing category, compared case-insensitively.
func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCategory,
		category.Name, category.Description, category.Image, category.Active)

	created, err := scanCategory(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Category{}, ErrCategoryNameTaken
		}
		log.Err(err).Str("func", "*categoryRepository.CreateCategory").Msg("error: scanning error")
		return models.Category{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetCategory retrieves a category by primary key. Returns
// [ErrCategoryNotFound] when no row matches.
func (r *categoryRepository) GetCategory(ctx context.Context, id int64) (models.Category, error) {
	log := logger.FromContext(ctx)

	found, err := scanCategory(r.db.QueryRowContext(ctx, getCategory, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, ErrCategoryNotFound
		}
		log.Err(err).Str("func", "*categoryRepository.GetCategory").Msg("error: scanning error")
		return models.Category{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListCategories returns all categories ordered by name. ProductCount is not
// populated here; the catalog service fills it in.
func (r *categoryRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCategories)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

// UpdateCategory overwrites a category row and returns the stored result.
// Returns [ErrCategoryNotFound] when the id does not resolve and
// [ErrCategoryNameTaken] on a rename collision.
func (r *categoryRepository) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateCategory,
		category.ID, category.Name, category.Description, category.Image, category.Active)

	updated, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, ErrCategoryNotFound
		}
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Category{}, ErrCategoryNameTaken
		}
		log.Err(err).Str("func", "*categoryRepository.UpdateCategory").Msg("error: scanning error")
		return models.Category{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteCategory removes a category row. Products referencing it keep their
// denormalized label; the FK sets their category_id to NULL.
func (r *categoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteCategory, id)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.DeleteCategory").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
