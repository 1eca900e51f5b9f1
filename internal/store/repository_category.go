package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

// categoryRepository is the PostgreSQL-backed implementation of
// [CategoryRepository].
type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCategories)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("error: listing categories")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var category models.Category
		if err = rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		categories = append(categories, category)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return categories, nil
}

// CreateCategory persists a new category. A duplicate name maps to
// [ErrCategoryAlreadyExists] via the unique constraint.
func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	var created models.Category
	row := r.db.QueryRowContext(ctx, createCategory, category.Name)
	if err := row.Scan(&created.ID, &created.Name); err != nil {
		log.Err(err).Str("func", "*categoryRepository.CreateCategory").Msg("error: creating category")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Category{}, ErrCategoryAlreadyExists
		default:
			return models.Category{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// DeleteCategory removes a category. A foreign-key violation means recipes
// or freezer items still reference it and maps to [ErrCategoryInUse].
func (r *categoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCategory, id)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.DeleteCategory").Int64("category_id", id).Msg("error: deleting category")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return ErrCategoryInUse
		default:
			return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
		}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
