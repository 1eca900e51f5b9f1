package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

// freezerRepository is the PostgreSQL-backed implementation of
// [FreezerRepository]. Reads join the owning category's name in so the
// client can display it without a second lookup.
type freezerRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewFreezerRepository(db *DB, logger *logger.Logger) FreezerRepository {
	logger.Debug().Msg("creating freezer repository")
	return &freezerRepository{
		db:     db,
		logger: logger,
	}
}

func freezerSelect() sq.SelectBuilder {
	return sq.
		Select("f.item_id", "f.name", "f.quantity", "f.category_id", "COALESCE(c.name, '')").
		From("freezer_items f").
		LeftJoin("categories c ON c.category_id = f.category_id").
		PlaceholderFormat(sq.Dollar)
}

func (r *freezerRepository) ListFreezerItems(ctx context.Context) ([]models.FreezerItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := freezerSelect().
		OrderBy("LOWER(f.name)", "f.item_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*freezerRepository.ListFreezerItems").Msg("error: listing freezer items")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.FreezerItem, 0)
	for rows.Next() {
		var item models.FreezerItem
		if err = rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.CategoryID, &item.CategoryName); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return items, nil
}

func (r *freezerRepository) GetFreezerItem(ctx context.Context, id int64) (models.FreezerItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := freezerSelect().
		Where(sq.Eq{"f.item_id": id}).
		ToSql()
	if err != nil {
		return models.FreezerItem{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var item models.FreezerItem
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&item.ID, &item.Name, &item.Quantity, &item.CategoryID, &item.CategoryName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FreezerItem{}, ErrFreezerItemNotFound
		}
		log.Err(err).Str("func", "*freezerRepository.GetFreezerItem").Int64("item_id", id).Msg("error: getting freezer item")
		return models.FreezerItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}

func (r *freezerRepository) CreateFreezerItem(ctx context.Context, item models.FreezerItem) (models.FreezerItem, error) {
	log := logger.FromContext(ctx)

	var id int64
	row := r.db.QueryRowContext(ctx, createFreezerItem, item.Name, item.Quantity, item.CategoryID)
	if err := row.Scan(&id); err != nil {
		log.Err(err).Str("func", "*freezerRepository.CreateFreezerItem").Msg("error: creating freezer item")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.FreezerItem{}, ErrCategoryNotFound
		default:
			return models.FreezerItem{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// re-read with the category name joined in
	return r.GetFreezerItem(ctx, id)
}

func (r *freezerRepository) UpdateFreezerItem(ctx context.Context, item models.FreezerItem) (models.FreezerItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.
		Update("freezer_items").
		Set("name", item.Name).
		Set("quantity", item.Quantity).
		Set("category_id", item.CategoryID).
		Where(sq.Eq{"item_id": item.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return models.FreezerItem{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*freezerRepository.UpdateFreezerItem").Int64("item_id", item.ID).Msg("error: updating freezer item")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.FreezerItem{}, ErrCategoryNotFound
		default:
			return models.FreezerItem{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.FreezerItem{}, fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.FreezerItem{}, ErrFreezerItemNotFound
	}

	return r.GetFreezerItem(ctx, item.ID)
}

func (r *freezerRepository) DeleteFreezerItem(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteFreezerItem, id)
	if err != nil {
		log.Err(err).Str("func", "*freezerRepository.DeleteFreezerItem").Int64("item_id", id).Msg("error: deleting freezer item")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFreezerItemNotFound
	}

	return nil
}
