package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

// recipeRepository is the PostgreSQL-backed implementation of
// [RecipeRepository]. Ingredient and instruction lists are stored as JSONB
// columns and (un)marshalled at the repository boundary.
type recipeRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	logger.Debug().Msg("creating recipe repository")
	return &recipeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *recipeRepository) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listRecipes)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.ListRecipes").Msg("error: listing recipes")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanRecipes(rows)
}

func (r *recipeRepository) GetRecipe(ctx context.Context, id int64) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	recipe, err := scanRecipe(r.db.QueryRowContext(ctx, getRecipe, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Recipe{}, ErrRecipeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.GetRecipe").Int64("recipe_id", id).Msg("error: getting recipe")
		return models.Recipe{}, err
	}

	return recipe, nil
}

// escapeLikePattern quotes the LIKE metacharacters so a user query matches
// them literally.
func escapeLikePattern(query string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(query)
}

// SearchRecipes matches query case-insensitively against the recipe name and
// the ingredient list. LIKE metacharacters in query are matched literally.
func (r *recipeRepository) SearchRecipes(ctx context.Context, query string) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	pattern := "%" + escapeLikePattern(query) + "%"
	sqlQuery, args, err := sq.
		Select("recipe_id", "name", "ingredients", "instructions", "image", "category_id").
		From("recipes").
		Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"ingredients::text": pattern},
		}).
		OrderBy("LOWER(name)", "recipe_id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.SearchRecipes").Msg("error: building search query")
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.SearchRecipes").Msg("error: searching recipes")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanRecipes(rows)
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	ingredients, instructions, err := marshalRecipeLists(recipe)
	if err != nil {
		return models.Recipe{}, err
	}

	row := r.db.QueryRowContext(ctx, createRecipe,
		recipe.Name, ingredients, instructions, recipe.Image, recipe.CategoryID)

	created, err := scanRecipe(row)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.CreateRecipe").Msg("error: creating recipe")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Recipe{}, ErrCategoryNotFound
		default:
			return models.Recipe{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	ingredients, instructions, err := marshalRecipeLists(recipe)
	if err != nil {
		return models.Recipe{}, err
	}

	row := r.db.QueryRowContext(ctx, updateRecipe,
		recipe.Name, ingredients, instructions, recipe.Image, recipe.CategoryID, recipe.ID)

	updated, err := scanRecipe(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Recipe{}, ErrRecipeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.UpdateRecipe").Int64("recipe_id", recipe.ID).Msg("error: updating recipe")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Recipe{}, ErrCategoryNotFound
		default:
			return models.Recipe{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteRecipe, id)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.DeleteRecipe").Int64("recipe_id", id).Msg("error: deleting recipe")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecipeNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (models.Recipe, error) {
	var (
		recipe       models.Recipe
		ingredients  []byte
		instructions []byte
	)

	err := row.Scan(&recipe.ID, &recipe.Name, &ingredients, &instructions, &recipe.Image, &recipe.CategoryID)
	if err != nil {
		return models.Recipe{}, err
	}

	if len(ingredients) > 0 {
		if err = json.Unmarshal(ingredients, &recipe.Ingredients); err != nil {
			return models.Recipe{}, fmt.Errorf("%w: ingredients: %v", ErrScanningRow, err)
		}
	}
	if len(instructions) > 0 {
		if err = json.Unmarshal(instructions, &recipe.Instructions); err != nil {
			return models.Recipe{}, fmt.Errorf("%w: instructions: %v", ErrScanningRow, err)
		}
	}

	return recipe, nil
}

func scanRecipes(rows *sql.Rows) ([]models.Recipe, error) {
	recipes := make([]models.Recipe, 0)
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return recipes, nil
}

func marshalRecipeLists(recipe models.Recipe) (ingredients, instructions []byte, err error) {
	if ingredients, err = json.Marshal(recipe.Ingredients); err != nil {
		return nil, nil, fmt.Errorf("marshal ingredients: %w", err)
	}
	if instructions, err = json.Marshal(recipe.Instructions); err != nil {
		return nil, nil, fmt.Errorf("marshal instructions: %w", err)
	}
	return ingredients, instructions, nil
}
