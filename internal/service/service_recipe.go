package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
	"github.com/savrasovpm/go-pantry-keeper/internal/store"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

// recipeService is the concrete implementation of [RecipeService].
type recipeService struct {
	recipeRepository store.RecipeRepository
	logger           *logger.Logger
}

func NewRecipeService(recipeRepository store.RecipeRepository, logger *logger.Logger) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		logger:           logger,
	}
}

func (s *recipeService) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	recipes, err := s.recipeRepository.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing recipes failed: %w", err)
	}
	return recipes, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, id int64) (models.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipe(ctx, id)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("getting recipe failed: %w", err)
	}
	return recipe, nil
}

// SearchRecipes treats an empty query as "list everything".
func (s *recipeService) SearchRecipes(ctx context.Context, query string) ([]models.Recipe, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.ListRecipes(ctx)
	}

	recipes, err := s.recipeRepository.SearchRecipes(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching recipes failed: %w", err)
	}
	return recipes, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	if err := validateRecipe(recipe); err != nil {
		return models.Recipe{}, err
	}

	created, err := s.recipeRepository.CreateRecipe(ctx, recipe)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("creating recipe failed: %w", err)
	}
	return created, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	if err := validateRecipe(recipe); err != nil {
		return models.Recipe{}, err
	}

	updated, err := s.recipeRepository.UpdateRecipe(ctx, recipe)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("updating recipe failed: %w", err)
	}
	return updated, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id int64) error {
	if err := s.recipeRepository.DeleteRecipe(ctx, id); err != nil {
		return fmt.Errorf("deleting recipe failed: %w", err)
	}
	return nil
}

func validateRecipe(recipe models.Recipe) error {
	if strings.TrimSpace(recipe.Name) == "" {
		return ErrValidationEmptyName
	}
	if recipe.CategoryID == 0 {
		return ErrValidationMissingCategory
	}
	return nil
}
