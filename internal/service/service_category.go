package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
	"github.com/savrasovpm/go-pantry-keeper/internal/store"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

// categoryService is the concrete implementation of [CategoryService].
type categoryService struct {
	categoryRepository store.CategoryRepository
	logger             *logger.Logger
}

func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepository.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories failed: %w", err)
	}
	return categories, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return models.Category{}, ErrValidationEmptyName
	}

	created, err := s.categoryRepository.CreateCategory(ctx, category)
	if err != nil {
		return models.Category{}, fmt.Errorf("creating category failed: %w", err)
	}
	return created, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.categoryRepository.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("deleting category failed: %w", err)
	}
	return nil
}
