package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
	"github.com/savrasovpm/go-pantry-keeper/internal/store"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

// freezerService is the concrete implementation of [FreezerService].
type freezerService struct {
	freezerRepository store.FreezerRepository
	logger            *logger.Logger
}

func NewFreezerService(freezerRepository store.FreezerRepository, logger *logger.Logger) FreezerService {
	return &freezerService{
		freezerRepository: freezerRepository,
		logger:            logger,
	}
}

func (s *freezerService) ListFreezerItems(ctx context.Context) ([]models.FreezerItem, error) {
	items, err := s.freezerRepository.ListFreezerItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing freezer items failed: %w", err)
	}
	return items, nil
}

func (s *freezerService) GetFreezerItem(ctx context.Context, id int64) (models.FreezerItem, error) {
	item, err := s.freezerRepository.GetFreezerItem(ctx, id)
	if err != nil {
		return models.FreezerItem{}, fmt.Errorf("getting freezer item failed: %w", err)
	}
	return item, nil
}

func (s *freezerService) CreateFreezerItem(ctx context.Context, item models.FreezerItem) (models.FreezerItem, error) {
	if err := validateFreezerItem(item); err != nil {
		return models.FreezerItem{}, err
	}

	created, err := s.freezerRepository.CreateFreezerItem(ctx, item)
	if err != nil {
		return models.FreezerItem{}, fmt.Errorf("creating freezer item failed: %w", err)
	}
	return created, nil
}

func (s *freezerService) UpdateFreezerItem(ctx context.Context, item models.FreezerItem) (models.FreezerItem, error) {
	if err := validateFreezerItem(item); err != nil {
		return models.FreezerItem{}, err
	}

	updated, err := s.freezerRepository.UpdateFreezerItem(ctx, item)
	if err != nil {
		return models.FreezerItem{}, fmt.Errorf("updating freezer item failed: %w", err)
	}
	return updated, nil
}

func (s *freezerService) DeleteFreezerItem(ctx context.Context, id int64) error {
	if err := s.freezerRepository.DeleteFreezerItem(ctx, id); err != nil {
		return fmt.Errorf("deleting freezer item failed: %w", err)
	}
	return nil
}

func validateFreezerItem(item models.FreezerItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return ErrValidationEmptyName
	}
	if item.Quantity <= 0 {
		return ErrValidationBadQuantity
	}
	if item.CategoryID == 0 {
		return ErrValidationMissingCategory
	}
	return nil
}
