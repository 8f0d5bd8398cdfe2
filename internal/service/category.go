package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/logger"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/model"
)

// Category manages owner-scoped category operations. Name uniqueness is
// checked per owner; two users may both have a "Work" category.
type Category struct {
	categoryStore model.CategoryStore
	logger        *logger.Logger
}

func NewCategory(categoryStore model.CategoryStore, logger *logger.Logger) *Category {
	return &Category{
		categoryStore: categoryStore,
		logger:        logger,
	}
}

// Create inserts a category after checking for a same-owner name
// collision. The unique index on (user_id, name) backstops the narrow
// race between check and insert.
func (s *Category) Create(ctx context.Context, params model.CreateCategoryParams) (model.Category, error) {
	_, err := s.categoryStore.GetByNameAndOwner(ctx, params.Name, params.UserID)
	if err == nil {
		return model.Category{}, fmt.Errorf("category %q already exists: %w", params.Name, model.ErrConflict)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Category{}, fmt.Errorf("failed to check category name: %w", err)
	}

	now := time.Now()
	category := model.Category{
		Name:      params.Name,
		UserID:    params.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.categoryStore.Create(ctx, category)
	if errors.Is(err, model.ErrConflict) {
		return model.Category{}, fmt.Errorf("category %q already exists: %w", params.Name, model.ErrConflict)
	}
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info("Category service: category created",
		"category_id", created.ID,
		"user_id", params.UserID)

	return created, nil
}

// Get fetches a category by (id, owner). A foreign category is
// indistinguishable from a nonexistent one.
func (s *Category) Get(ctx context.Context, userID, categoryID int64) (model.Category, error) {
	category, err := s.categoryStore.GetByIDAndOwner(ctx, categoryID, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Category{}, err
		}
		return model.Category{}, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

// List returns all categories owned by the user.
func (s *Category) List(ctx context.Context, userID int64) ([]model.Category, error) {
	categories, err := s.categoryStore.GetByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories by owner: %w", err)
	}

	return categories, nil
}

// Update renames a category, re-running the same-owner collision check
// against the new name.
func (s *Category) Update(ctx context.Context, params model.UpdateCategoryParams) (model.Category, error) {
	category, err := s.categoryStore.GetByIDAndOwner(ctx, params.CategoryID, params.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Category{}, err
		}
		return model.Category{}, fmt.Errorf("failed to get category by id: %w", err)
	}

	if params.Name != category.Name {
		_, err := s.categoryStore.GetByNameAndOwner(ctx, params.Name, params.UserID)
		if err == nil {
			return model.Category{}, fmt.Errorf("category %q already exists: %w", params.Name, model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			return model.Category{}, fmt.Errorf("failed to check category name: %w", err)
		}
	}

	category.Name = params.Name
	category.UpdatedAt = time.Now()

	updated, err := s.categoryStore.Update(ctx, category)
	if errors.Is(err, model.ErrConflict) {
		return model.Category{}, fmt.Errorf("category %q already exists: %w", params.Name, model.ErrConflict)
	}
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to update category: %w", err)
	}

	return updated, nil
}

// Delete removes a category after the ownership check passes.
func (s *Category) Delete(ctx context.Context, userID, categoryID int64) error {
	category, err := s.categoryStore.GetByIDAndOwner(ctx, categoryID, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get category by id: %w", err)
	}

	if err := s.categoryStore.Delete(ctx, category.ID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.logger.Info("Category service: category deleted",
		"category_id", categoryID,
		"user_id", userID)

	return nil
}
