package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/logger"
	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/model"
)

// Snippet manages owner-scoped snippet operations. A snippet can only
// reference a category its owner also owns.
type Snippet struct {
	snippetStore  model.SnippetStore
	categoryStore model.CategoryStore
	logger        *logger.Logger
}

func NewSnippet(
	snippetStore model.SnippetStore,
	categoryStore model.CategoryStore,
	logger *logger.Logger,
) *Snippet {
	return &Snippet{
		snippetStore:  snippetStore,
		categoryStore: categoryStore,
		logger:        logger,
	}
}

// Create inserts a snippet after verifying the target category exists
// and belongs to the caller.
func (s *Snippet) Create(ctx context.Context, params model.CreateSnippetParams) (model.Snippet, error) {
	_, err := s.categoryStore.GetByIDAndOwner(ctx, params.CategoryID, params.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Snippet{}, err
		}
		return model.Snippet{}, fmt.Errorf("failed to get category by id: %w", err)
	}

	now := time.Now()
	snippet := model.Snippet{
		Title:      params.Title,
		Content:    params.Content,
		Language:   params.Language,
		UserID:     params.UserID,
		CategoryID: params.CategoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.snippetStore.Create(ctx, snippet)
	if err != nil {
		return model.Snippet{}, fmt.Errorf("failed to create snippet: %w", err)
	}

	s.logger.Info("Snippet service: snippet created",
		"snippet_id", created.ID,
		"user_id", params.UserID)

	return created, nil
}

// Get fetches a snippet by (id, owner).
func (s *Snippet) Get(ctx context.Context, userID, snippetID int64) (model.Snippet, error) {
	snippet, err := s.snippetStore.GetByIDAndOwner(ctx, snippetID, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Snippet{}, err
		}
		return model.Snippet{}, fmt.Errorf("failed to get snippet by id: %w", err)
	}

	return snippet, nil
}

// List returns all snippets owned by the user.
func (s *Snippet) List(ctx context.Context, userID int64) ([]model.Snippet, error) {
	snippets, err := s.snippetStore.GetByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get snippets by owner: %w", err)
	}

	return snippets, nil
}

// Update applies field changes. A category move requires the new
// category to pass its own ownership check first; a failed check leaves
// the snippet untouched.
func (s *Snippet) Update(ctx context.Context, params model.UpdateSnippetParams) (model.Snippet, error) {
	snippet, err := s.snippetStore.GetByIDAndOwner(ctx, params.SnippetID, params.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Snippet{}, err
		}
		return model.Snippet{}, fmt.Errorf("failed to get snippet by id: %w", err)
	}

	if params.CategoryID != nil {
		_, err := s.categoryStore.GetByIDAndOwner(ctx, *params.CategoryID, params.UserID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.Snippet{}, err
			}
			return model.Snippet{}, fmt.Errorf("failed to get category by id: %w", err)
		}
		snippet.CategoryID = *params.CategoryID
	}

	if params.Title != nil {
		snippet.Title = *params.Title
	}
	if params.Content != nil {
		snippet.Content = *params.Content
	}
	if params.Language != nil {
		snippet.Language = *params.Language
	}
	snippet.UpdatedAt = time.Now()

	updated, err := s.snippetStore.Update(ctx, snippet)
	if err != nil {
		return model.Snippet{}, fmt.Errorf("failed to update snippet: %w", err)
	}

	return updated, nil
}

// Delete removes a snippet after the ownership check passes.
func (s *Snippet) Delete(ctx context.Context, userID, snippetID int64) error {
	snippet, err := s.snippetStore.GetByIDAndOwner(ctx, snippetID, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get snippet by id: %w", err)
	}

	if err := s.snippetStore.Delete(ctx, snippet.ID); err != nil {
		return fmt.Errorf("failed to delete snippet: %w", err)
	}

	s.logger.Info("Snippet service: snippet deleted",
		"snippet_id", snippetID,
		"user_id", userID)

	return nil
}
