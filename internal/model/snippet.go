package model

import (
	"context"
	"time"
)

// SnippetStore defines persistence operations for snippets. As with
// categories, every read is scoped by owner.
type SnippetStore interface {
	Create(ctx context.Context, snippet Snippet) (Snippet, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID int64) (Snippet, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]Snippet, error)
	Update(ctx context.Context, snippet Snippet) (Snippet, error)
	Delete(ctx context.Context, id int64) error
}

// Snippet represents a stored code snippet. The category it references
// always belongs to the same user as the snippet itself.
type Snippet struct {
	ID         int64
	Title      string
	Content    string
	Language   string
	UserID     int64
	CategoryID int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CreateSnippetParams contains parameters to create a snippet.
type CreateSnippetParams struct {
	UserID     int64
	Title      string
	Content    string
	Language   string
	CategoryID int64
}

// UpdateSnippetParams contains optional snippet changes. Nil fields are
// left untouched; a non-nil CategoryID moves the snippet to a category
// that must pass its own ownership check.
type UpdateSnippetParams struct {
	UserID     int64
	SnippetID  int64
	Title      *string
	Content    *string
	Language   *string
	CategoryID *int64
}
