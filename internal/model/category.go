package model

import (
	"context"
	"time"
)

// CategoryStore defines persistence operations for categories. Every
// read is scoped by owner; a category is never addressable by id alone.
type CategoryStore interface {
	Create(ctx context.Context, category Category) (Category, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID int64) (Category, error)
	GetByNameAndOwner(ctx context.Context, name string, ownerID int64) (Category, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]Category, error)
	Update(ctx context.Context, category Category) (Category, error)
	Delete(ctx context.Context, id int64) error
}

// Category groups snippets for a single user. Names are unique per
// owner, not globally.
type Category struct {
	ID        int64
	Name      string
	UserID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateCategoryParams contains parameters to create a category.
type CreateCategoryParams struct {
	UserID int64
	Name   string
}

// UpdateCategoryParams contains parameters to rename a category.
type UpdateCategoryParams struct {
	UserID     int64
	CategoryID int64
	Name       string
}
