package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/model"
)

var _ model.CategoryStore = (*CategoryRepository)(nil)

type CategoryRepository struct {
	db *Connection
}

func NewCategoryRepository(db *Connection) *CategoryRepository {
	return &CategoryRepository{
		db: db,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, category model.Category) (model.Category, error) {
	query := `INSERT INTO categories (name, user_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, name, user_id, created_at, updated_at`

	var saved model.Category
	err := r.db.QueryRow(ctx, query,
		category.Name, category.UserID, category.CreatedAt, category.UpdatedAt,
	).Scan(
		&saved.ID, &saved.Name, &saved.UserID, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Category{}, model.ErrConflict
		}
		return model.Category{}, fmt.Errorf("failed to create category: %w", err)
	}

	return saved, nil
}

func (r *CategoryRepository) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (model.Category, error) {
	query := `SELECT id, name, user_id, created_at, updated_at
			  FROM categories WHERE id = $1 AND user_id = $2`

	var category model.Category
	err := r.db.QueryRow(ctx, query, id, ownerID).Scan(
		&category.ID, &category.Name, &category.UserID, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Category{}, model.ErrNotFound
		}
		return model.Category{}, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func (r *CategoryRepository) GetByNameAndOwner(ctx context.Context, name string, ownerID int64) (model.Category, error) {
	query := `SELECT id, name, user_id, created_at, updated_at
			  FROM categories WHERE name = $1 AND user_id = $2`

	var category model.Category
	err := r.db.QueryRow(ctx, query, name, ownerID).Scan(
		&category.ID, &category.Name, &category.UserID, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Category{}, model.ErrNotFound
		}
		return model.Category{}, fmt.Errorf("failed to get category by name: %w", err)
	}

	return category, nil
}

func (r *CategoryRepository) GetByOwner(ctx context.Context, ownerID int64) ([]model.Category, error) {
	query := `SELECT id, name, user_id, created_at, updated_at
			  FROM categories WHERE user_id = $1
			  ORDER BY id`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories by owner: %w", err)
	}
	defer rows.Close()

	categories := make([]model.Category, 0)
	for rows.Next() {
		var category model.Category
		if err := rows.Scan(
			&category.ID, &category.Name, &category.UserID, &category.CreatedAt, &category.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read category rows: %w", err)
	}

	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category model.Category) (model.Category, error) {
	query := `UPDATE categories SET name = $2, updated_at = $3
			  WHERE id = $1
			  RETURNING id, name, user_id, created_at, updated_at`

	var saved model.Category
	err := r.db.QueryRow(ctx, query,
		category.ID, category.Name, category.UpdatedAt,
	).Scan(
		&saved.ID, &saved.Name, &saved.UserID, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Category{}, model.ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.Category{}, model.ErrConflict
		}
		return model.Category{}, fmt.Errorf("failed to update category: %w", err)
	}

	return saved, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
