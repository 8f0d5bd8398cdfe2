package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/model"
)

var _ model.SnippetStore = (*SnippetRepository)(nil)

type SnippetRepository struct {
	db *Connection
}

func NewSnippetRepository(db *Connection) *SnippetRepository {
	return &SnippetRepository{
		db: db,
	}
}

func (r *SnippetRepository) Create(ctx context.Context, snippet model.Snippet) (model.Snippet, error) {
	query := `INSERT INTO snippets (title, content, language, user_id, category_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, title, content, language, user_id, category_id, created_at, updated_at`

	var saved model.Snippet
	err := r.db.QueryRow(ctx, query,
		snippet.Title, snippet.Content, snippet.Language,
		snippet.UserID, snippet.CategoryID, snippet.CreatedAt, snippet.UpdatedAt,
	).Scan(
		&saved.ID, &saved.Title, &saved.Content, &saved.Language,
		&saved.UserID, &saved.CategoryID, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.Snippet{}, fmt.Errorf("failed to create snippet: %w", err)
	}

	return saved, nil
}

func (r *SnippetRepository) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (model.Snippet, error) {
	query := `SELECT id, title, content, language, user_id, category_id, created_at, updated_at
			  FROM snippets WHERE id = $1 AND user_id = $2`

	var snippet model.Snippet
	err := r.db.QueryRow(ctx, query, id, ownerID).Scan(
		&snippet.ID, &snippet.Title, &snippet.Content, &snippet.Language,
		&snippet.UserID, &snippet.CategoryID, &snippet.CreatedAt, &snippet.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Snippet{}, model.ErrNotFound
		}
		return model.Snippet{}, fmt.Errorf("failed to get snippet by id: %w", err)
	}

	return snippet, nil
}

func (r *SnippetRepository) GetByOwner(ctx context.Context, ownerID int64) ([]model.Snippet, error) {
	query := `SELECT id, title, content, language, user_id, category_id, created_at, updated_at
			  FROM snippets WHERE user_id = $1
			  ORDER BY id`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get snippets by owner: %w", err)
	}
	defer rows.Close()

	snippets := make([]model.Snippet, 0)
	for rows.Next() {
		var snippet model.Snippet
		if err := rows.Scan(
			&snippet.ID, &snippet.Title, &snippet.Content, &snippet.Language,
			&snippet.UserID, &snippet.CategoryID, &snippet.CreatedAt, &snippet.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan snippet row: %w", err)
		}
		snippets = append(snippets, snippet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read snippet rows: %w", err)
	}

	return snippets, nil
}

func (r *SnippetRepository) Update(ctx context.Context, snippet model.Snippet) (model.Snippet, error) {
	query := `UPDATE snippets SET title = $2, content = $3, language = $4, category_id = $5, updated_at = $6
			  WHERE id = $1
			  RETURNING id, title, content, language, user_id, category_id, created_at, updated_at`

	var saved model.Snippet
	err := r.db.QueryRow(ctx, query,
		snippet.ID, snippet.Title, snippet.Content, snippet.Language,
		snippet.CategoryID, snippet.UpdatedAt,
	).Scan(
		&saved.ID, &saved.Title, &saved.Content, &saved.Language,
		&saved.UserID, &saved.CategoryID, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Snippet{}, model.ErrNotFound
		}
		return model.Snippet{}, fmt.Errorf("failed to update snippet: %w", err)
	}

	return saved, nil
}

func (r *SnippetRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM snippets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete snippet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
