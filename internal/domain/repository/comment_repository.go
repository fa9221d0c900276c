package repository

import (
	"context"
	"database/sql"
	"fmt"

	"problem_app/internal/common"
	"problem_app/internal/domain/model"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	ListActive(ctx context.Context) ([]model.Comment, error)
	Delete(ctx context.Context, id string) error
}

type pgCommentRepository struct {
	db *sql.DB
}

func NewPgCommentRepository(db *sql.DB) CommentRepository {
	return &pgCommentRepository{db: db}
}

func (r *pgCommentRepository) Create(ctx context.Context, c *model.Comment) error {
	query := `INSERT INTO comments (id, content, username, user_id, created_at, is_active)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.db.ExecContext(ctx, query, c.ID, c.Content, c.Username, c.UserID, c.CreatedAt, c.IsActive); err != nil {
		return fmt.Errorf("pgCommentRepository.Create: %w", err)
	}
	return nil
}

// ListActive returns active comments, newest first.
func (r *pgCommentRepository) ListActive(ctx context.Context) ([]model.Comment, error) {
	query := `SELECT id, content, username, user_id, created_at, is_active
	          FROM comments WHERE is_active = TRUE ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgCommentRepository.ListActive query: %w", err)
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.Content, &c.Username, &c.UserID, &c.CreatedAt, &c.IsActive); err != nil {
			return nil, fmt.Errorf("pgCommentRepository.ListActive scan: %w", err)
		}
		comments = append(comments, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgCommentRepository.ListActive rows.Err: %w", err)
	}
	return comments, nil
}

func (r *pgCommentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgCommentRepository.Delete: %w", err)
	}
	return affectedOrNotFound(res, common.ErrNotFound)
}
