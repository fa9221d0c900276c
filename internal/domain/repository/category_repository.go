package repository

import (
	"context"
	"database/sql"
	"fmt"

	"problem_app/internal/domain/model"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	List(ctx context.Context) ([]model.Category, error)
	Count(ctx context.Context) (int, error)
}

type pgCategoryRepository struct {
	db *sql.DB
}

func NewPgCategoryRepository(db *sql.DB) CategoryRepository {
	return &pgCategoryRepository{db: db}
}

func (r *pgCategoryRepository) Create(ctx context.Context, c *model.Category) error {
	query := `INSERT INTO categories (id, key, name, icon, color, problem_count, easy_count, medium_count, hard_count, is_active, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Key, c.Name, c.Icon, c.Color,
		c.ProblemCount, c.EasyCount, c.MediumCount, c.HardCount, c.IsActive, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("pgCategoryRepository.Create: %w", err)
	}
	return nil
}

func (r *pgCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	query := `SELECT id, key, name, icon, color, problem_count, easy_count, medium_count, hard_count, is_active, created_at
	          FROM categories WHERE is_active = TRUE ORDER BY created_at ASC, name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgCategoryRepository.List query: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Key, &c.Name, &c.Icon, &c.Color,
			&c.ProblemCount, &c.EasyCount, &c.MediumCount, &c.HardCount, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgCategoryRepository.List scan: %w", err)
		}
		categories = append(categories, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgCategoryRepository.List rows.Err: %w", err)
	}
	return categories, nil
}

func (r *pgCategoryRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		return 0, fmt.Errorf("pgCategoryRepository.Count: %w", err)
	}
	return n, nil
}
