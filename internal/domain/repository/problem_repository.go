package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"problem_app/internal/common"
	"problem_app/internal/domain/model"
)

type ProblemRepository interface {
	Create(ctx context.Context, tx *sql.Tx, problem *model.Problem) error
	Update(ctx context.Context, tx *sql.Tx, problem *model.Problem) error
	FindByID(ctx context.Context, id string) (*model.Problem, error)
	List(ctx context.Context, category string) ([]model.Problem, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type pgProblemRepository struct {
	db *sql.DB
}

func NewPgProblemRepository(db *sql.DB) ProblemRepository {
	return &pgProblemRepository{db: db}
}

const problemColumns = `id, problem_number, title, description, difficulty, category, tags,
               acceptance_rate, likes, is_active, created_at, updated_at`

func (r *pgProblemRepository) Create(ctx context.Context, tx *sql.Tx, p *model.Problem) error {
	tags, err := encodeTags(p.Tags)
	if err != nil {
		return err
	}

	query := `INSERT INTO problems (` + problemColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = pick(r.db, tx).ExecContext(ctx, query,
		p.ID, p.ProblemNumber, p.Title, p.Description, p.Difficulty, p.Category, tags,
		p.AcceptanceRate, p.Likes, p.IsActive, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if common.IsUniqueViolation(err) {
			return fmt.Errorf("problem number %d is already taken: %w", p.ProblemNumber, common.ErrConflict)
		}
		return fmt.Errorf("pgProblemRepository.Create: %w", err)
	}
	return nil
}

// Update replaces the caller-editable columns. problem_number and created_at
// are never rewritten.
func (r *pgProblemRepository) Update(ctx context.Context, tx *sql.Tx, p *model.Problem) error {
	tags, err := encodeTags(p.Tags)
	if err != nil {
		return err
	}

	query := `UPDATE problems SET
                title = $1, description = $2, difficulty = $3, category = $4, tags = $5,
                acceptance_rate = $6, likes = $7, is_active = $8, updated_at = $9
              WHERE id = $10`
	res, err := pick(r.db, tx).ExecContext(ctx, query,
		p.Title, p.Description, p.Difficulty, p.Category, tags,
		p.AcceptanceRate, p.Likes, p.IsActive, p.UpdatedAt, p.ID)
	if err != nil {
		return fmt.Errorf("pgProblemRepository.Update: %w", err)
	}
	return affectedOrNotFound(res, common.ErrNotFound)
}

// FindByID only returns active problems.
func (r *pgProblemRepository) FindByID(ctx context.Context, id string) (*model.Problem, error) {
	query := `SELECT ` + problemColumns + ` FROM problems WHERE id = $1 AND is_active = TRUE`

	p, err := scanProblem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgProblemRepository.FindByID: %w", err)
	}
	return p, nil
}

// List returns active problems ordered by number. An empty category means no filter.
func (r *pgProblemRepository) List(ctx context.Context, category string) ([]model.Problem, error) {
	var query strings.Builder
	query.WriteString(`SELECT ` + problemColumns + ` FROM problems WHERE is_active = TRUE`)

	var args []any
	if category != "" {
		query.WriteString(` AND category = $1`)
		args = append(args, category)
	}
	query.WriteString(` ORDER BY problem_number ASC`)

	rows, err := r.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("pgProblemRepository.List query: %w", err)
	}
	defer rows.Close()

	problems := []model.Problem{}
	for rows.Next() {
		p, err := scanProblem(rows)
		if err != nil {
			return nil, fmt.Errorf("pgProblemRepository.List scan: %w", err)
		}
		problems = append(problems, *p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgProblemRepository.List rows.Err: %w", err)
	}
	return problems, nil
}

func (r *pgProblemRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM problems WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgProblemRepository.Delete: %w", err)
	}
	return affectedOrNotFound(res, common.ErrNotFound)
}

func (r *pgProblemRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM problems`).Scan(&n); err != nil {
		return 0, fmt.Errorf("pgProblemRepository.Count: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProblem(row rowScanner) (*model.Problem, error) {
	var (
		p    model.Problem
		tags []byte
	)
	err := row.Scan(&p.ID, &p.ProblemNumber, &p.Title, &p.Description, &p.Difficulty, &p.Category, &tags,
		&p.AcceptanceRate, &p.Likes, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Tags = []string{}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &p.Tags); err != nil {
			return nil, fmt.Errorf("decode tags of problem %s: %w", p.ID, err)
		}
	}
	return &p, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(b), nil
}
