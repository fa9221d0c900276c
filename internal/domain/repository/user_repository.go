package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"problem_app/internal/common"
	"problem_app/internal/domain/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Exists(ctx context.Context, username string) (bool, error)
	ListActive(ctx context.Context) ([]model.User, error)
	UpdatePasswordHash(ctx context.Context, id, hash string) error
}

type pgUserRepository struct {
	db *sql.DB
}

func NewPgUserRepository(db *sql.DB) UserRepository {
	return &pgUserRepository{db: db}
}

func (r *pgUserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (id, username, email, password_hash, is_active, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Username, user.Email, user.PasswordHash, user.IsActive, user.CreatedAt)
	if err != nil {
		if common.IsUniqueViolation(err) {
			return fmt.Errorf("user with given username already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgUserRepository.Create: %w", err)
	}
	return nil
}

// FindByUsername matches the username exactly and skips inactive accounts.
func (r *pgUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id, username, email, password_hash, is_active, created_at
	          FROM users WHERE username = $1 AND is_active = TRUE`
	return r.scanOne(r.db.QueryRowContext(ctx, query, username), "FindByUsername")
}

func (r *pgUserRepository) scanOne(row *sql.Row, op string) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.IsActive, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.%s: %w", op, err)
	}
	return user, nil
}

// Exists ignores the active flag so deactivated names stay reserved.
func (r *pgUserRepository) Exists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("pgUserRepository.Exists: %w", err)
	}
	return exists, nil
}

func (r *pgUserRepository) ListActive(ctx context.Context) ([]model.User, error) {
	query := `SELECT id, username, email, password_hash, is_active, created_at
	          FROM users WHERE is_active = TRUE ORDER BY username ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgUserRepository.ListActive query: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsActive, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgUserRepository.ListActive scan: %w", err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgUserRepository.ListActive rows.Err: %w", err)
	}
	return users, nil
}

func (r *pgUserRepository) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET password_hash = $1 WHERE id = $2`, hash, id)
	if err != nil {
		return fmt.Errorf("pgUserRepository.UpdatePasswordHash: %w", err)
	}
	return affectedOrNotFound(res, common.ErrNotFound)
}
