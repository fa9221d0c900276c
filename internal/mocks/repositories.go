// Package mocks holds testify mocks for the repository and presence interfaces.
package mocks

import (
	"context"
	"database/sql"

	"github.com/stretchr/testify/mock"

	"problem_app/internal/domain/model"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *UserRepository) Exists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) ListActive(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *UserRepository) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	return m.Called(ctx, id, hash).Error(0)
}

type ProblemRepository struct {
	mock.Mock
}

func (m *ProblemRepository) Create(ctx context.Context, tx *sql.Tx, problem *model.Problem) error {
	return m.Called(ctx, tx, problem).Error(0)
}

func (m *ProblemRepository) Update(ctx context.Context, tx *sql.Tx, problem *model.Problem) error {
	return m.Called(ctx, tx, problem).Error(0)
}

func (m *ProblemRepository) FindByID(ctx context.Context, id string) (*model.Problem, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Problem)
	return p, args.Error(1)
}

func (m *ProblemRepository) List(ctx context.Context, category string) ([]model.Problem, error) {
	args := m.Called(ctx, category)
	problems, _ := args.Get(0).([]model.Problem)
	return problems, args.Error(1)
}

func (m *ProblemRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ProblemRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type SequenceRepository struct {
	mock.Mock
}

func (m *SequenceRepository) NextProblemNumber(ctx context.Context, tx *sql.Tx) (int, error) {
	args := m.Called(ctx, tx)
	return args.Int(0), args.Error(1)
}

type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]model.Category)
	return categories, args.Error(1)
}

func (m *CategoryRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *CommentRepository) ListActive(ctx context.Context) ([]model.Comment, error) {
	args := m.Called(ctx)
	comments, _ := args.Get(0).([]model.Comment)
	return comments, args.Error(1)
}

func (m *CommentRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
