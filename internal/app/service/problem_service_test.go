package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"problem_app/internal/common"
	"problem_app/internal/domain/model"
	"problem_app/internal/logger"
	"problem_app/internal/mocks"
)

type problemFixture struct {
	svc        *ProblemService
	sqlMock    sqlmock.Sqlmock
	problems   *mocks.ProblemRepository
	sequences  *mocks.SequenceRepository
	categories *mocks.CategoryRepository
	now        time.Time
}

func newProblemFixture(t *testing.T) *problemFixture {
	t.Helper()
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, sqlMock.ExpectationsWereMet())
		db.Close()
	})

	f := &problemFixture{
		sqlMock:    sqlMock,
		problems:   &mocks.ProblemRepository{},
		sequences:  &mocks.SequenceRepository{},
		categories: &mocks.CategoryRepository{},
		now:        time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	f.svc = NewProblemService(db, f.problems, f.sequences, f.categories, NewRenderer(), logger.Nop())
	f.svc.now = func() time.Time { return f.now }
	return f
}

func TestProblemService_CreateProblem_OverwritesServerFields(t *testing.T) {
	f := newProblemFixture(t)
	f.sqlMock.ExpectBegin()
	f.sqlMock.ExpectCommit()
	f.sequences.On("NextProblemNumber", mock.Anything, mock.AnythingOfType("*sql.Tx")).Return(13, nil)
	f.problems.On("Create", mock.Anything, mock.AnythingOfType("*sql.Tx"), mock.Anything).Return(nil)

	input := model.Problem{
		ID:            "caller-id",
		ProblemNumber: 999,
		Title:         "  Two Sum ",
		Difficulty:    model.DifficultyEasy,
		IsActive:      false,
		CreatedAt:     time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	got, err := f.svc.CreateProblem(context.Background(), input)
	require.NoError(t, err)

	assert.NotEqual(t, "caller-id", got.ID)
	assert.Equal(t, 13, got.ProblemNumber)
	assert.True(t, got.IsActive)
	assert.Equal(t, f.now, got.CreatedAt)
	assert.Equal(t, f.now, got.UpdatedAt)
	assert.Equal(t, "Two Sum", got.Title)
	assert.Equal(t, []string{}, got.Tags)
}

func TestProblemService_CreateProblem_SequentialNumbers(t *testing.T) {
	f := newProblemFixture(t)
	const n = 4
	for i := 1; i <= n; i++ {
		f.sqlMock.ExpectBegin()
		f.sqlMock.ExpectCommit()
		f.sequences.On("NextProblemNumber", mock.Anything, mock.Anything).Return(i, nil).Once()
	}
	f.problems.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	for want := 1; want <= n; want++ {
		got, err := f.svc.CreateProblem(context.Background(), model.Problem{Title: "P", Difficulty: model.DifficultyMedium})
		require.NoError(t, err)
		assert.Equal(t, want, got.ProblemNumber)
	}
}

func TestProblemService_CreateProblem_RollsBackOnInsertFailure(t *testing.T) {
	f := newProblemFixture(t)
	f.sqlMock.ExpectBegin()
	f.sqlMock.ExpectRollback()
	f.sequences.On("NextProblemNumber", mock.Anything, mock.Anything).Return(2, nil)
	f.problems.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := f.svc.CreateProblem(context.Background(), model.Problem{Title: "P", Difficulty: model.DifficultyHard})
	require.Error(t, err)
	assert.Equal(t, 500, common.HTTPStatusFromError(err))
}

func TestProblemService_CreateProblem_Validation(t *testing.T) {
	tests := []struct {
		name    string
		problem model.Problem
	}{
		{"missing title", model.Problem{Difficulty: model.DifficultyEasy}},
		{"unknown difficulty", model.Problem{Title: "T", Difficulty: "Extreme"}},
		{"negative likes", model.Problem{Title: "T", Difficulty: model.DifficultyEasy, Likes: -1}},
		{"acceptance above 100", model.Problem{Title: "T", Difficulty: model.DifficultyEasy, AcceptanceRate: 101}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProblemFixture(t)
			_, err := f.svc.CreateProblem(context.Background(), tt.problem)
			assert.ErrorIs(t, err, common.ErrValidation)
			f.sequences.AssertNotCalled(t, "NextProblemNumber", mock.Anything, mock.Anything)
		})
	}
}

func TestProblemService_ListProblems_CategoryFilter(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"all", ""},
		{"ALL", ""},
		{"Security", "Security"},
		{" Database ", "Database"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f := newProblemFixture(t)
			f.problems.On("List", mock.Anything, tt.want).Return([]model.Problem{}, nil).Once()

			_, err := f.svc.ListProblems(context.Background(), tt.in)
			require.NoError(t, err)
			f.problems.AssertExpectations(t)
		})
	}
}

func TestProblemService_GetProblem(t *testing.T) {
	t.Run("renders description", func(t *testing.T) {
		f := newProblemFixture(t)
		f.problems.On("FindByID", mock.Anything, "p1").Return(&model.Problem{
			ID: "p1", Description: "Use **bold** text <script>alert(1)</script>",
		}, nil)

		p, err := f.svc.GetProblem(context.Background(), "p1")
		require.NoError(t, err)
		assert.Contains(t, p.DescriptionHTML, "<strong>bold</strong>")
		assert.NotContains(t, p.DescriptionHTML, "<script>")
	})

	t.Run("missing", func(t *testing.T) {
		f := newProblemFixture(t)
		f.problems.On("FindByID", mock.Anything, "nope").Return(nil, common.ErrNotFound)

		_, err := f.svc.GetProblem(context.Background(), "nope")
		assert.ErrorIs(t, err, common.ErrNotFound)
		assert.Equal(t, "Problem not found", err.Error())
	})
}

func TestProblemService_UpdateProblem_KeepsServerFields(t *testing.T) {
	f := newProblemFixture(t)
	created := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)
	f.problems.On("FindByID", mock.Anything, "p1").Return(&model.Problem{
		ID: "p1", ProblemNumber: 4, IsActive: true, CreatedAt: created,
	}, nil)
	f.problems.On("Update", mock.Anything, (*sql.Tx)(nil), mock.MatchedBy(func(p *model.Problem) bool {
		return p.ID == "p1" && p.ProblemNumber == 4 && p.CreatedAt.Equal(created) && p.Title == "Renamed"
	})).Return(nil)

	got, err := f.svc.UpdateProblem(context.Background(), "p1", model.Problem{
		ID: "other", ProblemNumber: 77, Title: "Renamed", Difficulty: model.DifficultyMedium,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, got.ProblemNumber)
	assert.True(t, got.IsActive)
	assert.Equal(t, f.now, got.UpdatedAt)
}

func TestProblemService_UpdateProblem_NotFound(t *testing.T) {
	f := newProblemFixture(t)
	f.problems.On("FindByID", mock.Anything, "ghost").Return(nil, common.ErrNotFound)

	_, err := f.svc.UpdateProblem(context.Background(), "ghost", model.Problem{Title: "T", Difficulty: model.DifficultyEasy})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestProblemService_DeleteProblem(t *testing.T) {
	f := newProblemFixture(t)
	f.problems.On("Delete", mock.Anything, "ghost").Return(common.ErrNotFound)
	f.problems.On("Delete", mock.Anything, "p1").Return(nil)

	err := f.svc.DeleteProblem(context.Background(), "ghost")
	assert.Equal(t, 404, common.HTTPStatusFromError(err))

	assert.NoError(t, f.svc.DeleteProblem(context.Background(), "p1"))
}

func TestProblemService_CreateCategory(t *testing.T) {
	t.Run("derives key from name", func(t *testing.T) {
		f := newProblemFixture(t)
		f.categories.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Category) bool {
			return c.Key == "game-dev" && c.IsActive && c.ID != ""
		})).Return(nil)

		c, err := f.svc.CreateCategory(context.Background(), model.Category{Name: "Game Dev", ProblemCount: 3})
		require.NoError(t, err)
		assert.Equal(t, 3, c.ProblemCount)
		assert.Equal(t, f.now, c.CreatedAt)
	})

	t.Run("keeps supplied key", func(t *testing.T) {
		f := newProblemFixture(t)
		f.categories.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Category) bool {
			return c.Key == "gd"
		})).Return(nil)

		_, err := f.svc.CreateCategory(context.Background(), model.Category{Key: "gd", Name: "Game Dev"})
		require.NoError(t, err)
	})

	t.Run("name required", func(t *testing.T) {
		f := newProblemFixture(t)
		_, err := f.svc.CreateCategory(context.Background(), model.Category{Key: "x"})
		assert.ErrorIs(t, err, common.ErrValidation)
	})
}
