package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"problem_app/internal/common"
	"problem_app/internal/domain/model"
	"problem_app/internal/mocks"
)

func TestCommentService_CreateComment(t *testing.T) {
	repo := &mocks.CommentRepository{}
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	svc := NewCommentService(repo, NewRenderer())

	c, err := svc.CreateComment(context.Background(), Author{UserID: "u1", Username: "alice"}, "  <b>Nice</b> problem & fun  ")
	require.NoError(t, err)
	assert.Equal(t, "Nice problem & fun", c.Content)
	assert.Equal(t, "alice", c.Username)
	assert.Equal(t, "u1", c.UserID)
	assert.True(t, c.IsActive)
	assert.NotEmpty(t, c.ID)
}

func TestCommentService_CreateComment_DecodesEncodedMarkupAway(t *testing.T) {
	repo := &mocks.CommentRepository{}
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	svc := NewCommentService(repo, NewRenderer())

	c, err := svc.CreateComment(context.Background(), Author{UserID: "u1", Username: "alice"}, "&lt;b&gt;x&lt;/b&gt; and &amp;lt;i&amp;gt;y&amp;lt;/i&amp;gt;")
	require.NoError(t, err)
	assert.Equal(t, "x and y", c.Content)
	assert.NotContains(t, c.Content, "<")

	stored := repo.Calls[0].Arguments.Get(1).(*model.Comment)
	assert.Equal(t, "x and y", stored.Content)
}

func TestCommentService_CreateComment_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t"},
		{"markup only", "<p></p>"},
		{"entity-encoded markup only", "&lt;img src=x onerror=alert(1)&gt;"},
		{"too long", strings.Repeat("a", maxCommentLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mocks.CommentRepository{}
			svc := NewCommentService(repo, NewRenderer())

			_, err := svc.CreateComment(context.Background(), Author{UserID: "u1", Username: "alice"}, tt.content)
			assert.ErrorIs(t, err, common.ErrValidation)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCommentService_CreateComment_EmptyMessage(t *testing.T) {
	svc := NewCommentService(&mocks.CommentRepository{}, NewRenderer())

	_, err := svc.CreateComment(context.Background(), Author{}, " ")
	assert.EqualError(t, err, "Comment content is required")
}

func TestCommentService_DeleteComment_NotFound(t *testing.T) {
	repo := &mocks.CommentRepository{}
	repo.On("Delete", mock.Anything, "ghost").Return(common.ErrNotFound)

	err := NewCommentService(repo, NewRenderer()).DeleteComment(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, "Comment not found", err.Error())
}

func TestCommentService_ListComments(t *testing.T) {
	repo := &mocks.CommentRepository{}
	repo.On("ListActive", mock.Anything).Return([]model.Comment{{ID: "c2"}, {ID: "c1"}}, nil)

	comments, err := NewCommentService(repo, NewRenderer()).ListComments(context.Background())
	require.NoError(t, err)
	assert.Len(t, comments, 2)
}
