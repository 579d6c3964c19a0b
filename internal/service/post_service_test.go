package service

import (
	"context"
	"strings"
	"testing"

	"plume/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_CreatePost_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewPostService(noopPostRepo(), noopGroupRepo())

	t.Run("empty text", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreatePost(ctx, CreatePostInput{AuthorID: 1})
		assertFieldError(t, err, "text")
	})

	t.Run("whitespace only text", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreatePost(ctx, CreatePostInput{AuthorID: 1, Text: "   \n\t "})
		assertFieldError(t, err, "text")
	})

	t.Run("text too long", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreatePost(ctx, CreatePostInput{AuthorID: 1, Text: strings.Repeat("x", 10001)})
		assertFieldError(t, err, "text")
	})

	t.Run("unknown group", func(t *testing.T) {
		t.Parallel()
		groups := noopGroupRepo()
		groups.getByIDFn = func(_ context.Context, id uint) (*models.Group, error) {
			return nil, models.NewNotFoundError("Group", id)
		}
		svc2 := NewPostService(noopPostRepo(), groups)
		gid := uint(99)
		_, err := svc2.CreatePost(ctx, CreatePostInput{AuthorID: 1, Text: "hello", GroupID: &gid})
		assertFieldError(t, err, "group_id")
	})
}

func TestPostService_CreatePost_SetsAuthorFromSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var created *models.Post
	posts := noopPostRepo()
	posts.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = 42
		created = p
		return nil
	}

	svc := NewPostService(posts, noopGroupRepo())
	got, err := svc.CreatePost(ctx, CreatePostInput{AuthorID: 7, Text: "hello"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, uint(7), created.AuthorID)
	assert.Equal(t, uint(42), got.ID)
}

func TestPostService_UpdatePost_OwnerOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, AuthorID: 1, Text: "original"}, nil
	}

	svc := NewPostService(posts, noopGroupRepo())

	t.Run("non-owner rejected", func(t *testing.T) {
		t.Parallel()
		_, err := svc.UpdatePost(ctx, UpdatePostInput{UserID: 2, PostID: 5, Text: "hijack"})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "UNAUTHORIZED", appErr.Code)
	})

	t.Run("owner edits", func(t *testing.T) {
		t.Parallel()
		var updated *models.Post
		posts2 := noopPostRepo()
		posts2.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, AuthorID: 1, Text: "original"}, nil
		}
		posts2.updateFn = func(_ context.Context, p *models.Post) error {
			updated = p
			return nil
		}
		svc2 := NewPostService(posts2, noopGroupRepo())
		_, err := svc2.UpdatePost(ctx, UpdatePostInput{UserID: 1, PostID: 5, Text: "edited"})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "edited", updated.Text)
	})

	t.Run("invalid edit never silently drops", func(t *testing.T) {
		t.Parallel()
		_, err := svc.UpdatePost(ctx, UpdatePostInput{UserID: 1, PostID: 5, Text: ""})
		assertFieldError(t, err, "text")
	})
}

func TestPostService_GetAuthorPost(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, AuthorID: 3}, nil
	}
	svc := NewPostService(posts, noopGroupRepo())

	t.Run("wrong author is not found", func(t *testing.T) {
		t.Parallel()
		_, err := svc.GetAuthorPost(ctx, 8, 5)
		assert.True(t, models.IsNotFound(err))
	})

	t.Run("matching author", func(t *testing.T) {
		t.Parallel()
		post, err := svc.GetAuthorPost(ctx, 3, 5)
		require.NoError(t, err)
		assert.Equal(t, uint(5), post.ID)
	})
}
