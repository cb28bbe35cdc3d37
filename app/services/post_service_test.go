package services

import (
	"context"
	"testing"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestPostService() (*PostService, *mock.PostRepository) {
	repo := mock.NewPostRepository()
	return NewPostService(repo), repo
}

func TestCreatePost(t *testing.T) {
	service, _ := setupTestPostService()
	ctx := context.Background()

	t.Run("assigns id, default author, and equal timestamps", func(t *testing.T) {
		post := &models.Post{Title: "Hello", Content: "World content here"}
		require.NoError(t, service.CreatePost(ctx, post))

		assert.NotZero(t, post.ID)
		assert.Equal(t, models.DefaultAuthor, post.Author)
		assert.True(t, post.CreatedAt.Equal(post.UpdatedAt))
	})

	t.Run("keeps provided author", func(t *testing.T) {
		post := &models.Post{Title: "Hello", Content: "Content", Author: "Jane"}
		require.NoError(t, service.CreatePost(ctx, post))
		assert.Equal(t, "Jane", post.Author)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		post := &models.Post{Content: "Content"}
		err := service.CreatePost(ctx, post)
		assert.ErrorIs(t, err, ErrInvalidPost)
		assert.Contains(t, err.Error(), "title")
	})

	t.Run("rejects missing title and content", func(t *testing.T) {
		err := service.CreatePost(ctx, &models.Post{})
		assert.ErrorIs(t, err, ErrInvalidPost)
		assert.Contains(t, err.Error(), "title and content")
	})

	t.Run("validation failure inserts nothing", func(t *testing.T) {
		before, err := service.ListPosts(ctx)
		require.NoError(t, err)

		_ = service.CreatePost(ctx, &models.Post{Title: ""})

		after, err := service.ListPosts(ctx)
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})
}

func TestGetPost(t *testing.T) {
	service, _ := setupTestPostService()
	ctx := context.Background()

	post := &models.Post{Title: "Find me", Content: "Content"}
	require.NoError(t, service.CreatePost(ctx, post))

	got, err := service.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.Title, got.Title)

	_, err = service.GetPost(ctx, 9999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestListPosts(t *testing.T) {
	service, _ := setupTestPostService()
	ctx := context.Background()

	t.Run("empty repository yields empty slice", func(t *testing.T) {
		posts, err := service.ListPosts(ctx)
		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Len(t, posts, 0)
	})

	t.Run("most recent first", func(t *testing.T) {
		for _, title := range []string{"first", "second", "third"} {
			require.NoError(t, service.CreatePost(ctx, &models.Post{Title: title, Content: "c"}))
			time.Sleep(2 * time.Millisecond)
		}

		posts, err := service.ListPosts(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, "third", posts[0].Title)
		assert.Equal(t, "second", posts[1].Title)
		assert.Equal(t, "first", posts[2].Title)
	})
}

func TestUpdatePost(t *testing.T) {
	service, _ := setupTestPostService()
	ctx := context.Background()

	t.Run("preserves id and createdAt, bumps updatedAt", func(t *testing.T) {
		post := &models.Post{Title: "Original", Content: "Content", Author: "Jane"}
		require.NoError(t, service.CreatePost(ctx, post))
		created := post.CreatedAt

		time.Sleep(2 * time.Millisecond)

		update := &models.Post{ID: post.ID, Title: "Changed", Content: "New content"}
		require.NoError(t, service.UpdatePost(ctx, update))

		got, err := service.GetPost(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, post.ID, got.ID)
		assert.Equal(t, "Changed", got.Title)
		assert.Equal(t, "New content", got.Content)
		assert.Equal(t, models.DefaultAuthor, got.Author, "missing author defaults on update too")
		assert.True(t, got.CreatedAt.Equal(created))
		assert.True(t, got.UpdatedAt.After(got.CreatedAt))
	})

	t.Run("missing id", func(t *testing.T) {
		update := &models.Post{ID: 9999, Title: "Ghost", Content: "Content"}
		assert.ErrorIs(t, service.UpdatePost(ctx, update), repositories.ErrNotFound)
	})

	t.Run("rejects invalid body before touching storage", func(t *testing.T) {
		post := &models.Post{Title: "Keep", Content: "Keep content"}
		require.NoError(t, service.CreatePost(ctx, post))

		err := service.UpdatePost(ctx, &models.Post{ID: post.ID, Title: "No content"})
		assert.ErrorIs(t, err, ErrInvalidPost)

		got, err := service.GetPost(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, "Keep", got.Title)
	})
}

func TestDeletePost(t *testing.T) {
	service, _ := setupTestPostService()
	ctx := context.Background()

	post := &models.Post{Title: "Doomed", Content: "Content"}
	require.NoError(t, service.CreatePost(ctx, post))

	require.NoError(t, service.DeletePost(ctx, post.ID))
	assert.ErrorIs(t, service.DeletePost(ctx, post.ID), repositories.ErrNotFound)
}
