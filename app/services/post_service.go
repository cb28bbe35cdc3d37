package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidPost marks validation failures so handlers can answer 400
// instead of 500. Check with errors.Is.
var ErrInvalidPost = errors.New("invalid post")

// PostService handles business logic for blog posts
type PostService struct {
	repo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(repo repositories.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// CreatePost validates and persists a new post. Missing author defaults to
// Anonymous and both timestamps are set to the current server time.
func (s *PostService) CreatePost(ctx context.Context, post *models.Post) error {
	// Ids and timestamps are server-assigned; anything client-sent is ignored.
	post.ID = 0
	post.CreatedAt = time.Time{}
	post.UpdatedAt = time.Time{}

	if err := validatePost(post); err != nil {
		return err
	}

	post.BeforeCreate()
	return s.repo.Create(ctx, post)
}

// GetPost retrieves a post by id.
func (s *PostService) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	return s.repo.GetByID(ctx, id)
}

// ListPosts retrieves all posts, most recently created first.
func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		// An empty listing serializes as [] rather than null.
		posts = []*models.Post{}
	}
	return posts, nil
}

// UpdatePost replaces title, content, and author of an existing post and
// bumps the update timestamp. The id and creation time never change.
func (s *PostService) UpdatePost(ctx context.Context, post *models.Post) error {
	post.CreatedAt = time.Time{}
	post.UpdatedAt = time.Time{}

	if err := validatePost(post); err != nil {
		return err
	}

	existing, err := s.repo.GetByID(ctx, post.ID)
	if err != nil {
		return err
	}

	post.CreatedAt = existing.CreatedAt
	post.BeforeUpdate()
	return s.repo.Update(ctx, post)
}

// DeletePost deletes a post by id.
func (s *PostService) DeletePost(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// validatePost runs model validation and translates validator output into
// a client-facing message wrapped in ErrInvalidPost.
func validatePost(post *models.Post) error {
	err := post.Validate()
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		missing := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			missing = append(missing, strings.ToLower(fe.Field()))
		}
		return fmt.Errorf("%w: %s required", ErrInvalidPost, strings.Join(missing, " and "))
	}
	return fmt.Errorf("%w: %v", ErrInvalidPost, err)
}
