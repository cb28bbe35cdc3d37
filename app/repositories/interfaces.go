package repositories

import (
	"context"
	"errors"

	"inkwell/app/models"
)

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("record not found")

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id int64) error
}
