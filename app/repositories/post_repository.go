package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"inkwell/app/models"
)

// All SQL is kept in explicit constants so every statement is reviewable
// in one place.
const (
	sqlInsertPost = `
		INSERT INTO posts (title, content, author, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`

	sqlSelectPost = `
		SELECT id, title, content, author, created_at, updated_at
		FROM posts
		WHERE id = ?`

	sqlListPosts = `
		SELECT id, title, content, author, created_at, updated_at
		FROM posts
		ORDER BY created_at DESC, id DESC`

	sqlUpdatePost = `
		UPDATE posts
		SET title = ?, content = ?, author = ?, updated_at = ?
		WHERE id = ?`

	sqlDeletePost = `DELETE FROM posts WHERE id = ?`
)

// SQLitePostRepository implements PostRepository against the posts table.
type SQLitePostRepository struct {
	db *sql.DB
}

// NewSQLitePostRepository creates a new SQLitePostRepository
func NewSQLitePostRepository(db *sql.DB) *SQLitePostRepository {
	return &SQLitePostRepository{db: db}
}

var _ PostRepository = (*SQLitePostRepository)(nil)

// Create inserts a new post and assigns the database-generated id.
func (r *SQLitePostRepository) Create(ctx context.Context, post *models.Post) error {
	res, err := r.db.ExecContext(ctx, sqlInsertPost,
		post.Title, post.Content, post.Author,
		formatTime(post.CreatedAt), formatTime(post.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read inserted id: %w", err)
	}
	post.ID = id
	return nil
}

// GetByID retrieves a post by id. Returns ErrNotFound when no row matches.
func (r *SQLitePostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	post, err := scanPost(r.db.QueryRowContext(ctx, sqlSelectPost, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// List retrieves all posts, most recently created first. Creation-time ties
// fall back to id order, so insertion order is preserved.
func (r *SQLitePostRepository) List(ctx context.Context) ([]*models.Post, error) {
	rows, err := r.db.QueryContext(ctx, sqlListPosts)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// Update overwrites title, content, author, and updated_at of an existing
// post. Returns ErrNotFound when the id does not exist.
func (r *SQLitePostRepository) Update(ctx context.Context, post *models.Post) error {
	res, err := r.db.ExecContext(ctx, sqlUpdatePost,
		post.Title, post.Content, post.Author,
		formatTime(post.UpdatedAt), post.ID,
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	return checkAffected(res)
}

// Delete removes a post by id. Returns ErrNotFound when the id does not exist.
func (r *SQLitePostRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, sqlDeletePost, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return checkAffected(res)
}

// checkAffected translates a zero-row write into ErrNotFound.
func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanPost maps one posts row to a Post. Timestamps are stored as RFC3339
// text and parsed explicitly here rather than relying on driver conversion,
// so a malformed value surfaces as an error instead of a zero time.
func scanPost(s rowScanner) (*models.Post, error) {
	var (
		post                 models.Post
		createdAt, updatedAt string
	)
	if err := s.Scan(&post.ID, &post.Title, &post.Content, &post.Author, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if post.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if post.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	return &post, nil
}

// timeLayout is RFC3339 with fixed-width nanoseconds. RFC3339Nano trims
// trailing zeros, so values inside the same second would format at different
// lengths and the lexicographic ORDER BY on the TEXT column would disagree
// with chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
