package mock

import (
	"context"
	"sort"
	"sync"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// PostRepository is an in-memory implementation for tests. It mirrors the
// SQLite repository's behavior: monotonically increasing ids that are never
// reused, and listing ordered by creation time descending with id ties
// broken descending.
type PostRepository struct {
	posts  map[int64]models.Post
	nextID int64
	mutex  sync.RWMutex
}

// NewPostRepository creates an empty in-memory repository.
func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:  make(map[int64]models.Post),
		nextID: 1,
	}
}

var _ repositories.PostRepository = (*PostRepository)(nil)

// Clear removes all posts but keeps the id sequence, like SQLite AUTOINCREMENT.
func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = make(map[int64]models.Post)
}

func (m *PostRepository) Create(_ context.Context, post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = m.nextID
	m.nextID++
	m.posts[post.ID] = *post
	return nil
}

func (m *PostRepository) GetByID(_ context.Context, id int64) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return &post, nil
}

func (m *PostRepository) List(_ context.Context) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := make([]*models.Post, 0, len(m.posts))
	for id := range m.posts {
		post := m.posts[id]
		posts = append(posts, &post)
	}
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID > posts[j].ID
	})
	return posts, nil
}

func (m *PostRepository) Update(_ context.Context, post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.posts[post.ID] = *post
	return nil
}

func (m *PostRepository) Delete(_ context.Context, id int64) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}
