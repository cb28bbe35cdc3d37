package models

import "time"

// DefaultAuthor is assigned when a request omits the author field.
const DefaultAuthor = "Anonymous"

// Post represents a blog post.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
