package models

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.After(p.UpdatedAt) {
		return errors.New("createdAt cannot be after updatedAt")
	}

	return nil
}

// BeforeCreate fills defaults and stamps both timestamps.
// A freshly created post always has createdAt == updatedAt.
func (p *Post) BeforeCreate() {
	if p.Author == "" {
		p.Author = DefaultAuthor
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	p.UpdatedAt = p.CreatedAt
}

// BeforeUpdate fills defaults and bumps the update timestamp.
// The creation timestamp is never touched here.
func (p *Post) BeforeUpdate() {
	if p.Author == "" {
		p.Author = DefaultAuthor
	}
	p.UpdatedAt = time.Now().UTC()
}
