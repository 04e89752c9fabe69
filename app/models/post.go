package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if p.CreatedAt.IsZero() {
		return fmt.Errorf("%w: created_at cannot be zero", ErrValidation)
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.UpdatedAt = p.CreatedAt
	if p.LikedBy == nil {
		p.LikedBy = NewStringSet()
	}
	if p.DislikedBy == nil {
		p.DislikedBy = NewStringSet()
	}
	if p.Comments == nil {
		p.Comments = []*Comment{}
	}
}

// ApplyEdit overwrites only the fields that were supplied non-empty. An empty
// field means "leave unchanged"; there is no way to blank a field through an
// edit. Image fields are never touched here.
func (p *Post) ApplyEdit(title, content, subtitle string) {
	if title != "" {
		p.Title = title
	}
	if content != "" {
		p.Content = content
	}
	if subtitle != "" {
		p.Subtitle = subtitle
	}
}

// SetCoverImage updates both image fields together. URL and storage id are
// correlated 1:1 and must never diverge.
func (p *Post) SetCoverImage(url, publicID string) {
	p.CoverImage = url
	p.CoverImageID = publicID
}

// ClearCoverImage blanks both image fields together.
func (p *Post) ClearCoverImage() {
	p.CoverImage = ""
	p.CoverImageID = ""
}

// AddComment validates and appends a new comment to the end of the sequence.
func (p *Post) AddComment(name, email, text string) (*Comment, error) {
	comment := &Comment{
		ID:      uuid.NewString(),
		Name:    name,
		Email:   email,
		Comment: text,
	}
	comment.BeforeCreate()

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	p.Comments = append(p.Comments, comment)
	return comment, nil
}

// RemoveComment removes the comment with the given id. Removing an id that is
// not present is a no-op, not an error.
func (p *Post) RemoveComment(commentID string) {
	for i, comment := range p.Comments {
		if comment.ID == commentID {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return
		}
	}
}
