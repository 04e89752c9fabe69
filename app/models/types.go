package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Post represents a blog post. It is the aggregate root: comments and
// engagement state live inside the post document and are persisted with it.
type Post struct {
	ID           string     `json:"id"`
	Title        string     `json:"title" validate:"required"`
	Subtitle     string     `json:"subtitle"`
	Content      string     `json:"content" validate:"required"`
	CoverImage   string     `json:"coverImage"`
	CoverImageID string     `json:"coverImageId"`
	Likes        int        `json:"likes" validate:"gte=0"`
	Dislikes     int        `json:"dislikes" validate:"gte=0"`
	LikedBy      StringSet  `json:"likedBy"`
	DislikedBy   StringSet  `json:"dislikedBy"`
	Comments     []*Comment `json:"comments"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Comment represents a reader comment on a post. Comments are owned by their
// post and have no identity outside it.
type Comment struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"required"`
	Comment   string    `json:"comment" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
}

// Admin is the credential record for a publishing account. Admin records are
// never returned over the API, so the stored hash can live in the document.
type Admin struct {
	Username     string    `json:"username" validate:"required,min=3,max=50"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}
