package services

import (
	"griddle/app/models"
	"griddle/app/repositories"
)

// CommentService handles the comment lifecycle inside a post. Comments are
// only reachable through their parent post.
type CommentService struct {
	postRepo repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(postRepo repositories.PostRepository) *CommentService {
	return &CommentService{postRepo: postRepo}
}

// AddComment validates and appends a comment, returning the full sequence.
func (s *CommentService) AddComment(postID, name, email, text string) ([]*models.Comment, error) {
	post, err := s.postRepo.Mutate(postID, func(post *models.Post) error {
		_, err := post.AddComment(name, email, text)
		return err
	})
	if err != nil {
		return nil, err
	}
	return post.Comments, nil
}

// ListComments returns the post's comments in insertion order.
func (s *CommentService) ListComments(postID string) ([]*models.Comment, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	return post.Comments, nil
}

// RemoveComment removes a comment by id and returns the resulting sequence.
// An unknown comment id is a no-op; only a missing post is an error.
func (s *CommentService) RemoveComment(postID, commentID string) ([]*models.Comment, error) {
	post, err := s.postRepo.Mutate(postID, func(post *models.Post) error {
		post.RemoveComment(commentID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return post.Comments, nil
}
