package repositories

import "griddle/app/models"

// PostRepository defines the interface for post data access. The post is the
// persistence boundary: comments and vote state are saved with it.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	List() ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id string) error

	// Mutate loads the post, applies fn and writes the result back as one
	// atomic step. Concurrent mutations of the same post do not interleave.
	Mutate(id string, fn func(*models.Post) error) (*models.Post, error)
}

// AdminRepository defines the interface for admin credential access
type AdminRepository interface {
	Create(admin *models.Admin) error
	GetByUsername(username string) (*models.Admin, error)
}
