package mock

import (
	"encoding/json"
	"sort"
	"sync"

	"griddle/app/models"
	"griddle/app/repositories"
)

// clonePost detaches a post from the stored object so callers cannot alias
// repository state, mirroring the marshal round trip of the badger store.
func clonePost(post *models.Post) (*models.Post, error) {
	data, err := json.Marshal(post)
	if err != nil {
		return nil, err
	}
	var clone models.Post
	if err := json.Unmarshal(data, &clone); err != nil {
		return nil, err
	}
	return &clone, nil
}

// PostRepository is an in-memory PostRepository for tests.
type PostRepository struct {
	posts map[string]*models.Post
	mutex sync.RWMutex
}

// AdminRepository is an in-memory AdminRepository for tests.
type AdminRepository struct {
	admins map[string]*models.Admin
	mutex  sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts: make(map[string]*models.Post),
	}
}

func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = make(map[string]*models.Post)
}

func NewAdminRepository() *AdminRepository {
	return &AdminRepository{
		admins: make(map[string]*models.Admin),
	}
}

// PostRepository implementation

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.BeforeCreate()
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) GetByID(id string) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return clonePost(post)
}

func (m *PostRepository) List() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.Post
	for _, post := range m.posts {
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *PostRepository) Mutate(id string, fn func(*models.Post) error) (*models.Post, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	stored, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}

	// Apply fn to a detached copy; a failed mutation must leave the stored
	// post untouched, matching the badger transaction semantics.
	post, err := clonePost(stored)
	if err != nil {
		return nil, err
	}
	if err := fn(post); err != nil {
		return nil, err
	}
	m.posts[id] = post
	return post, nil
}

// AdminRepository implementation

func (m *AdminRepository) Create(admin *models.Admin) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.admins[admin.Username]; exists {
		return repositories.ErrAlreadyExists
	}
	m.admins[admin.Username] = admin
	return nil
}

func (m *AdminRepository) GetByUsername(username string) (*models.Admin, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	admin, exists := m.admins[username]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return admin, nil
}
