package repositories

import (
	"sort"
	"sync"
	"time"

	"griddle/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB. Each post is
// stored as a single JSON document under its key, so a save always replaces
// the whole aggregate. The mutex serializes writers; Mutate relies on it to
// make its read-modify-write cycle atomic.
type BadgerPostRepository struct {
	db    *badger.DB
	mutex sync.RWMutex
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create persists a new post
func (r *BadgerPostRepository) Create(post *models.Post) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	post.BeforeCreate()

	data, err := marshalEntity(post)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(postKey(post.ID), data)
	})
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id string) (*models.Post, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var post models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		return getPost(txn, id, &post)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves all posts ordered by creation time, newest first
func (r *BadgerPostRepository) List() ([]*models.Post, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var post models.Post
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

// Update replaces an existing post document
func (r *BadgerPostRepository) Update(post *models.Post) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	post.UpdatedAt = time.Now()

	data, err := marshalEntity(post)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		key := postKey(post.ID)
		if _, err := txn.Get(key); err == badger.ErrKeyNotFound {
			return ErrNotFound
		} else if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Delete deletes a post by ID
func (r *BadgerPostRepository) Delete(id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.db.Update(func(txn *badger.Txn) error {
		key := postKey(id)
		if _, err := txn.Get(key); err == badger.ErrKeyNotFound {
			return ErrNotFound
		} else if err != nil {
			return err
		}
		return txn.Delete(key)
	})
}

// Mutate applies fn to the stored post and writes the result back in one
// locked transaction. If fn returns an error nothing is written and the
// error is returned unchanged.
func (r *BadgerPostRepository) Mutate(id string, fn func(*models.Post) error) (*models.Post, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var post models.Post
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := getPost(txn, id, &post); err != nil {
			return err
		}

		if err := fn(&post); err != nil {
			return err
		}
		post.UpdatedAt = time.Now()

		data, err := marshalEntity(&post)
		if err != nil {
			return err
		}
		return txn.Set(postKey(id), data)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func getPost(txn *badger.Txn, id string, post *models.Post) error {
	item, err := txn.Get(postKey(id))
	if err == badger.ErrKeyNotFound {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return unmarshalEntity(val, post)
	})
}
