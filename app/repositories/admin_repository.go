package repositories

import (
	"sync"
	"time"

	"griddle/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerAdminRepository implements AdminRepository using BadgerDB
type BadgerAdminRepository struct {
	db    *badger.DB
	mutex sync.RWMutex
}

// NewBadgerAdminRepository creates a new BadgerAdminRepository
func NewBadgerAdminRepository(db *badger.DB) *BadgerAdminRepository {
	return &BadgerAdminRepository{db: db}
}

// Create persists a new admin record. Usernames are unique.
func (r *BadgerAdminRepository) Create(admin *models.Admin) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = time.Now()
	}

	data, err := marshalEntity(admin)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		key := adminKey(admin.Username)
		if _, err := txn.Get(key); err == nil {
			return ErrAlreadyExists
		} else if err != badger.ErrKeyNotFound {
			return err
		}
		return txn.Set(key, data)
	})
}

// GetByUsername retrieves an admin record by username
func (r *BadgerAdminRepository) GetByUsername(username string) (*models.Admin, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var admin models.Admin
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(adminKey(username))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &admin)
		})
	})
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
