package repositories

import (
	"testing"

	"griddle/app/models"

	"github.com/stretchr/testify/assert"
)

func TestAdminRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerAdminRepository(db)

	t.Run("create and get admin", func(t *testing.T) {
		admin := &models.Admin{
			Username:     "editor",
			PasswordHash: "$2a$10$fakefakefakefakefakefake",
		}

		err := repo.Create(admin)
		assert.NoError(t, err)
		assert.False(t, admin.CreatedAt.IsZero())

		retrieved, err := repo.GetByUsername("editor")
		assert.NoError(t, err)
		assert.Equal(t, admin.PasswordHash, retrieved.PasswordHash)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		admin := &models.Admin{Username: "editor", PasswordHash: "other"}
		err := repo.Create(admin)
		assert.Equal(t, ErrAlreadyExists, err)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := repo.GetByUsername("ghost")
		assert.Equal(t, ErrNotFound, err)
	})
}
