package repositories

import (
	"sync"
	"testing"
	"time"

	"griddle/app/models"

	"github.com/stretchr/testify/assert"
)

func TestPostRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	t.Run("create and get post", func(t *testing.T) {
		post := &models.Post{
			Title:   "Test Post",
			Content: "This is a test post content",
		}

		err := repo.Create(post)
		assert.NoError(t, err)
		assert.NotEmpty(t, post.ID)
		assert.False(t, post.CreatedAt.IsZero())

		retrieved, err := repo.GetByID(post.ID)
		assert.NoError(t, err)
		assert.Equal(t, post.Title, retrieved.Title)
		assert.Equal(t, post.Content, retrieved.Content)
		assert.NotNil(t, retrieved.LikedBy)
		assert.NotNil(t, retrieved.Comments)
	})

	t.Run("get missing post", func(t *testing.T) {
		_, err := repo.GetByID("nope")
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("update post", func(t *testing.T) {
		post := &models.Post{
			Title:   "Original Title",
			Content: "Original content",
		}
		err := repo.Create(post)
		assert.NoError(t, err)

		post.Title = "Updated Title"
		err = repo.Update(post)
		assert.NoError(t, err)

		updated, err := repo.GetByID(post.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Updated Title", updated.Title)
		assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))
	})

	t.Run("update missing post", func(t *testing.T) {
		post := &models.Post{ID: "ghost", Title: "T", Content: "C"}
		err := repo.Update(post)
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("delete post", func(t *testing.T) {
		post := &models.Post{Title: "Doomed", Content: "Going away"}
		err := repo.Create(post)
		assert.NoError(t, err)

		err = repo.Delete(post.ID)
		assert.NoError(t, err)

		_, err = repo.GetByID(post.ID)
		assert.Equal(t, ErrNotFound, err)

		err = repo.Delete(post.ID)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestPostRepositoryListOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		post := &models.Post{
			Title:     "Post",
			Content:   "Content",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		assert.NoError(t, repo.Create(post))
	}

	posts, err := repo.List()
	assert.NoError(t, err)
	assert.Len(t, posts, 3)
	// Newest first.
	assert.True(t, posts[0].CreatedAt.After(posts[1].CreatedAt))
	assert.True(t, posts[1].CreatedAt.After(posts[2].CreatedAt))
}

func TestPostRepositoryMutate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	post := &models.Post{Title: "Voting", Content: "Content"}
	assert.NoError(t, repo.Create(post))

	t.Run("mutation persists", func(t *testing.T) {
		updated, err := repo.Mutate(post.ID, func(p *models.Post) error {
			p.LikedBy.Add("10.0.0.1")
			p.Likes = p.LikedBy.Len()
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, updated.Likes)

		stored, err := repo.GetByID(post.ID)
		assert.NoError(t, err)
		assert.True(t, stored.LikedBy.Has("10.0.0.1"))
	})

	t.Run("fn error writes nothing", func(t *testing.T) {
		_, err := repo.Mutate(post.ID, func(p *models.Post) error {
			p.Likes = 999
			return assert.AnError
		})
		assert.Equal(t, assert.AnError, err)

		stored, err := repo.GetByID(post.ID)
		assert.NoError(t, err)
		assert.Equal(t, 1, stored.Likes)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := repo.Mutate("ghost", func(p *models.Post) error { return nil })
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("concurrent mutations keep counters consistent", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				voter := string(rune('a' + n))
				_, err := repo.Mutate(post.ID, func(p *models.Post) error {
					p.LikedBy.Add(voter)
					p.Likes = p.LikedBy.Len()
					return nil
				})
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		stored, err := repo.GetByID(post.ID)
		assert.NoError(t, err)
		assert.Equal(t, stored.LikedBy.Len(), stored.Likes)
		assert.Equal(t, 21, stored.Likes) // 20 new voters plus 10.0.0.1
	})
}
