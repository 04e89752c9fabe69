package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisabledUpload(t *testing.T) {
	store := Disabled{}

	att, err := store.Upload(context.Background(), "https://example.com/img.png", "blog/posts")
	assert.Nil(t, att)
	assert.ErrorIs(t, err, ErrUpload)
}

func TestDisabledDelete(t *testing.T) {
	store := Disabled{}

	err := store.Delete(context.Background(), "some-id")
	assert.ErrorIs(t, err, ErrDelete)
}

func TestNewCloudinaryStoreInvalidURL(t *testing.T) {
	store, err := NewCloudinaryStore("not-a-credential-url")
	assert.Nil(t, store)
	assert.Error(t, err)
}
