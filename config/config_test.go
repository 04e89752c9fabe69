package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "data/badger", cfg.DBPath)
	assert.Equal(t, "blog/posts", cfg.UploadFolder)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("KEEPALIVE_URL", "https://blog.example.com/")

	cfg := Load()

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, "https://blog.example.com/", cfg.KeepaliveURL)
}
