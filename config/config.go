package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the blog service.
type Config struct {
	Port          string
	DBPath        string
	JWTSecret     string
	CloudinaryURL string
	UploadFolder  string
	KeepaliveURL  string
}

// Load reads configuration from a .env file (if present) and the
// environment, falling back to defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using environment variables and defaults")
	}

	return &Config{
		Port:          getenv("PORT", "5000"),
		DBPath:        getenv("DB_PATH", "data/badger"),
		JWTSecret:     getenv("JWT_SECRET", "change-me-in-production"),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		UploadFolder:  getenv("UPLOAD_FOLDER", "blog/posts"),
		KeepaliveURL:  os.Getenv("KEEPALIVE_URL"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
