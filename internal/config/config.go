package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds process-wide settings read once at startup
type Config struct {
	ServerPort string

	Cloudinary CloudinaryConfig

	UploadDir       string
	StaticVideoPath string
	PublicDir       string
	MultipartMemory int64
}

// CloudinaryConfig holds the media provider credentials
type CloudinaryConfig struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadPrefix string
}

// Load reads an optional .env file and then the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Could not load .env file: %v", err)
	}

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "3000"),
		Cloudinary: CloudinaryConfig{
			CloudName:    getEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:       getEnv("CLOUDINARY_API_KEY", ""),
			APISecret:    getEnv("CLOUDINARY_API_SECRET", ""),
			UploadPrefix: getEnv("CLOUDINARY_UPLOAD_PREFIX", ""),
		},
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		StaticVideoPath: getEnv("STATIC_VIDEO_PATH", "input.mp4"),
		PublicDir:       getEnv("PUBLIC_DIR", "public"),
		MultipartMemory: getEnvAsInt64("MULTIPART_MEMORY", 32<<20),
	}

	if cfg.Cloudinary.CloudName == "" {
		return nil, fmt.Errorf("CLOUDINARY_CLOUD_NAME is not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.ParseInt(value, 10, 64); err == nil {
			return v
		}
		log.Printf("Invalid value for %s: %q, using %d", key, value, fallback)
	}
	return fallback
}
