package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, "demo", cfg.Cloudinary.CloudName)
	assert.Equal(t, "key", cfg.Cloudinary.APIKey)
	assert.Equal(t, "secret", cfg.Cloudinary.APISecret)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, "input.mp4", cfg.StaticVideoPath)
	assert.Equal(t, "public", cfg.PublicDir)
	assert.Equal(t, int64(32<<20), cfg.MultipartMemory)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("UPLOAD_DIR", "/tmp/segmenter")
	t.Setenv("MULTIPART_MEMORY", "1024")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "/tmp/segmenter", cfg.UploadDir)
	assert.Equal(t, int64(1024), cfg.MultipartMemory)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("MULTIPART_MEMORY", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(32<<20), cfg.MultipartMemory)
}

func TestLoad_MissingCloudName(t *testing.T) {
	t.Setenv("CLOUDINARY_CLOUD_NAME", "")

	_, err := Load()
	assert.Error(t, err)
}
