package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bulatminnakhmetov/video-segmenter/internal/client/cloudinary"
	segmentHandler "github.com/bulatminnakhmetov/video-segmenter/internal/handler/segment"
	segmentService "github.com/bulatminnakhmetov/video-segmenter/internal/service/segment"
	"github.com/bulatminnakhmetov/video-segmenter/internal/storage/upload"
)

func setupRouter(t *testing.T) (http.Handler, string) {
	dir := t.TempDir()
	publicDir := filepath.Join(dir, "public")
	require.NoError(t, os.MkdirAll(publicDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(publicDir, "style.css"), []byte("body {}"), 0644))

	provider, err := cloudinary.New(cloudinary.Credentials{CloudName: "demo", APIKey: "key", APISecret: "secret"})
	require.NoError(t, err)

	store := upload.NewStore(filepath.Join(dir, "uploads"), 1<<20)
	service := segmentService.NewService(provider, store, filepath.Join(dir, "input.mp4"))
	handler := segmentHandler.NewSegmentHandler(store, service)

	return newRouter(handler, publicDir), dir
}

func TestRouter(t *testing.T) {
	router, _ := setupRouter(t)

	tests := []struct {
		name         string
		method       string
		path         string
		expectedCode int
		expectedBody string
	}{
		{"Index form", http.MethodGet, "/", http.StatusOK, `name="video"`},
		{"Static asset", http.MethodGet, "/style.css", http.StatusOK, "body {}"},
		{"Missing asset", http.MethodGet, "/missing.js", http.StatusNotFound, ""},
		{"Swagger document", http.MethodGet, "/swagger/doc.json", http.StatusOK, "/upload-and-process"},
		{"Static video absent", http.MethodGet, "/process-static-video", http.StatusNotFound, "input.mp4"},
		{"Upload without file", http.MethodPost, "/upload-and-process", http.StatusBadRequest, "No video uploaded"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.expectedBody)
		})
	}
}
