package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/bulatminnakhmetov/video-segmenter/docs"
	"github.com/bulatminnakhmetov/video-segmenter/internal/client/cloudinary"
	"github.com/bulatminnakhmetov/video-segmenter/internal/config"
	segmentHandler "github.com/bulatminnakhmetov/video-segmenter/internal/handler/segment"
	segmentService "github.com/bulatminnakhmetov/video-segmenter/internal/service/segment"
	"github.com/bulatminnakhmetov/video-segmenter/internal/storage/upload"
)

// newRouter wires middleware, API docs, segmentation routes and static files
func newRouter(handler *segmentHandler.SegmentHandler, publicDir string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	handler.RegisterRoutes(r)

	// Everything else comes from the public directory
	r.Handle("/*", http.FileServer(http.Dir(publicDir)))

	return r
}

// @title           Video Segmenter API
// @version         1.0
// @description     Uploads videos to Cloudinary and returns clipped, resized delivery URLs.
// @BasePath        /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	provider, err := cloudinary.New(cloudinary.Credentials{
		CloudName:    cfg.Cloudinary.CloudName,
		APIKey:       cfg.Cloudinary.APIKey,
		APISecret:    cfg.Cloudinary.APISecret,
		UploadPrefix: cfg.Cloudinary.UploadPrefix,
	})
	if err != nil {
		log.Fatalf("Failed to create media provider client: %v", err)
	}

	uploadStore := upload.NewStore(cfg.UploadDir, cfg.MultipartMemory)
	service := segmentService.NewService(provider, uploadStore, cfg.StaticVideoPath)
	handler := segmentHandler.NewSegmentHandler(uploadStore, service)

	r := newRouter(handler, cfg.PublicDir)

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Printf("Video segmenter server is starting on port %s (temp uploads in %s)", cfg.ServerPort, uploadStore.Dir())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on port %s: %v\n", cfg.ServerPort, err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
