package segment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/bulatminnakhmetov/video-segmenter/internal/client/cloudinary"
	"github.com/bulatminnakhmetov/video-segmenter/internal/storage/upload"
)

var (
	ErrStaticFileNotFound = errors.New("static video not found")
)

// StaticFileNotFoundError names the static video that is missing
type StaticFileNotFoundError struct {
	Path string
}

func (e *StaticFileNotFoundError) Error() string {
	return fmt.Sprintf("%v: %s", ErrStaticFileNotFound, e.Path)
}

func (e *StaticFileNotFoundError) Is(target error) bool {
	return target == ErrStaticFileNotFound
}

// MediaProvider uploads videos and formats transformation URLs
type MediaProvider interface {
	UploadVideo(ctx context.Context, localPath string) (*cloudinary.Asset, error)
	BuildTransformationURL(publicID string, t cloudinary.Transformation) (string, error)
}

// TempFileDiscarder removes temp files once they have been forwarded
type TempFileDiscarder interface {
	Discard(f *upload.TempFile)
}

// Result is the outcome of a processed video
type Result struct {
	PublicID       string
	SecureURL      string
	TransformedURL string
}

// ServiceImpl sequences upload, cleanup and URL building
type ServiceImpl struct {
	provider        MediaProvider
	uploads         TempFileDiscarder
	staticVideoPath string
	clip            cloudinary.Transformation
}

// NewService creates a new ServiceImpl
func NewService(provider MediaProvider, uploads TempFileDiscarder, staticVideoPath string) *ServiceImpl {
	return &ServiceImpl{
		provider:        provider,
		uploads:         uploads,
		staticVideoPath: staticVideoPath,
		clip:            cloudinary.DefaultClip,
	}
}

// ProcessUpload forwards an uploaded temp file to the provider. The temp file
// is discarded as soon as the upload resolves, whatever the outcome.
func (s *ServiceImpl) ProcessUpload(ctx context.Context, f *upload.TempFile) (*Result, error) {
	asset, err := s.provider.UploadVideo(ctx, f.Path)
	s.uploads.Discard(f)
	if err != nil {
		return nil, err
	}

	return s.transform(asset)
}

// ProcessStatic forwards the well-known local video to the provider
func (s *ServiceImpl) ProcessStatic(ctx context.Context) (*Result, error) {
	info, err := os.Stat(s.staticVideoPath)
	if err != nil || info.IsDir() {
		return nil, &StaticFileNotFoundError{Path: s.staticVideoPath}
	}

	asset, err := s.provider.UploadVideo(ctx, s.staticVideoPath)
	if err != nil {
		return nil, err
	}

	return s.transform(asset)
}

func (s *ServiceImpl) transform(asset *cloudinary.Asset) (*Result, error) {
	log.Printf("Video uploaded: %s", asset.SecureURL)
	log.Printf("Public ID: %s", asset.PublicID)

	url, err := s.provider.BuildTransformationURL(asset.PublicID, s.clip)
	if err != nil {
		return nil, fmt.Errorf("failed to build transformation url: %w", err)
	}

	log.Printf("Segmented video URL: %s", url)

	return &Result{
		PublicID:       asset.PublicID,
		SecureURL:      asset.SecureURL,
		TransformedURL: url,
	}, nil
}
