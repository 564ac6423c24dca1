package segment

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/bulatminnakhmetov/video-segmenter/internal/service/segment"
	"github.com/bulatminnakhmetov/video-segmenter/internal/storage/upload"
)

const (
	msgMissingFile     = "No video uploaded. Please select a file."
	msgStaticNotFound  = "Static video file (%s) not found. Make sure it is in the project directory."
	msgUploadFailed    = "Failed to upload the video to the media provider."
	msgStaticFailed    = "Failed to upload the static video to the media provider."
	msgInternalFailure = "Internal server error"
)

// UploadReceiver stores the uploaded video of a request
type UploadReceiver interface {
	Receive(r *http.Request) (*upload.TempFile, error)
}

// SegmentService processes videos into transformation URLs
type SegmentService interface {
	ProcessUpload(ctx context.Context, f *upload.TempFile) (*segment.Result, error)
	ProcessStatic(ctx context.Context) (*segment.Result, error)
}

// SegmentHandler handles the video segmentation pages
type SegmentHandler struct {
	uploads UploadReceiver
	service SegmentService
}

// NewSegmentHandler creates a new instance of SegmentHandler
func NewSegmentHandler(uploads UploadReceiver, service SegmentService) *SegmentHandler {
	return &SegmentHandler{
		uploads: uploads,
		service: service,
	}
}

// RegisterRoutes registers the segmentation routes
func (h *SegmentHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Index)
	r.Post("/upload-and-process", h.UploadAndProcess)
	r.Get("/process-static-video", h.ProcessStaticVideo)
}

// @Summary      Upload form
// @Description  HTML form for uploading a video
// @Tags         segment
// @Produce      html
// @Success      200  {string}  string  "HTML form"
// @Router       / [get]
func (h *SegmentHandler) Index(w http.ResponseWriter, r *http.Request) {
	render(w, indexTemplate, nil)
}

// @Summary      Upload and segment a video
// @Description  Uploads the video to the media provider and returns a page with the clipped, resized video URL
// @Tags         segment
// @Accept       multipart/form-data
// @Produce      html
// @Param        video  formData  file  true  "Video to segment"
// @Success      200    {string}  string  "HTML page with the transformation URL"
// @Failure      400    {string}  string  "No video uploaded"
// @Failure      500    {string}  string  "Provider upload failed"
// @Router       /upload-and-process [post]
func (h *SegmentHandler) UploadAndProcess(w http.ResponseWriter, r *http.Request) {
	tf, err := h.uploads.Receive(r)
	if err != nil {
		if errors.Is(err, upload.ErrMissingFile) {
			http.Error(w, msgMissingFile, http.StatusBadRequest)
			return
		}
		log.Printf("Failed to store upload: %v", err)
		http.Error(w, msgInternalFailure, http.StatusInternalServerError)
		return
	}

	result, err := h.service.ProcessUpload(r.Context(), tf)
	if err != nil {
		log.Printf("Failed to process uploaded video: %v", err)
		http.Error(w, msgUploadFailed, http.StatusInternalServerError)
		return
	}

	render(w, resultTemplate, resultPage{
		Title: "Video segmented successfully!",
		URL:   result.TransformedURL,
	})
}

// @Summary      Segment the static video
// @Description  Uploads the configured static video (input.mp4 by default) and returns a page with the clipped, resized video URL
// @Tags         segment
// @Produce      html
// @Success      200  {string}  string  "HTML page with the transformation URL"
// @Failure      404  {string}  string  "Static video not found"
// @Failure      500  {string}  string  "Provider upload failed"
// @Router       /process-static-video [get]
func (h *SegmentHandler) ProcessStaticVideo(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ProcessStatic(r.Context())
	if err != nil {
		var notFound *segment.StaticFileNotFoundError
		if errors.As(err, &notFound) {
			http.Error(w, fmt.Sprintf(msgStaticNotFound, filepath.Base(notFound.Path)), http.StatusNotFound)
			return
		}
		log.Printf("Failed to process static video: %v", err)
		http.Error(w, msgStaticFailed, http.StatusInternalServerError)
		return
	}

	render(w, resultTemplate, resultPage{
		Title: "Static video segmented successfully!",
		URL:   result.TransformedURL,
	})
}

// render executes into a buffer first so a template error still yields a single response
func render(w http.ResponseWriter, tmpl *template.Template, data interface{}) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Printf("Failed to render %s: %v", tmpl.Name(), err)
		http.Error(w, msgInternalFailure, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
