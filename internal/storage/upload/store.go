package upload

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FieldName is the multipart field that carries the video
const FieldName = "video"

var (
	ErrMissingFile = errors.New("no video uploaded")
)

// TempFile is a local copy of an uploaded file
type TempFile struct {
	Path         string
	OriginalName string
	ContentType  string
	Size         int64
}

// Store keeps uploaded files in a local directory until they are discarded
type Store struct {
	dir       string
	maxMemory int64
}

// NewStore creates a Store writing into dir
func NewStore(dir string, maxMemory int64) *Store {
	return &Store{
		dir:       dir,
		maxMemory: maxMemory,
	}
}

// Dir returns the directory temp files are written to
func (s *Store) Dir() string {
	return s.dir
}

// Receive copies the video field of a multipart request to a uniquely named file
func (s *Store) Receive(r *http.Request) (*TempFile, error) {
	if err := r.ParseMultipartForm(s.maxMemory); err != nil {
		// Not multipart, empty or malformed body: nothing usable was uploaded
		return nil, ErrMissingFile
	}

	file, header, err := r.FormFile(FieldName)
	if err != nil {
		return nil, ErrMissingFile
	}
	defer file.Close()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	path := filepath.Join(s.dir, uuid.New().String()+ext)

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	size, err := io.Copy(dst, file)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}

	tf := &TempFile{
		Path:         path,
		OriginalName: header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		Size:         size,
	}
	log.Printf("Received upload %q (%s, %d bytes) as %s", tf.OriginalName, tf.ContentType, tf.Size, tf.Path)

	return tf, nil
}

// Discard removes the temp file. Failures are only logged.
func (s *Store) Discard(f *TempFile) {
	if f == nil {
		return
	}
	if err := os.Remove(f.Path); err != nil {
		log.Printf("failed to delete temp file %s: %v", f.Path, err)
	}
}
