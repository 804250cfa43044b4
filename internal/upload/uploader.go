package upload

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "motohub/internal/errors"
)

const (
	// MaxFiles is the maximum number of files accepted per request.
	MaxFiles = 5
	// MaxFileSize is the per-file size limit in bytes.
	MaxFileSize = 5 << 20 // 5 MiB
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// StoredFile describes one file written to the uploads directory.
type StoredFile struct {
	Path         string
	Filename     string
	OriginalName string
	Size         int64
}

// Uploader persists multipart image files to local disk.
type Uploader interface {
	// SaveAll validates every file, then writes them all. Validation failures
	// fail the whole request before any file touches disk; a write failure
	// removes everything written so far. On success the caller owns cleanup
	// via Remove if its own operation fails afterwards.
	SaveAll(files []*multipart.FileHeader) ([]StoredFile, error)
	// Remove deletes stored files best-effort. Failures are logged, not returned.
	Remove(files []StoredFile)
}

type localUploader struct {
	dir string
}

// NewUploader creates an Uploader rooted at dir, creating it if needed.
func NewUploader(dir string) (Uploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &localUploader{dir: dir}, nil
}

// SaveAll validates then writes all files.
func (u *localUploader) SaveAll(files []*multipart.FileHeader) ([]StoredFile, error) {
	if len(files) == 0 {
		return nil, apperrors.ErrNoFilesUploaded
	}
	if len(files) > MaxFiles {
		return nil, fmt.Errorf("%w: got %d, max %d", apperrors.ErrTooManyFiles, len(files), MaxFiles)
	}
	for _, fh := range files {
		if err := validate(fh); err != nil {
			return nil, err
		}
	}

	stored := make([]StoredFile, 0, len(files))
	for _, fh := range files {
		sf, err := u.saveOne(fh)
		if err != nil {
			u.Remove(stored)
			return nil, err
		}
		stored = append(stored, sf)
	}
	return stored, nil
}

// Remove deletes stored files, logging any failure.
func (u *localUploader) Remove(files []StoredFile) {
	for _, f := range files {
		if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
			log.Printf("upload cleanup: remove %s: %v", f.Path, err)
		}
	}
}

func validate(fh *multipart.FileHeader) error {
	if fh.Size > MaxFileSize {
		return fmt.Errorf("%w: %s is %d bytes", apperrors.ErrFileTooLarge, fh.Filename, fh.Size)
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	contentType := strings.ToLower(fh.Header.Get("Content-Type"))
	// Both the extension and the declared content type must match.
	if !allowedExtensions[ext] || !allowedContentTypes[contentType] {
		return fmt.Errorf("%w: %s (%s)", apperrors.ErrUnsupportedFileType, fh.Filename, contentType)
	}
	return nil
}

func (u *localUploader) saveOne(fh *multipart.FileHeader) (StoredFile, error) {
	src, err := fh.Open()
	if err != nil {
		return StoredFile{}, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := generateFilename(fh.Filename)
	path := filepath.Join(u.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return StoredFile{}, fmt.Errorf("create %s: %w", path, err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(path)
		return StoredFile{}, fmt.Errorf("write %s: %w", path, err)
	}

	return StoredFile{
		Path:         path,
		Filename:     name,
		OriginalName: fh.Filename,
		Size:         size,
	}, nil
}

// generateFilename builds a collision-resistant name: timestamp, random
// suffix, original extension.
func generateFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	suffix := strings.Split(uuid.New().String(), "-")[0]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), suffix, ext)
}
