// Package storage persists uploaded post images as opaque blobs. Callers
// hold only the returned key; the layout under the media root is private to
// this package.
package storage

import (
	"bytes"
	"fmt"
	"image"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"plume/internal/models"

	"github.com/google/uuid"

	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	_ "golang.org/x/image/webp" // register WebP decoder
)

// BlobStore stores and retrieves uploaded image blobs by opaque key.
type BlobStore interface {
	Save(content []byte, originalFilename string) (key string, err error)
	Open(key string) (*os.File, error)
	Delete(key string) error
}

var formatExtensions = map[string]string{
	"jpeg": ".jpg",
	"png":  ".png",
	"gif":  ".gif",
	"webp": ".webp",
}

// DiskStore writes blobs under a media root directory, one subdirectory per
// namespace, uuid filenames.
type DiskStore struct {
	root     string
	maxBytes int64
}

func NewDiskStore(root string, maxUploadSizeMB int) (*DiskStore, error) {
	if err := os.MkdirAll(filepath.Join(root, "posts"), 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	return &DiskStore{
		root:     root,
		maxBytes: int64(maxUploadSizeMB) * 1024 * 1024,
	}, nil
}

// Save validates the blob by content, never by filename or declared content
// type, and writes it under the posts namespace. A blob whose leading bytes
// do not decode as a known image format is rejected with a validation error
// before anything touches disk.
func (s *DiskStore) Save(content []byte, originalFilename string) (string, error) {
	if len(content) == 0 {
		return "", models.NewValidationError("No file uploaded")
	}
	if int64(len(content)) > s.maxBytes {
		return "", models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", s.maxBytes/(1024*1024)))
	}

	detected := http.DetectContentType(content)
	if !strings.HasPrefix(detected, "image/") {
		return "", models.NewValidationError("File is not an image")
	}

	cfgFormat, err := sniffFormat(content)
	if err != nil {
		return "", models.NewValidationError("Invalid or unsupported image file")
	}
	ext, ok := formatExtensions[cfgFormat]
	if !ok {
		return "", models.NewValidationError("Unsupported image format")
	}

	key := filepath.ToSlash(filepath.Join("posts", uuid.NewString()+ext))
	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", models.NewInternalError(err)
	}
	return key, nil
}

// sniffFormat decodes only the image header, enough to identify the format
// from its magic bytes without decoding pixel data.
func sniffFormat(content []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(content))
	if err != nil {
		return "", err
	}
	return format, nil
}

func (s *DiskStore) Open(key string) (*os.File, error) {
	path, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, models.NewNotFoundError("Blob", key)
		}
		return nil, models.NewInternalError(err)
	}
	return f, nil
}

func (s *DiskStore) Delete(key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return models.NewInternalError(err)
	}
	return nil
}

// resolve maps a key back to a path inside the media root, rejecting any
// key that would escape it.
func (s *DiskStore) resolve(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", models.NewNotFoundError("Blob", key)
	}
	return filepath.Join(s.root, clean), nil
}
