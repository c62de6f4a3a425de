package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
)

// Storage stores uploaded photos and tells where clients can fetch them.
type Storage interface {
	// Save stores the content of reader under key, replacing what was there.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// GetURL returns the public URL of key.
	GetURL(ctx context.Context, key string) (string, error)
}

// Config holds storage configuration
type Config struct {
	Type      string // local, s3
	BasePath  string // For local storage
	BaseURL   string // Public URL base
	Bucket    string // For S3
	Region    string // For S3
	AccessKey string // For S3
	SecretKey string // For S3
	Endpoint  string // For R2, MinIO or another S3-compatible service
}

// NewStorage creates a storage backend based on configuration.
func NewStorage(ctx context.Context, cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

// CleanKey reduces a client supplied file name to a single safe path
// element. It returns "" when nothing usable is left.
func CleanKey(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(path.Clean("/" + name))
	if name == "/" || name == "." || name == ".." {
		return ""
	}
	return name
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}
