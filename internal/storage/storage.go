package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Storage is the blob-store boundary. The application only ever hands out
// capability URLs and records object keys; clients move the bytes.
type Storage interface {
	// Save stores an object. Used by the local backend's upload endpoint;
	// S3 clients upload directly via SignedPutURL.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Get opens an object for reading.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes an object.
	Delete(ctx context.Context, key string) error

	// Exists checks object presence.
	Exists(ctx context.Context, key string) (bool, error)

	// SignedPutURL returns a time-boxed URL a client may upload to.
	SignedPutURL(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)

	// SignedGetURL returns a time-boxed URL a client may download from.
	SignedGetURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// Config holds storage configuration.
type Config struct {
	Type      string // local, s3
	BasePath  string // for local storage
	BaseURL   string // public URL base
	Bucket    string // for S3
	Region    string // for S3
	AccessKey string // for S3
	SecretKey string // for S3
	Endpoint  string // for custom S3 endpoints
}

// NewStorage builds a backend from configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
