package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStorage keeps objects on disk for development. "Signed" URLs point at
// the application's own file endpoints; the key itself is the capability.
type LocalStorage struct {
	basePath string
	baseURL  string
}

func NewLocalStorage(cfg Config) (*LocalStorage, error) {
	if err := os.MkdirAll(cfg.BasePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &LocalStorage{
		basePath: cfg.BasePath,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

func (s *LocalStorage) path(key string) (string, error) {
	clean := filepath.Clean(key)
	if strings.Contains(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid storage key: %s", key)
	}
	return filepath.Join(s.basePath, clean), nil
}

func (s *LocalStorage) Save(ctx context.Context, key string, reader io.Reader, contentType string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}

	f, err := os.Create(p)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, reader)
	return err
}

func (s *LocalStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	return os.Open(p)
}

func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	err = os.Remove(p)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *LocalStorage) Exists(ctx context.Context, key string) (bool, error) {
	p, err := s.path(key)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(p)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *LocalStorage) SignedPutURL(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	return s.baseURL + "/" + key, nil
}

func (s *LocalStorage) SignedGetURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return s.baseURL + "/" + key, nil
}
