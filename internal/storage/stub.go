package storage

import (
	"context"
	"io"

	"siteworks_backend/pkg/apperrors"
)

// StubStorage is the stub-mode storage backend: writes fail with the uniform
// not-configured error, lookups report nothing stored.
type StubStorage struct{}

func NewStubStorage() *StubStorage {
	return &StubStorage{}
}

func (s *StubStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	return apperrors.ErrNotConfigured
}

func (s *StubStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	return nil, apperrors.ErrNotConfigured
}

func (s *StubStorage) Delete(ctx context.Context, path string) error {
	return apperrors.ErrNotConfigured
}

func (s *StubStorage) Exists(ctx context.Context, path string) (bool, error) {
	return false, nil
}

func (s *StubStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "", nil
}
