package identity

import (
	"context"

	"siteworks_backend/pkg/apperrors"
)

// StubProvider is the stub-mode identity backend: identity creation always
// fails with the uniform not-configured error.
type StubProvider struct{}

func NewStubProvider() *StubProvider {
	return &StubProvider{}
}

func (p *StubProvider) CreateIdentity(ctx context.Context, email, password string) (string, error) {
	return "", apperrors.ErrNotConfigured
}
