package repositories

import (
	"context"

	"siteworks_backend/internal/models"
	"siteworks_backend/pkg/apperrors"
)

// StubProfileRepository backs stub mode: every write fails with the uniform
// not-configured error and every read returns an empty collection, so demo
// runs without a configured provider never crash.
type StubProfileRepository struct{}

func NewStubProfileRepository() ProfileRepository {
	return &StubProfileRepository{}
}

func (r *StubProfileRepository) Create(ctx context.Context, profile *models.UserProfile) error {
	return apperrors.ErrNotConfigured
}

func (r *StubProfileRepository) FindByID(ctx context.Context, id string) (*models.UserProfile, error) {
	return nil, ErrProfileNotFound
}

func (r *StubProfileRepository) ListByStatus(ctx context.Context, status models.VerificationStatus) ([]models.UserProfile, error) {
	return []models.UserProfile{}, nil
}

func (r *StubProfileRepository) UpdateStatus(ctx context.Context, id string, status models.VerificationStatus) error {
	return apperrors.ErrNotConfigured
}

// StubAdminRepository rejects admin logins in stub mode.
type StubAdminRepository struct{}

func NewStubAdminRepository() AdminRepository {
	return &StubAdminRepository{}
}

func (r *StubAdminRepository) Create(ctx context.Context, admin *models.AdminUser) error {
	return apperrors.ErrNotConfigured
}

func (r *StubAdminRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	return nil, ErrAdminNotFound
}
