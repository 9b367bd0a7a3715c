package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"siteworks_backend/internal/auth"
	"siteworks_backend/internal/logger"
	"siteworks_backend/internal/models"
	"siteworks_backend/internal/repositories"
	"siteworks_backend/internal/services/dto"
	"siteworks_backend/internal/validator"
	"siteworks_backend/pkg/apperrors"
)

// AdminService authenticates review-queue administrators. Admin accounts are
// local: they live in the core's own store, never in the identity provider.
type AdminService struct {
	admins   repositories.AdminRepository
	validate *validator.Validator
}

func NewAdminService(admins repositories.AdminRepository, v *validator.Validator) *AdminService {
	return &AdminService{admins: admins, validate: v}
}

// Login verifies admin credentials and issues a bearer token with the admin
// role claim.
func (s *AdminService) Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	if err := s.validate.Validate(req); err != nil {
		var ve *validator.ValidationError
		if errors.As(err, &ve) {
			return nil, apperrors.ValidationError(ve.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	admin, err := s.admins.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return nil, apperrors.NewUnauthorizedError("Invalid email or password")
		}
		return nil, apperrors.PersistenceError(err)
	}

	if !auth.CheckPasswordHash(req.Password, admin.PasswordHash) {
		return nil, apperrors.NewUnauthorizedError("Invalid email or password")
	}

	token, err := auth.GenerateToken(admin.ID, auth.RoleAdmin)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("admin logged in", "admin_id", admin.ID)
	return &dto.AdminLoginResponse{Token: token}, nil
}

// SeedFirstAdmin ensures the bootstrap admin account exists. A no-op when
// the seed credentials are unset or the account is already there.
func SeedFirstAdmin(ctx context.Context, admins repositories.AdminRepository, adminEmail, password string) error {
	if adminEmail == "" || password == "" {
		return nil
	}
	if _, err := admins.FindByEmail(ctx, adminEmail); err == nil {
		return nil
	} else if !errors.Is(err, repositories.ErrAdminNotFound) {
		return err
	}

	if err := auth.ValidatePassword(password); err != nil {
		return err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.AdminUser{ID: uuid.NewString(), Email: adminEmail, PasswordHash: hash}
	if err := admins.Create(ctx, admin); err != nil {
		return err
	}
	logger.Info("seeded first admin", "email", adminEmail)
	return nil
}
