package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"siteworks_backend/internal/models"
	"siteworks_backend/internal/repositories"
	"siteworks_backend/pkg/apperrors"
)

// AccessService is the dashboard gate. A member reaches a dashboard variant
// only with an approved profile whose role maps to exactly that variant.
type AccessService struct {
	profiles repositories.ProfileRepository
	timeout  time.Duration
}

func NewAccessService(profiles repositories.ProfileRepository, timeout time.Duration) *AccessService {
	return &AccessService{profiles: profiles, timeout: timeout}
}

// Authorize checks the member against the requested dashboard path segment
// and returns the resolved variant. There is no fallback variant: a profile
// whose role does not parse is sent back to role selection.
func (s *AccessService) Authorize(ctx context.Context, userID, rawVariant string) (models.DashboardVariant, error) {
	requested, ok := models.ParseDashboardVariant(rawVariant)
	if !ok {
		return "", apperrors.New(apperrors.CodeRoleSelectionRequired, "access",
			"Unknown dashboard, select a role", http.StatusForbidden)
	}

	findCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	profile, err := s.profiles.FindByID(findCtx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return "", apperrors.ErrNotFound(err)
		}
		return "", collaboratorError(err, "access", apperrors.PersistenceError)
	}

	variant, ok := profile.Role.Dashboard()
	if !ok {
		return "", apperrors.New(apperrors.CodeRoleSelectionRequired, "access",
			"No dashboard for this account, select a role", http.StatusForbidden)
	}

	if profile.VerificationStatus != models.StatusApproved {
		return "", apperrors.New(apperrors.CodeVerificationRequired, "access",
			"Account is awaiting verification", http.StatusForbidden)
	}

	if variant != requested {
		return "", apperrors.ErrInsufficientPermissions
	}
	return variant, nil
}
