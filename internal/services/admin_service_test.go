package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteworks_backend/internal/auth"
	"siteworks_backend/internal/config"
	"siteworks_backend/internal/repositories"
	"siteworks_backend/internal/services/dto"
	"siteworks_backend/internal/validator"
	"siteworks_backend/pkg/apperrors"
)

func newTestAdmin(t *testing.T) (*AdminService, repositories.AdminRepository) {
	t.Helper()
	config.AppConfig = testConfig()
	admins := repositories.NewAdminRepository(testDB(t))
	return NewAdminService(admins, validator.New()), admins
}

func TestSeedAndLogin(t *testing.T) {
	svc, admins := newTestAdmin(t)
	ctx := context.Background()

	require.NoError(t, SeedFirstAdmin(ctx, admins, "root@example.com", "super-secret-1"))

	resp, err := svc.Login(ctx, &dto.AdminLoginRequest{
		Email:    "root@example.com",
		Password: "super-secret-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
}

func TestSeedIsIdempotent(t *testing.T) {
	_, admins := newTestAdmin(t)
	ctx := context.Background()

	require.NoError(t, SeedFirstAdmin(ctx, admins, "root@example.com", "super-secret-1"))
	require.NoError(t, SeedFirstAdmin(ctx, admins, "root@example.com", "different-pass-2"))

	admin, err := admins.FindByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	assert.True(t, auth.CheckPasswordHash("super-secret-1", admin.PasswordHash),
		"reseeding must not overwrite the existing account")
}

func TestSeedSkipsWithoutCredentials(t *testing.T) {
	_, admins := newTestAdmin(t)
	ctx := context.Background()

	require.NoError(t, SeedFirstAdmin(ctx, admins, "", ""))

	_, err := admins.FindByEmail(ctx, "root@example.com")
	assert.ErrorIs(t, err, repositories.ErrAdminNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, admins := newTestAdmin(t)
	ctx := context.Background()

	require.NoError(t, SeedFirstAdmin(ctx, admins, "root@example.com", "super-secret-1"))

	_, err := svc.Login(ctx, &dto.AdminLoginRequest{
		Email:    "root@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeUnauthorized, appErr.Code)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	svc, _ := newTestAdmin(t)

	_, err := svc.Login(context.Background(), &dto.AdminLoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever-pass",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeUnauthorized, appErr.Code)
	assert.Equal(t, "Invalid email or password", appErr.Message)
}
