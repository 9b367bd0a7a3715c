package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"siteworks_backend/internal/config"
	"siteworks_backend/internal/identity"
	"siteworks_backend/internal/models"
	"siteworks_backend/internal/repositories"
	"siteworks_backend/internal/services/dto"
	"siteworks_backend/internal/validator"
	"siteworks_backend/pkg/apperrors"
)

type fakeIdentity struct {
	calls int
	err   error
	id    string
}

func (f *fakeIdentity) CreateIdentity(_ context.Context, _, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if f.id == "" {
		f.id = uuid.NewString()
	}
	return f.id, nil
}

type fakeStorage struct {
	saved   []string
	deleted []string
	failOn  string // substring of the path that makes Save fail
}

func (f *fakeStorage) Save(_ context.Context, path string, reader io.Reader, _ string) error {
	if f.failOn != "" && strings.Contains(path, f.failOn) {
		return errors.New("storage unavailable")
	}
	_, _ = io.Copy(io.Discard, reader)
	f.saved = append(f.saved, path)
	return nil
}

func (f *fakeStorage) Get(_ context.Context, _ string) (io.ReadCloser, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStorage) Delete(_ context.Context, path string) error {
	f.deleted = append(f.deleted, path)
	return nil
}

func (f *fakeStorage) Exists(_ context.Context, _ string) (bool, error) { return false, nil }

func (f *fakeStorage) GetURL(_ context.Context, path string) (string, error) {
	return "https://files.example/" + path, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Provider.TimeoutSeconds = 5
	cfg.Uploads.Policy = config.UploadPolicyBestEffort
	cfg.Uploads.MaxSize = 1 << 20
	cfg.Uploads.AllowedTypes = []string{"application/pdf", "image/png"}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	return cfg
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserProfile{}, &models.AdminUser{}))
	t.Cleanup(func() {
		db.Exec("DELETE FROM user_profiles")
		db.Exec("DELETE FROM admin_users")
	})
	return db
}

func validSignup(email string) *dto.SignupRequest {
	return &dto.SignupRequest{
		Email:           email,
		Password:        "secret-pass-1",
		ConfirmPassword: "secret-pass-1",
		FirstName:       "Asha",
		LastName:        "Verma",
		Role:            "labour",
	}
}

func pdfDoc(name string) dto.DocumentInput {
	return dto.DocumentInput{
		Filename:    name,
		ContentType: "application/pdf",
		Size:        128,
		Reader:      strings.NewReader("%PDF-1.4 test"),
	}
}

func newTestRegistration(t *testing.T, ip identity.Provider, store *fakeStorage, cfg *config.Config) (*RegistrationService, repositories.ProfileRepository) {
	t.Helper()
	profiles := repositories.NewProfileRepository(testDB(t))
	svc := NewRegistrationService(ip, store, profiles, validator.New(), cfg)
	return svc, profiles
}

func TestRegisterHappyPath(t *testing.T) {
	ip := &fakeIdentity{}
	store := &fakeStorage{}
	svc, profiles := newTestRegistration(t, ip, store, testConfig())

	resp, err := svc.Register(context.Background(), validSignup("asha@example.com"),
		[]dto.DocumentInput{pdfDoc("id.pdf"), pdfDoc("address.pdf")})
	require.NoError(t, err)

	assert.Equal(t, 1, ip.calls)
	assert.Equal(t, string(models.StatusPending), resp.VerificationStatus)
	assert.Len(t, resp.Documents, 2)
	assert.Empty(t, resp.Skipped)
	for _, key := range resp.Documents {
		assert.True(t, strings.HasPrefix(key, "documents/"+resp.UserID+"/"), key)
		assert.True(t, strings.HasSuffix(key, ".pdf"), key)
	}

	profile, err := profiles.FindByID(context.Background(), resp.UserID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleLabour, profile.Role)
	assert.Equal(t, models.StatusPending, profile.VerificationStatus)
	assert.Len(t, []string(profile.Documents), 2)
}

func TestRegisterValidationRunsBeforeIdentityCall(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(*dto.SignupRequest)
		field string
	}{
		{"bad email", func(r *dto.SignupRequest) { r.Email = "not-an-email" }, "email"},
		{"short password", func(r *dto.SignupRequest) { r.Password, r.ConfirmPassword = "short", "short" }, "password"},
		{"password mismatch", func(r *dto.SignupRequest) { r.ConfirmPassword = "different-pass" }, "confirmPassword"},
		{"unknown role", func(r *dto.SignupRequest) { r.Role = "intern" }, "role"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ip := &fakeIdentity{}
			svc, _ := newTestRegistration(t, ip, &fakeStorage{}, testConfig())

			req := validSignup("v@example.com")
			tc.edit(req)

			_, err := svc.Register(context.Background(), req, []dto.DocumentInput{pdfDoc("id.pdf")})
			require.Error(t, err)

			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
			details, ok := appErr.Details.(map[string]string)
			require.True(t, ok)
			assert.Contains(t, details, tc.field)

			assert.Zero(t, ip.calls, "identity must not be called on invalid input")
		})
	}
}

func TestRegisterRequiresDocuments(t *testing.T) {
	ip := &fakeIdentity{}
	svc, _ := newTestRegistration(t, ip, &fakeStorage{}, testConfig())

	_, err := svc.Register(context.Background(), validSignup("nodocs@example.com"), nil)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	assert.Zero(t, ip.calls)
}

func TestRegisterRejectsOversizeAndWrongType(t *testing.T) {
	ip := &fakeIdentity{}
	svc, _ := newTestRegistration(t, ip, &fakeStorage{}, testConfig())

	big := pdfDoc("big.pdf")
	big.Size = 10 << 20
	exe := dto.DocumentInput{Filename: "run.exe", ContentType: "application/octet-stream", Size: 10, Reader: strings.NewReader("x")}

	_, err := svc.Register(context.Background(), validSignup("files@example.com"),
		[]dto.DocumentInput{big, exe})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	details := appErr.Details.(map[string]string)
	assert.Contains(t, details, "documents[0]")
	assert.Contains(t, details, "documents[1]")
	assert.Zero(t, ip.calls)
}

func TestRegisterEmailTaken(t *testing.T) {
	ip := &fakeIdentity{err: identity.ErrEmailTaken}
	svc, _ := newTestRegistration(t, ip, &fakeStorage{}, testConfig())

	_, err := svc.Register(context.Background(), validSignup("taken@example.com"),
		[]dto.DocumentInput{pdfDoc("id.pdf")})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestRegisterBestEffortSkipsFailedUpload(t *testing.T) {
	ip := &fakeIdentity{}
	store := &fakeStorage{failOn: ".png"}
	svc, profiles := newTestRegistration(t, ip, store, testConfig())

	photo := dto.DocumentInput{Filename: "photo.png", ContentType: "image/png", Size: 64, Reader: strings.NewReader("png")}
	resp, err := svc.Register(context.Background(), validSignup("skip@example.com"),
		[]dto.DocumentInput{pdfDoc("id.pdf"), photo})
	require.NoError(t, err)

	assert.Len(t, resp.Documents, 1)
	assert.Equal(t, []string{"photo.png"}, resp.Skipped)

	profile, err := profiles.FindByID(context.Background(), resp.UserID)
	require.NoError(t, err)
	assert.Len(t, []string(profile.Documents), 1)
}

func TestRegisterBestEffortAllUploadsFailedStillPends(t *testing.T) {
	ip := &fakeIdentity{}
	store := &fakeStorage{failOn: "documents/"}
	svc, profiles := newTestRegistration(t, ip, store, testConfig())

	resp, err := svc.Register(context.Background(), validSignup("allfail@example.com"),
		[]dto.DocumentInput{pdfDoc("id.pdf")})
	require.NoError(t, err)

	assert.Empty(t, resp.Documents)
	assert.Len(t, resp.Skipped, 1)

	profile, err := profiles.FindByID(context.Background(), resp.UserID)
	require.NoError(t, err)
	assert.Empty(t, []string(profile.Documents))
	assert.Equal(t, models.StatusPending, profile.VerificationStatus)
}

func TestRegisterAtomicRollsBackOnFailure(t *testing.T) {
	cfg := testConfig()
	cfg.Uploads.Policy = config.UploadPolicyAtomic

	ip := &fakeIdentity{}
	store := &fakeStorage{failOn: ".png"}
	svc, _ := newTestRegistration(t, ip, store, cfg)

	photo := dto.DocumentInput{Filename: "photo.png", ContentType: "image/png", Size: 64, Reader: strings.NewReader("png")}
	_, err := svc.Register(context.Background(), validSignup("atomic@example.com"),
		[]dto.DocumentInput{pdfDoc("id.pdf"), photo})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeStorageError, appErr.Code)
	assert.Len(t, store.deleted, 2, "rollback deletes every planned key")
}

func TestRegisterStubModeNotConfigured(t *testing.T) {
	svc := NewRegistrationService(
		identity.NewStubProvider(), &fakeStorage{},
		repositories.NewStubProfileRepository(), validator.New(), testConfig())

	_, err := svc.Register(context.Background(), validSignup("stub@example.com"),
		[]dto.DocumentInput{pdfDoc("id.pdf")})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotConfigured, appErr.Code)
}

// blockingIdentity parks until its call context expires, the way a hung
// provider would.
type blockingIdentity struct{}

func (blockingIdentity) CreateIdentity(ctx context.Context, _, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

type failingProfileRepo struct {
	err error
}

func (f *failingProfileRepo) Create(context.Context, *models.UserProfile) error { return f.err }
func (f *failingProfileRepo) FindByID(context.Context, string) (*models.UserProfile, error) {
	return nil, repositories.ErrProfileNotFound
}
func (f *failingProfileRepo) ListByStatus(context.Context, models.VerificationStatus) ([]models.UserProfile, error) {
	return nil, f.err
}
func (f *failingProfileRepo) UpdateStatus(context.Context, string, models.VerificationStatus) error {
	return f.err
}

func TestRegisterHungProviderTimesOutDistinctly(t *testing.T) {
	cfg := testConfig()
	cfg.Provider.TimeoutSeconds = 1

	svc, _ := newTestRegistration(t, blockingIdentity{}, &fakeStorage{}, cfg)

	_, err := svc.Register(context.Background(), validSignup("hung@example.com"),
		[]dto.DocumentInput{pdfDoc("id.pdf")})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeOperationTimeout, appErr.Code)
}

func TestRegisterCanceledCallerDistinctDuringIdentity(t *testing.T) {
	svc, _ := newTestRegistration(t, blockingIdentity{}, &fakeStorage{}, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Register(ctx, validSignup("gone@example.com"),
		[]dto.DocumentInput{pdfDoc("id.pdf")})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeOperationCanceled, appErr.Code)
}

func TestRegisterCanceledCallerAbortsUploads(t *testing.T) {
	ip := &fakeIdentity{} // ignores its context; cancellation lands on the upload path
	store := &fakeStorage{}
	svc, _ := newTestRegistration(t, ip, store, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Register(ctx, validSignup("midflight@example.com"),
		[]dto.DocumentInput{pdfDoc("id.pdf")})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeOperationCanceled, appErr.Code)
	assert.Empty(t, store.saved)
}

func TestRegisterStoreDeadlineDistinct(t *testing.T) {
	ip := &fakeIdentity{}
	profiles := &failingProfileRepo{err: fmt.Errorf("exec: %w", context.DeadlineExceeded)}
	svc := NewRegistrationService(ip, &fakeStorage{}, profiles, validator.New(), testConfig())

	_, err := svc.Register(context.Background(), validSignup("slowstore@example.com"),
		[]dto.DocumentInput{pdfDoc("id.pdf")})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeOperationTimeout, appErr.Code)
}
