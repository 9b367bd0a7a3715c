package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"siteworks_backend/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserProfile{}, &models.AdminUser{}))

	t.Cleanup(func() {
		db.Exec("DELETE FROM user_profiles")
		db.Exec("DELETE FROM admin_users")
	})
	return db
}

func newProfile(email string, role models.Role) *models.UserProfile {
	return &models.UserProfile{
		ID:                 uuid.NewString(),
		Email:              email,
		FirstName:          "Asha",
		LastName:           "Verma",
		Role:               role,
		VerificationStatus: models.StatusPending,
		Documents:          []string{"documents/x/a.pdf"},
	}
}

func TestProfileCreateAndFind(t *testing.T) {
	repo := NewProfileRepository(setupTestDB(t))
	ctx := context.Background()

	p := newProfile("asha@example.com", models.RoleLabour)
	require.NoError(t, repo.Create(ctx, p))

	found, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Email, found.Email)
	assert.Equal(t, models.StatusPending, found.VerificationStatus)
	assert.Equal(t, []string{"documents/x/a.pdf"}, []string(found.Documents))
}

func TestProfileCreateDuplicateEmail(t *testing.T) {
	repo := NewProfileRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newProfile("dup@example.com", models.RoleLabour)))
	err := repo.Create(ctx, newProfile("dup@example.com", models.RoleSupervisor))
	assert.ErrorIs(t, err, ErrProfileAlreadyExists)
}

func TestProfileFindMissing(t *testing.T) {
	repo := NewProfileRepository(setupTestDB(t))

	_, err := repo.FindByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestListByStatusNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	older := newProfile("older@example.com", models.RoleLabour)
	newer := newProfile("newer@example.com", models.RoleSupervisor)
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	// Force distinct timestamps; autoCreateTime can land in the same tick.
	require.NoError(t, db.Model(older).Update("created_at", time.Now().Add(-time.Hour)).Error)

	pending, err := repo.ListByStatus(ctx, models.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, newer.ID, pending[0].ID)
	assert.Equal(t, older.ID, pending[1].ID)

	approved, err := repo.ListByStatus(ctx, models.StatusApproved)
	require.NoError(t, err)
	assert.Empty(t, approved)
}

func TestUpdateStatusDecides(t *testing.T) {
	repo := NewProfileRepository(setupTestDB(t))
	ctx := context.Background()

	p := newProfile("decide@example.com", models.RoleClientContractor)
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.UpdateStatus(ctx, p.ID, models.StatusApproved))

	found, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, found.VerificationStatus)
}

func TestUpdateStatusOnDecidedProfileConflicts(t *testing.T) {
	repo := NewProfileRepository(setupTestDB(t))
	ctx := context.Background()

	p := newProfile("once@example.com", models.RoleSiteManager)
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.UpdateStatus(ctx, p.ID, models.StatusRejected))

	err := repo.UpdateStatus(ctx, p.ID, models.StatusApproved)
	assert.ErrorIs(t, err, ErrAlreadyDecided)

	// The first decision stands.
	found, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, found.VerificationStatus)
}

func TestUpdateStatusMissingProfile(t *testing.T) {
	repo := NewProfileRepository(setupTestDB(t))

	err := repo.UpdateStatus(context.Background(), uuid.NewString(), models.StatusApproved)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
