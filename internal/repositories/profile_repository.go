package repositories

import (
	"context"
	"errors"
	"time"

	"siteworks_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
	// ErrAlreadyDecided rejects a status update on a profile whose
	// verification has already reached approved or rejected.
	ErrAlreadyDecided = errors.New("verification already decided")
)

// ProfileRepository is the verification store. UpdateStatus is the only
// writer of verification_status; every other field is immutable after Create.
type ProfileRepository interface {
	Create(ctx context.Context, profile *models.UserProfile) error
	FindByID(ctx context.Context, id string) (*models.UserProfile, error)
	ListByStatus(ctx context.Context, status models.VerificationStatus) ([]models.UserProfile, error)
	UpdateStatus(ctx context.Context, id string, status models.VerificationStatus) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) Create(ctx context.Context, profile *models.UserProfile) error {
	var existing models.UserProfile
	err := r.db.WithContext(ctx).Where("email = ?", profile.Email).First(&existing).Error
	if err == nil {
		return ErrProfileAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindByID(ctx context.Context, id string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// ListByStatus returns profiles newest first, so the admin queue shows the
// most recent applicants on top.
func (r *ProfileRepositoryImpl) ListByStatus(ctx context.Context, status models.VerificationStatus) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	err := r.db.WithContext(ctx).
		Where("verification_status = ?", status).
		Order("created_at DESC").
		Find(&profiles).Error
	return profiles, err
}

// UpdateStatus moves a pending profile to a terminal status. The update is
// conditional on the row still being pending: when two admins race, exactly
// one write wins and the other resolves to ErrAlreadyDecided.
func (r *ProfileRepositoryImpl) UpdateStatus(ctx context.Context, id string, status models.VerificationStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.UserProfile{}).
		Where("id = ? AND verification_status = ?", id, models.StatusPending).
		Updates(map[string]interface{}{
			"verification_status": status,
			"updated_at":          time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Either the profile is gone or its verification is already decided.
		var existing models.UserProfile
		err := r.db.WithContext(ctx).First(&existing, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}
		if err != nil {
			return err
		}
		return ErrAlreadyDecided
	}
	return nil
}
