// Package services holds the application logic between the HTTP handlers and
// the identity, storage, and persistence collaborators.
package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"siteworks_backend/internal/config"
	"siteworks_backend/internal/identity"
	"siteworks_backend/internal/logger"
	"siteworks_backend/internal/models"
	"siteworks_backend/internal/repositories"
	"siteworks_backend/internal/services/dto"
	"siteworks_backend/internal/storage"
	"siteworks_backend/internal/validator"
	"siteworks_backend/pkg/apperrors"
)

// RegistrationService runs the applicant onboarding pipeline: validate,
// create the identity, upload documents, persist the pending profile.
type RegistrationService struct {
	identity identity.Provider
	storage  storage.Storage
	profiles repositories.ProfileRepository
	validate *validator.Validator
	cfg      *config.Config
}

func NewRegistrationService(
	ip identity.Provider,
	store storage.Storage,
	profiles repositories.ProfileRepository,
	v *validator.Validator,
	cfg *config.Config,
) *RegistrationService {
	return &RegistrationService{
		identity: ip,
		storage:  store,
		profiles: profiles,
		validate: v,
		cfg:      cfg,
	}
}

// Register onboards one applicant. All local validation runs before any
// network call; the identity is created exactly once per attempt.
func (s *RegistrationService) Register(ctx context.Context, req *dto.SignupRequest, docs []dto.DocumentInput) (*dto.SignupResponse, error) {
	if err := s.validate.Validate(req); err != nil {
		var ve *validator.ValidationError
		if errors.As(err, &ve) {
			return nil, apperrors.ValidationError(ve.Errors)
		}
		return nil, apperrors.InternalError(err)
	}
	if len(docs) == 0 {
		return nil, apperrors.ValidationError(map[string]string{
			"documents": "At least one verification document is required",
		})
	}
	if err := s.checkDocuments(docs); err != nil {
		return nil, err
	}
	role, _ := models.ParseRole(req.Role)

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.ProviderTimeout())
	defer cancel()

	userID, err := s.identity.CreateIdentity(callCtx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrEmailTaken):
			return nil, apperrors.ErrAlreadyExists(err)
		case apperrors.Is(err, apperrors.ErrNotConfigured):
			return nil, apperrors.ErrNotConfigured
		default:
			// The per-call deadline or a caller cancellation comes back on
			// the returned error, not on the parent context.
			return nil, collaboratorError(err, "registration", apperrors.AuthError)
		}
	}

	var keys, skipped []string
	if s.cfg.Uploads.Policy == config.UploadPolicyAtomic {
		keys, err = s.uploadAtomic(ctx, userID, docs)
	} else {
		keys, skipped, err = s.uploadBestEffort(ctx, userID, docs)
	}
	if err != nil {
		return nil, err
	}

	profile := &models.UserProfile{
		ID:                 userID,
		Email:              req.Email,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Role:               role,
		VerificationStatus: models.StatusPending,
		Documents:          keys,
	}
	storeCtx, cancelStore := context.WithTimeout(ctx, s.cfg.ProviderTimeout())
	defer cancelStore()
	if err := s.profiles.Create(storeCtx, profile); err != nil {
		// The identity and any uploaded documents exist without a profile
		// now. Log the orphan for manual cleanup.
		logger.Error("profile create failed after identity creation",
			"user_id", userID, "documents", len(keys), "error", err)
		if errors.Is(err, repositories.ErrProfileAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		if apperrors.Is(err, apperrors.ErrNotConfigured) {
			return nil, apperrors.ErrNotConfigured
		}
		return nil, collaboratorError(err, "registration", apperrors.PersistenceError)
	}

	logger.Info("applicant registered",
		"user_id", userID, "role", role, "documents", len(keys), "skipped", len(skipped))

	return &dto.SignupResponse{
		UserID:             userID,
		Email:              req.Email,
		VerificationStatus: string(models.StatusPending),
		Documents:          keys,
		Skipped:            skipped,
	}, nil
}

func (s *RegistrationService) checkDocuments(docs []dto.DocumentInput) error {
	details := map[string]string{}
	for i, doc := range docs {
		field := fmt.Sprintf("documents[%d]", i)
		if doc.Size > s.cfg.Uploads.MaxSize {
			details[field] = fmt.Sprintf("File exceeds the %d byte limit", s.cfg.Uploads.MaxSize)
			continue
		}
		if !s.typeAllowed(doc.ContentType) {
			details[field] = fmt.Sprintf("File type %s is not allowed", doc.ContentType)
		}
	}
	if len(details) > 0 {
		return apperrors.ValidationError(details)
	}
	return nil
}

func (s *RegistrationService) typeAllowed(contentType string) bool {
	for _, t := range s.cfg.Uploads.AllowedTypes {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}

// documentKey builds the storage reference for one uploaded document,
// namespaced by the owner's id.
func documentKey(userID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("documents/%s/%s%s", userID, uuid.New().String(), ext)
}

// uploadBestEffort stores documents one by one under per-call deadlines; a
// failed upload is skipped and reported, never fatal. A caller cancellation
// aborts the rest of the batch.
func (s *RegistrationService) uploadBestEffort(ctx context.Context, userID string, docs []dto.DocumentInput) (keys, skipped []string, _ error) {
	for _, doc := range docs {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, apperrors.FromContextError(ctxErr, "registration")
		}

		key := documentKey(userID, doc.Filename)
		saveCtx, cancel := context.WithTimeout(ctx, s.cfg.ProviderTimeout())
		err := s.storage.Save(saveCtx, key, doc.Reader, doc.ContentType)
		cancel()
		if err != nil {
			logger.Warn("document upload failed, skipping",
				"user_id", userID, "filename", doc.Filename, "error", err)
			skipped = append(skipped, doc.Filename)
			continue
		}
		keys = append(keys, key)
	}
	return keys, skipped, nil
}

// uploadAtomic stores documents concurrently under per-call deadlines and
// deletes everything already stored if any upload fails.
func (s *RegistrationService) uploadAtomic(ctx context.Context, userID string, docs []dto.DocumentInput) ([]string, error) {
	keys := make([]string, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	for i, doc := range docs {
		i, doc := i, doc
		keys[i] = documentKey(userID, doc.Filename)
		g.Go(func() error {
			saveCtx, cancel := context.WithTimeout(gctx, s.cfg.ProviderTimeout())
			defer cancel()
			return s.storage.Save(saveCtx, keys[i], doc.Reader, doc.ContentType)
		})
	}
	if err := g.Wait(); err != nil {
		for _, key := range keys {
			if delErr := s.storage.Delete(context.WithoutCancel(ctx), key); delErr != nil {
				logger.Warn("rollback delete failed", "key", key, "error", delErr)
			}
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			// The caller went away; that beats any individual upload error.
			return nil, apperrors.FromContextError(ctxErr, "registration")
		}
		return nil, collaboratorError(err, "registration", apperrors.StorageError)
	}
	return keys, nil
}
