package services

import (
	"context"
	"errors"
	"time"

	"siteworks_backend/internal/email"
	"siteworks_backend/internal/logger"
	"siteworks_backend/internal/models"
	"siteworks_backend/internal/repositories"
	"siteworks_backend/internal/services/dto"
	"siteworks_backend/internal/storage"
	"siteworks_backend/pkg/apperrors"
)

// ReviewService drives the admin review queue: listing applicants and
// deciding their verification status. Every store and storage call runs
// under its own deadline.
type ReviewService struct {
	profiles repositories.ProfileRepository
	storage  storage.Storage
	mailer   email.Provider
	timeout  time.Duration
}

func NewReviewService(profiles repositories.ProfileRepository, store storage.Storage, mailer email.Provider, timeout time.Duration) *ReviewService {
	return &ReviewService{profiles: profiles, storage: store, mailer: mailer, timeout: timeout}
}

// Pending lists applicants awaiting a decision, newest first.
func (s *ReviewService) Pending(ctx context.Context) (*dto.QueueResponse, error) {
	return s.listByStatus(ctx, models.StatusPending)
}

// Verified lists approved members, newest first.
func (s *ReviewService) Verified(ctx context.Context) (*dto.QueueResponse, error) {
	return s.listByStatus(ctx, models.StatusApproved)
}

func (s *ReviewService) listByStatus(ctx context.Context, status models.VerificationStatus) (*dto.QueueResponse, error) {
	listCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	profiles, err := s.profiles.ListByStatus(listCtx, status)
	if err != nil {
		return nil, collaboratorError(err, "review", apperrors.PersistenceError)
	}

	views := make([]dto.ProfileView, 0, len(profiles))
	for _, p := range profiles {
		views = append(views, s.toView(ctx, p))
	}
	return &dto.QueueResponse{Profiles: views, Count: len(views)}, nil
}

// toView resolves stored document keys into viewable URLs. A key that fails
// to resolve is carried through as-is rather than dropped, so the reviewer
// still sees how many documents exist.
func (s *ReviewService) toView(ctx context.Context, p models.UserProfile) dto.ProfileView {
	urls := make([]string, 0, len(p.Documents))
	for _, key := range p.Documents {
		resolveCtx, cancel := context.WithTimeout(ctx, s.timeout)
		url, err := s.storage.GetURL(resolveCtx, key)
		cancel()
		if err != nil || url == "" {
			logger.Warn("document URL resolution failed", "user_id", p.ID, "key", key, "error", err)
			urls = append(urls, key)
			continue
		}
		urls = append(urls, url)
	}
	return dto.ProfileView{
		ID:                 p.ID,
		Email:              p.Email,
		FirstName:          p.FirstName,
		LastName:           p.LastName,
		Role:               string(p.Role),
		VerificationStatus: string(p.VerificationStatus),
		Documents:          urls,
		DocumentCount:      len(p.Documents),
		CreatedAt:          p.CreatedAt,
	}
}

// Approve moves a pending applicant to approved.
func (s *ReviewService) Approve(ctx context.Context, id string) error {
	return s.decide(ctx, id, models.StatusApproved)
}

// Reject moves a pending applicant to rejected.
func (s *ReviewService) Reject(ctx context.Context, id string) error {
	return s.decide(ctx, id, models.StatusRejected)
}

func (s *ReviewService) decide(ctx context.Context, id string, status models.VerificationStatus) error {
	findCtx, cancelFind := context.WithTimeout(ctx, s.timeout)
	defer cancelFind()
	profile, err := s.profiles.FindByID(findCtx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return collaboratorError(err, "review", apperrors.PersistenceError)
	}

	updateCtx, cancelUpdate := context.WithTimeout(ctx, s.timeout)
	defer cancelUpdate()
	if err := s.profiles.UpdateStatus(updateCtx, id, status); err != nil {
		switch {
		case errors.Is(err, repositories.ErrAlreadyDecided):
			return apperrors.ErrDecisionConflict
		case errors.Is(err, repositories.ErrProfileNotFound):
			return apperrors.ErrNotFound(err)
		default:
			return collaboratorError(err, "review", apperrors.PersistenceError)
		}
	}

	logger.Info("verification decided", "user_id", id, "status", status)

	// Notification is best effort and must not hold up the response.
	go func() {
		if err := s.mailer.SendDecision(profile.Email, profile.FirstName, status == models.StatusApproved); err != nil {
			logger.Warn("decision notification failed", "user_id", id, "error", err)
		}
	}()

	return nil
}
