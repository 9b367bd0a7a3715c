package services

import (
	"siteworks_backend/pkg/apperrors"
)

// collaboratorError classifies a failed identity, storage, or store call.
// Context cancellation and deadline expiry surface as their own error codes;
// everything else goes through the collaborator's fallback factory.
func collaboratorError(err error, domain string, fallback func(error) *apperrors.AppError) *apperrors.AppError {
	if ctxErr := apperrors.FromContextError(err, domain); ctxErr != nil {
		return ctxErr
	}
	return fallback(err)
}
