package identity

import (
	"context"
	"errors"
)

// ErrEmailTaken is returned when the provider already has an identity for
// the email.
var ErrEmailTaken = errors.New("identity already exists for email")

// Provider creates accounts with the external identity backend. The returned
// id becomes the UserProfile primary key and the namespace for document keys.
type Provider interface {
	CreateIdentity(ctx context.Context, email, password string) (string, error)
}
