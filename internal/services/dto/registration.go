// Package dto holds request and response shapes crossing the HTTP boundary.
package dto

import "io"

// DocumentInput is one uploaded verification document, already pulled out of
// the multipart form.
type DocumentInput struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// SignupRequest carries the applicant-facing registration fields. Documents
// travel separately because they come from multipart file parts, not form
// values.
type SignupRequest struct {
	Email           string `form:"email" json:"email" validate:"required,email"`
	Password        string `form:"password" json:"password" validate:"required,min=8"`
	ConfirmPassword string `form:"confirmPassword" json:"confirmPassword" validate:"required,eqfield=Password"`
	FirstName       string `form:"firstName" json:"firstName" validate:"required,max=100"`
	LastName        string `form:"lastName" json:"lastName" validate:"required,max=100"`
	Role            string `form:"role" json:"role" validate:"required,is-worker-role"`
}

// SignupResponse is what a successful registration returns. Skipped lists
// the filenames of documents dropped under the best-effort upload policy.
type SignupResponse struct {
	UserID             string   `json:"userId"`
	Email              string   `json:"email"`
	VerificationStatus string   `json:"verificationStatus"`
	Documents          []string `json:"documents"`
	Skipped            []string `json:"skipped,omitempty"`
}
