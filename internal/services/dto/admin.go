package dto

import "time"

// AdminLoginRequest authenticates a review-queue administrator.
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminLoginResponse returns the bearer token for the admin surface.
type AdminLoginResponse struct {
	Token string `json:"token"`
}

// ProfileView is a review-queue entry with its document keys resolved to
// retrievable URLs.
type ProfileView struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	Role               string    `json:"role"`
	VerificationStatus string    `json:"verificationStatus"`
	Documents          []string  `json:"documents"`
	DocumentCount      int       `json:"documentCount"`
	CreatedAt          time.Time `json:"createdAt"`
}

// QueueResponse is a listing of the review queue plus its size, returned by
// the list endpoints and again after every decision.
type QueueResponse struct {
	Profiles []ProfileView `json:"profiles"`
	Count    int           `json:"count"`
}
