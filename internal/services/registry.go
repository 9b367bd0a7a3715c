package services

import (
	"siteworks_backend/internal/config"
	"siteworks_backend/internal/email"
	"siteworks_backend/internal/identity"
	"siteworks_backend/internal/repositories"
	"siteworks_backend/internal/storage"
	"siteworks_backend/internal/validator"
)

// ServiceContainer bundles every service for handler wiring.
type ServiceContainer struct {
	Registration *RegistrationService
	Review       *ReviewService
	Access       *AccessService
	Admin        *AdminService
}

// Collaborators are the externally-selected implementations the services
// run on. In stub mode every field holds the stub implementation.
type Collaborators struct {
	Identity identity.Provider
	Storage  storage.Storage
	Profiles repositories.ProfileRepository
	Admins   repositories.AdminRepository
	Mailer   email.Provider
}

func NewServiceContainer(c Collaborators, cfg *config.Config) *ServiceContainer {
	v := validator.New()
	timeout := cfg.ProviderTimeout()
	return &ServiceContainer{
		Registration: NewRegistrationService(c.Identity, c.Storage, c.Profiles, v, cfg),
		Review:       NewReviewService(c.Profiles, c.Storage, c.Mailer, timeout),
		Access:       NewAccessService(c.Profiles, timeout),
		Admin:        NewAdminService(c.Admins, v),
	}
}
