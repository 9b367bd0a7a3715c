package handlers

import (
	"siteworks_backend/internal/services"
	"siteworks_backend/internal/storage"
)

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	Signup    *SignupHandler
	Admin     *AdminHandler
	Dashboard *DashboardHandler
	Files     *FilesHandler
}

func NewAppHandlers(sc *services.ServiceContainer, store storage.Storage) *AppHandlers {
	return &AppHandlers{
		Signup:    NewSignupHandler(sc.Registration),
		Admin:     NewAdminHandler(sc.Admin, sc.Review),
		Dashboard: NewDashboardHandler(sc.Access),
		Files:     NewFilesHandler(store),
	}
}
