// Package routes declares the HTTP surface.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"siteworks_backend/internal/auth"
	"siteworks_backend/internal/handlers"
	"siteworks_backend/internal/middleware"
)

// Setup registers every route under /api/v1.
func Setup(r *gin.Engine, h *handlers.AppHandlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	api.POST("/signup", h.Signup.Signup)
	api.POST("/admin/login", h.Admin.Login)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(auth.RoleAdmin))
	{
		admin.GET("/pending", h.Admin.Pending)
		admin.GET("/verified", h.Admin.Verified)
		admin.POST("/users/:id/approve", h.Admin.Approve)
		admin.POST("/users/:id/reject", h.Admin.Reject)
	}

	files := api.Group("/files")
	files.Use(middleware.AuthMiddleware(), middleware.RequireRoles(auth.RoleAdmin))
	{
		files.GET("/*path", h.Files.Get)
	}

	member := api.Group("/dashboard")
	member.Use(middleware.AuthMiddleware())
	{
		member.GET("/:variant", h.Dashboard.Status)
	}
}
