package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"siteworks_backend/internal/services"
	"siteworks_backend/internal/services/dto"
)

// AdminHandler exposes the review queue and admin login.
type AdminHandler struct {
	BaseHandler
	admin  *services.AdminService
	review *services.ReviewService
}

func NewAdminHandler(admin *services.AdminService, review *services.ReviewService) *AdminHandler {
	return &AdminHandler{admin: admin, review: review}
}

// Login handles POST /admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.admin.Login(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, resp)
}

// Pending handles GET /admin/pending.
func (h *AdminHandler) Pending(c *gin.Context) {
	resp, err := h.review.Pending(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, resp)
}

// Verified handles GET /admin/verified.
func (h *AdminHandler) Verified(c *gin.Context) {
	resp, err := h.review.Verified(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, resp)
}

// Approve handles POST /admin/users/:id/approve. The response carries the
// refreshed pending queue so the reviewer's list stays current.
func (h *AdminHandler) Approve(c *gin.Context) {
	h.decide(c, h.review.Approve)
}

// Reject handles POST /admin/users/:id/reject.
func (h *AdminHandler) Reject(c *gin.Context) {
	h.decide(c, h.review.Reject)
}

func (h *AdminHandler) decide(c *gin.Context, decide func(ctx context.Context, id string) error) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	if err := decide(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	queue, err := h.review.Pending(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondOK(c, queue)
}
