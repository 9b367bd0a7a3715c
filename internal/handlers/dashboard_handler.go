package handlers

import (
	"github.com/gin-gonic/gin"

	"siteworks_backend/internal/dashboards"
	"siteworks_backend/internal/services"
)

// DashboardHandler exposes the role-gated dashboard status reports.
type DashboardHandler struct {
	BaseHandler
	access *services.AccessService
}

func NewDashboardHandler(access *services.AccessService) *DashboardHandler {
	return &DashboardHandler{access: access}
}

// Status handles GET /dashboard/:variant. The gate runs first; only a
// member whose approved role maps to the requested variant gets a report.
func (h *DashboardHandler) Status(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	variant, err := h.access.Authorize(c.Request.Context(), userID, c.Param("variant"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, dashboards.DemoReport(variant))
}
