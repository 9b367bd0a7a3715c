// Package handlers is the HTTP edge: binding, auth context extraction, and
// translation of service errors into responses.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"siteworks_backend/internal/middleware"
	"siteworks_backend/pkg/apperrors"
)

// BaseHandler carries the helpers shared by every handler.
type BaseHandler struct{}

// BindJSON binds the request body and converts bind failures into the
// uniform validation error shape.
func (h *BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return true
}

// HandleServiceError writes the error response for a failed service call.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// CurrentUserID reads the authenticated user id set by the auth middleware.
func (h *BaseHandler) CurrentUserID(c *gin.Context) (string, bool) {
	userID, ok := c.Get(middleware.ContextUserIDKey)
	if !ok {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return "", false
	}
	id, ok := userID.(string)
	if !ok || id == "" {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return "", false
	}
	return id, true
}

// RespondOK writes a 200 with the given payload.
func (h *BaseHandler) RespondOK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

var errMissingID = errors.New("missing id parameter")

// PathID reads a required :id path parameter.
func (h *BaseHandler) PathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if id == "" {
		h.HandleServiceError(c, apperrors.NewBadRequestError(errMissingID.Error()))
		return "", false
	}
	return id, true
}
