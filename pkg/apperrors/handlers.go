package apperrors

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error *AppError `json:"error"`
	// Redirect carries a client-side navigation hint for gate failures
	// (role selection, verification pending).
	Redirect string `json:"redirect,omitempty"`
}

// GinErrorHandler renders AppErrors as JSON responses.
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
		if !h.Debug {
			appErr.Message = "Internal server error"
			appErr.Details = nil
		}
	}

	if appErr.HTTPCode >= 500 {
		if cause := appErr.Unwrap(); cause != nil {
			log.Printf("Server error: %v", cause)
		} else {
			log.Printf("Server error: %v", appErr)
		}
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr, Redirect: redirectFor(appErr)})
}

// HandleError is the helper most handlers call.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: gin.Mode() != gin.ReleaseMode}
	handler.HandleGinError(c, err)
}

// AsAppError attempts to convert err into an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func redirectFor(err *AppError) string {
	switch err.Code {
	case CodeRoleSelectionRequired:
		return "/user-role-selection"
	case CodeVerificationRequired:
		return "/verification-pending"
	default:
		return ""
	}
}
