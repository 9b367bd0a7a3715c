package apperrors

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	return c, rec
}

func TestHandleGinErrorLogsWrappedCause(t *testing.T) {
	buf := captureLog(t)
	c, rec := testContext()

	handler := &GinErrorHandler{}
	handler.HandleGinError(c, Wrap(errors.New("disk full"), CodeStorageError, "storage", "upload failed", http.StatusInternalServerError))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "disk full")
}

func TestHandleGinErrorLogsMessageWithoutCause(t *testing.T) {
	buf := captureLog(t)
	c, rec := testContext()

	handler := &GinErrorHandler{}
	handler.HandleGinError(c, New(CodeInternalError, "server", "migrations pending", http.StatusInternalServerError))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "migrations pending")
	assert.NotContains(t, buf.String(), "<nil>")
}

func TestHandleGinErrorSkipsClientErrors(t *testing.T) {
	buf := captureLog(t)
	c, rec := testContext()

	handler := &GinErrorHandler{}
	handler.HandleGinError(c, New(CodeValidationFailed, "validation", "email required", http.StatusBadRequest))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, buf.String())
}

func TestRedirectForGateCodes(t *testing.T) {
	require.Equal(t, "/user-role-selection", redirectFor(New(CodeRoleSelectionRequired, "access", "pick a role", http.StatusForbidden)))
	require.Equal(t, "/verification-pending", redirectFor(New(CodeVerificationRequired, "access", "pending review", http.StatusForbidden)))
	require.Empty(t, redirectFor(New(CodeNotFound, "access", "missing", http.StatusNotFound)))
}
