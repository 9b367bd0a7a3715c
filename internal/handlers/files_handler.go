package handlers

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"siteworks_backend/internal/storage"
	"siteworks_backend/pkg/apperrors"
)

// FilesHandler serves stored documents to reviewers. Only meaningful with
// local storage; S3/R2 deployments hand out direct object URLs instead.
type FilesHandler struct {
	BaseHandler
	storage storage.Storage
}

func NewFilesHandler(store storage.Storage) *FilesHandler {
	return &FilesHandler{storage: store}
}

// Get handles GET /files/*path.
func (h *FilesHandler) Get(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("path"), "/")
	if key == "" || strings.Contains(key, "..") {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid document path"))
		return
	}

	reader, err := h.storage.Get(c.Request.Context(), key)
	if err != nil {
		h.HandleServiceError(c, apperrors.ErrNotFound(err))
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Headers are already out; nothing left to do but drop the conn.
		c.Abort()
	}
}
