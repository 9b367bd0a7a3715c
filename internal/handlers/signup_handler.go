package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"siteworks_backend/internal/services"
	"siteworks_backend/internal/services/dto"
	"siteworks_backend/pkg/apperrors"
)

// SignupHandler exposes applicant registration.
type SignupHandler struct {
	BaseHandler
	registration *services.RegistrationService
}

func NewSignupHandler(registration *services.RegistrationService) *SignupHandler {
	return &SignupHandler{registration: registration}
}

// Signup handles POST /signup. The request is multipart: text fields plus
// one or more file parts named "documents".
func (h *SignupHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid form data"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Multipart form required"))
		return
	}

	files := form.File["documents"]
	docs := make([]dto.DocumentInput, 0, len(files))
	opened := make([]interface{ Close() error }, 0, len(files))
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			h.HandleServiceError(c, apperrors.NewBadRequestError("Unreadable file part"))
			return
		}
		opened = append(opened, f)
		docs = append(docs, dto.DocumentInput{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Reader:      f,
		})
	}

	resp, err := h.registration.Register(c.Request.Context(), &req, docs)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
