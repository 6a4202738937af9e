package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tsawler/vlier/internal/api/response"
	"github.com/tsawler/vlier/internal/service"
)

// UploadHandler serves pending uploads.
type UploadHandler struct {
	svc GuideService
	log *zap.Logger
}

// Create parses an uploaded study guide.
// POST /api/v1/uploads (multipart field "file")
func (h *UploadHandler) Create(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			fail(c, h.log, err)
			return
		}
		response.BadRequest(c, response.CodeBadRequest, "multipart field \"file\" is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		fail(c, h.log, err)
		return
	}
	defer f.Close()

	uploads, err := h.svc.Upload(c.Request.Context(), fh.Filename, f)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Created(c, uploads)
}

// Get returns a pending upload.
// GET /api/v1/uploads/:id
func (h *UploadHandler) Get(c *gin.Context) {
	u, err := h.svc.Pending(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.OK(c, u)
}

// Delete discards a pending upload.
// DELETE /api/v1/uploads/:id
func (h *UploadHandler) Delete(c *gin.Context) {
	if err := h.svc.Discard(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, h.log, err)
		return
	}
	response.OK(c, nil)
}

// Commit stores a pending upload as a new guide version. The body is
// optional.
// POST /api/v1/uploads/:id/commit
func (h *UploadHandler) Commit(c *gin.Context) {
	var req service.CommitRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeBadRequest, "invalid commit body", err.Error())
			return
		}
	}
	if req.Periode != nil && (*req.Periode < 1 || *req.Periode > 4) {
		response.BadRequest(c, response.CodeBadRequest, "periode must be between 1 and 4")
		return
	}

	v, err := h.svc.Commit(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Created(c, v)
}
