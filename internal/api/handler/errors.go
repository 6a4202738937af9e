package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tsawler/vlier/internal/api/response"
	"github.com/tsawler/vlier/internal/service"
)

// fail maps service errors to responses.
func fail(c *gin.Context, log *zap.Logger, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge), err != nil && strings.Contains(err.Error(), "request body too large"):
		response.Error(c, http.StatusRequestEntityTooLarge, response.CodeTooLarge, "file too large")
	case errors.Is(err, service.ErrUnsupported):
		response.BadRequest(c, response.CodeUnsupported, "unsupported file format, upload a DOCX or PDF")
	case errors.Is(err, service.ErrNoGuide):
		response.Error(c, http.StatusUnprocessableEntity, response.CodeNoGuide, "no study guide found in file")
	case errors.Is(err, service.ErrParseTimeout):
		response.Error(c, http.StatusGatewayTimeout, response.CodeParseTimeout, "parsing the file took too long")
	case errors.Is(err, service.ErrPendingNotFound):
		response.NotFound(c, response.CodePendingNotFound, "upload not found or expired")
	case errors.Is(err, service.ErrGuideNotFound):
		response.NotFound(c, response.CodeGuideNotFound, "guide not found")
	case errors.Is(err, service.ErrVersionNotFound):
		response.NotFound(c, response.CodeVersionNotFound, "version not found")
	default:
		log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		_ = c.Error(err)
		response.InternalError(c)
	}
}
