package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tsawler/vlier/internal/api/response"
)

const xlsxType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GuideHandler serves committed guides.
type GuideHandler struct {
	svc GuideService
	log *zap.Logger
}

// List returns every guide.
// GET /api/v1/guides
func (h *GuideHandler) List(c *gin.Context) {
	guides, err := h.svc.Guides(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.OK(c, guides)
}

// Get returns a guide with its versions.
// GET /api/v1/guides/:id
func (h *GuideHandler) Get(c *gin.Context) {
	g, err := h.svc.Guide(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.OK(c, g)
}

// Version returns one version.
// GET /api/v1/guides/:id/versions/:version
func (h *GuideHandler) Version(c *gin.Context) {
	n, ok := versionParam(c)
	if !ok {
		return
	}
	v, err := h.svc.Version(c.Request.Context(), c.Param("id"), n)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.OK(c, v)
}

// Diff compares two versions. Both query parameters are optional.
// GET /api/v1/guides/:id/diff?from=&to=
func (h *GuideHandler) Diff(c *gin.Context) {
	from, ok := intQuery(c, "from")
	if !ok {
		return
	}
	to, ok := intQuery(c, "to")
	if !ok {
		return
	}
	d, err := h.svc.Diff(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.OK(c, d)
}

// Export downloads a version as xlsx.
// GET /api/v1/guides/:id/versions/:version/export
func (h *GuideHandler) Export(c *gin.Context) {
	n, ok := versionParam(c)
	if !ok {
		return
	}
	buf, name, err := h.svc.Export(c.Request.Context(), c.Param("id"), n)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(name))
	c.Data(http.StatusOK, xlsxType, buf.Bytes())
}

// Calendar downloads a version as an iCalendar file.
// GET /api/v1/guides/:id/versions/:version/ics
func (h *GuideHandler) Calendar(c *gin.Context) {
	n, ok := versionParam(c)
	if !ok {
		return
	}
	data, name, err := h.svc.Calendar(c.Request.Context(), c.Param("id"), n)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(name))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", data)
}

// Delete removes a guide and its versions.
// DELETE /api/v1/guides/:id
func (h *GuideHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, h.log, err)
		return
	}
	response.OK(c, nil)
}

func versionParam(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("version"))
	if err != nil || n < 1 {
		response.BadRequest(c, response.CodeBadRequest, "version must be a positive number")
		return 0, false
	}
	return n, true
}

func intQuery(c *gin.Context, key string) (int, bool) {
	s := c.Query(key)
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		response.BadRequest(c, response.CodeBadRequest, key+" must be a non-negative number")
		return 0, false
	}
	return n, true
}
