// Package router wires the API routes.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tsawler/vlier/internal/api/handler"
	"github.com/tsawler/vlier/internal/api/middleware"
)

// Setup returns the gin engine serving the API.
func Setup(h *handler.Handler, log *zap.Logger, maxUpload int64) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		uploads := v1.Group("/uploads")
		{
			uploads.POST("", middleware.BodyLimit(maxUpload), h.Upload.Create)
			uploads.GET("/:id", h.Upload.Get)
			uploads.DELETE("/:id", h.Upload.Delete)
			uploads.POST("/:id/commit", middleware.BodyLimit(maxUpload), h.Upload.Commit)
		}

		guides := v1.Group("/guides")
		{
			guides.GET("", h.Guide.List)
			guides.GET("/:id", h.Guide.Get)
			guides.DELETE("/:id", h.Guide.Delete)
			guides.GET("/:id/diff", h.Guide.Diff)
			guides.GET("/:id/versions/:version", h.Guide.Version)
			guides.GET("/:id/versions/:version/export", h.Guide.Export)
			guides.GET("/:id/versions/:version/ics", h.Guide.Calendar)
		}
	}
	return r
}
