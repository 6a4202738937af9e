// Package response writes the JSON envelope every API response uses.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes.
const (
	CodeOK              = 0
	CodeBadRequest      = 10001
	CodeUnsupported     = 10002
	CodeNoGuide         = 10003
	CodeTooLarge        = 10005
	CodePendingNotFound = 40401
	CodeGuideNotFound   = 40402
	CodeVersionNotFound = 40403
	CodeParseTimeout    = 50400
	CodeInternal        = 50000
)

// Response is the envelope.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Details string `json:"details,omitempty"`
}

// OK writes 200 with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Code: CodeOK, Message: "success", Data: data})
}

// Created writes 201 with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{Code: CodeOK, Message: "success", Data: data})
}

// Error writes an error envelope and aborts the chain.
func Error(c *gin.Context, status, code int, message string) {
	c.AbortWithStatusJSON(status, Response{Code: code, Message: message})
}

// ErrorWithDetails is Error with a details field.
func ErrorWithDetails(c *gin.Context, status, code int, message, details string) {
	c.AbortWithStatusJSON(status, Response{Code: code, Message: message, Details: details})
}

// BadRequest writes 400.
func BadRequest(c *gin.Context, code int, message string) {
	Error(c, http.StatusBadRequest, code, message)
}

// NotFound writes 404.
func NotFound(c *gin.Context, code int, message string) {
	Error(c, http.StatusNotFound, code, message)
}

// InternalError writes 500.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, CodeInternal, "internal server error")
}
