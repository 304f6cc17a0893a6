package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes payload as the response body with the given status.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// Error writes the API error shape: {"error": message}. No internal detail
// (driver errors, stack traces) ever goes through here.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// ServerError reports a persistence or other internal failure to the caller
// without exposing what went wrong.
func ServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}
