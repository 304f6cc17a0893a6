package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/Dadssi/Calendrier-Editoriel/internal/util"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body into dst and reports whether the caller
// should continue. An empty body is not an error here; per-field validation
// in the handler deals with absent values.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		util.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}
