package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// HandleError writes err to the response in the standard envelope
// {"error": {...}}. Errors that are not AppError become opaque 500s.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		slog.Error("server error", slog.String("path", c.Request.URL.Path), slog.Any("err", appErr.Unwrap()))
	}

	c.JSON(appErr.HTTPCode, gin.H{"error": appErr})
}
