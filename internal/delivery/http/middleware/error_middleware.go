package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-contact-relay/internal/delivery/http/response"
	"go-contact-relay/pkg/apperror"
	"go-contact-relay/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				// Log the underlying cause with full detail; the caller only
				// ever sees the stable message.
				if appErr.Err != nil {
					logger.Log.Error("request failed",
						"status", appErr.Code,
						"message", appErr.Message,
						"error", appErr.Err,
						"path", c.Request.URL.Path)
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				// Never expose internal error details to clients.
				logger.Log.Error("unhandled error",
					"error", err,
					"path", c.Request.URL.Path)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
