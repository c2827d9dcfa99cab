package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"viang-solution-backend/internal/delivery/http/response"
	"viang-solution-backend/pkg/apperror"
	"viang-solution-backend/pkg/logger"
)

// ErrorHandler renders errors appended to the gin context. AppErrors carry a
// client-safe status and message; anything else collapses to a generic 500
// so internals are never disclosed.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("request failed",
					"status", appErr.Code,
					"path", c.FullPath(),
					"error", appErr.Err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Fields)
			return
		}

		logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
