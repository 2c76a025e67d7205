package middleware

import (
	"homeinsight-septic/internal/errors"
	"homeinsight-septic/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler catches errors attached to the context and returns the
// standardized error envelope. Technical detail goes to the logs; the
// caller only ever sees the user message and code.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			appErr := errors.MapError(c.Errors.Last().Err)

			logger.GlobalLogger.Errorf("Request failed: path=%s, method=%s, client_ip=%s, request_id=%s, status=%d, error=%s",
				c.Request.URL.Path,
				c.Request.Method,
				c.ClientIP(),
				c.GetString("request_id"),
				appErr.HTTPStatus,
				appErr.TechnicalMessage)

			for key, value := range appErr.Headers {
				c.Header(key, value)
			}

			c.JSON(appErr.HTTPStatus, gin.H{
				"error": gin.H{
					"message": appErr.UserMessage,
					"code":    appErr.Code,
				},
			})
			return
		}
	}
}
