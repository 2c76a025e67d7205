package middleware

import (
	"crypto/subtle"
	"net/http"

	"homeinsight-septic/internal/errors"
	"homeinsight-septic/pkg/config"

	"github.com/gin-gonic/gin"
)

// BasicAuth validates the request's HTTP Basic credentials against the
// single configured pair. Missing, malformed, and mismatched credentials
// all produce the identical 401 so the response leaks nothing about which
// part was wrong.
func BasicAuth(cfg *config.Config) gin.HandlerFunc {
	expectedUsername := []byte(cfg.Auth.Username)
	expectedPassword := []byte(cfg.Auth.Password)

	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()

		// Evaluate both comparisons unconditionally to keep timing uniform.
		usernameMatch := subtle.ConstantTimeCompare([]byte(username), expectedUsername) == 1
		passwordMatch := subtle.ConstantTimeCompare([]byte(password), expectedPassword) == 1

		if !ok || !usernameMatch || !passwordMatch {
			c.Header("WWW-Authenticate", "Basic")
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"message": errors.MsgUnauthorized,
					"code":    errors.ErrCodeUnauthorized,
				},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
