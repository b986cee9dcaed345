package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"
)

// Timeout aborts requests that exceed the configured budget. The handler
// writes into a buffered response, so a handler that finishes after the
// deadline cannot corrupt the timeout reply that already went out.
func Timeout(budget time.Duration) gin.HandlerFunc {
	return timeout.New(
		timeout.WithTimeout(budget),
		timeout.WithHandler(func(c *gin.Context) {
			c.Next()
		}),
		timeout.WithResponse(func(c *gin.Context) {
			c.JSON(http.StatusRequestTimeout, gin.H{
				"error": "Request timeout",
			})
		}),
	)
}
