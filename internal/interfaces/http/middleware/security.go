package middleware

import "github.com/gin-gonic/gin"

// securityHeaders are attached to every response. The API serves JSON only,
// so framing and script sources are locked down wholesale.
var securityHeaders = map[string]string{
	"X-Frame-Options":         "DENY",
	"X-Content-Type-Options":  "nosniff",
	"Referrer-Policy":         "strict-origin-when-cross-origin",
	"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
	"Permissions-Policy":      "camera=(), microphone=(), geolocation=()",
	"Server":                  "ColorSense API",
}

// SecurityHeaders sets browser security headers on every response
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		for name, value := range securityHeaders {
			c.Header(name, value)
		}
		c.Next()
	}
}
