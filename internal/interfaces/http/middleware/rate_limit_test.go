package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitScopePrefersOwnerIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/cart", nil)
	c.Request.Header.Set(OwnerIDHeader, "42")

	assert.Equal(t, "owner:42", rateLimitScope(c))
}

func TestRateLimitScopeFallsBackToClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/products", nil)

	assert.Equal(t, "ip:"+c.ClientIP(), rateLimitScope(c))
}
