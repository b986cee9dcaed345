// internal/interfaces/http/middleware/identity.go
package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// OwnerIDHeader carries the authenticated user's ID, set by the upstream
// gateway that terminates authentication
const OwnerIDHeader = "X-User-ID"

// RequireOwner extracts the owner identity from the request and rejects
// requests without one. Cart and wishlist aggregates are owner-scoped, so
// every shopping route runs behind this middleware.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(OwnerIDHeader)
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Missing " + OwnerIDHeader + " header",
			})
			c.Abort()
			return
		}

		ownerID, err := strconv.ParseUint(header, 10, 32)
		if err != nil || ownerID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid " + OwnerIDHeader + " header",
			})
			c.Abort()
			return
		}

		c.Set("owner_id", uint(ownerID))
		c.Next()
	}
}

// GetOwnerIDFromContext extracts the owner ID from gin context
func GetOwnerIDFromContext(c *gin.Context) (uint, bool) {
	value, exists := c.Get("owner_id")
	if !exists {
		return 0, false
	}

	ownerID, ok := value.(uint)
	return ownerID, ok
}
