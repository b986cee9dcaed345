// internal/interfaces/http/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/colorsense/colorsense-backend/internal/domain/cart"
	"github.com/colorsense/colorsense-backend/internal/domain/product"
	"github.com/colorsense/colorsense-backend/internal/domain/wishlist"
	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to HTTP status codes. Anything outside
// the known taxonomy is reported as a 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrItemNotFound),
		errors.Is(err, cart.ErrProductNotFound),
		errors.Is(err, wishlist.ErrItemNotFound),
		errors.Is(err, wishlist.ErrProductNotFound),
		errors.Is(err, product.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, cart.ErrInvalidVariant),
		errors.Is(err, cart.ErrInsufficientStock),
		errors.Is(err, wishlist.ErrDuplicateItem):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, cart.ErrConflict),
		errors.Is(err, wishlist.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
