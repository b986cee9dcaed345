// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/colorsense/colorsense-backend/internal/domain/wishlist"
	"github.com/colorsense/colorsense-backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	wishlistService *wishlist.Service
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlistService *wishlist.Service) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
	}
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	ownerID, _ := middleware.GetOwnerIDFromContext(c)

	wishlistResponse, err := h.wishlistService.GetWishlist(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist retrieved successfully",
		"data":    wishlistResponse,
	})
}

// AddItem handles POST /wishlist/items
func (h *WishlistHandler) AddItem(c *gin.Context) {
	ownerID, _ := middleware.GetOwnerIDFromContext(c)

	var req wishlist.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	wishlistResponse, err := h.wishlistService.AddItem(c.Request.Context(), ownerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to wishlist successfully",
		"data":    wishlistResponse,
	})
}

// RemoveItem handles DELETE /wishlist/items/:id
func (h *WishlistHandler) RemoveItem(c *gin.Context) {
	ownerID, _ := middleware.GetOwnerIDFromContext(c)
	itemID := c.Param("id")

	wishlistResponse, err := h.wishlistService.RemoveItem(c.Request.Context(), ownerID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from wishlist successfully",
		"data":    wishlistResponse,
	})
}

// RemoveByProduct handles DELETE /wishlist/products/:productId
func (h *WishlistHandler) RemoveByProduct(c *gin.Context) {
	ownerID, _ := middleware.GetOwnerIDFromContext(c)

	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	wishlistResponse, err := h.wishlistService.RemoveByProduct(c.Request.Context(), ownerID, productID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product removed from wishlist successfully",
		"data":    wishlistResponse,
	})
}

// CheckProduct handles GET /wishlist/products/:productId
func (h *WishlistHandler) CheckProduct(c *gin.Context) {
	ownerID, _ := middleware.GetOwnerIDFromContext(c)

	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	inWishlist, err := h.wishlistService.HasProduct(c.Request.Context(), ownerID, productID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"product_id":  productID,
			"in_wishlist": inWishlist,
		},
	})
}

// MoveToCart handles POST /wishlist/products/:productId/move-to-cart
func (h *WishlistHandler) MoveToCart(c *gin.Context) {
	ownerID, _ := middleware.GetOwnerIDFromContext(c)

	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	var req wishlist.MoveToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	wishlistResponse, err := h.wishlistService.MoveToCart(c.Request.Context(), ownerID, productID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item moved to cart successfully",
		"data":    wishlistResponse,
	})
}

// ClearWishlist handles DELETE /wishlist
func (h *WishlistHandler) ClearWishlist(c *gin.Context) {
	ownerID, _ := middleware.GetOwnerIDFromContext(c)

	wishlistResponse, err := h.wishlistService.ClearWishlist(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist cleared successfully",
		"data":    wishlistResponse,
	})
}

func parseProductID(c *gin.Context) (uint, bool) {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return 0, false
	}
	return uint(productID), true
}
