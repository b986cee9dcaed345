// internal/domain/wishlist/entity.go
package wishlist

import (
	"time"

	"github.com/google/uuid"
)

// Wishlist is the per-owner saved-products aggregate. Unlike the cart,
// items are unique by product alone and carry no quantity or price.
type Wishlist struct {
	OwnerID        uint      `json:"owner_id"`
	Items          []Item    `json:"items"`
	TotalItemCount int       `json:"total_item_count"`
	Version        int64     `json:"version"`
	CreatedAt      time.Time `json:"created_at"`
	LastModifiedAt time.Time `json:"last_modified_at"`
}

// Item represents one saved product
type Item struct {
	ID        string    `json:"id"`
	ProductID uint      `json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}

// NewWishlist creates an empty wishlist for the given owner
func NewWishlist(ownerID uint) *Wishlist {
	now := time.Now().UTC()
	return &Wishlist{
		OwnerID:        ownerID,
		Items:          []Item{},
		CreatedAt:      now,
		LastModifiedAt: now,
	}
}

// HasProduct reports whether the product is already on the wishlist
func (w *Wishlist) HasProduct(productID uint) bool {
	return w.findIndexByProduct(productID) >= 0
}

// AddItem appends a product to the wishlist. Adding a product that is
// already present fails with ErrDuplicateItem and changes nothing.
func (w *Wishlist) AddItem(productID uint) (*Item, error) {
	if w.HasProduct(productID) {
		return nil, ErrDuplicateItem
	}

	w.Items = append(w.Items, Item{
		ID:        uuid.New().String(),
		ProductID: productID,
		AddedAt:   time.Now().UTC(),
	})
	w.recompute()
	return &w.Items[len(w.Items)-1], nil
}

// RemoveItem deletes an item by ID. Removing an absent item is a no-op;
// the return value reports whether anything changed.
func (w *Wishlist) RemoveItem(itemID string) bool {
	for i := range w.Items {
		if w.Items[i].ID == itemID {
			w.Items = append(w.Items[:i], w.Items[i+1:]...)
			w.recompute()
			return true
		}
	}
	return false
}

// RemoveByProduct deletes the item referencing the given product, if any
func (w *Wishlist) RemoveByProduct(productID uint) bool {
	idx := w.findIndexByProduct(productID)
	if idx < 0 {
		return false
	}

	w.Items = append(w.Items[:idx], w.Items[idx+1:]...)
	w.recompute()
	return true
}

// Clear removes all items from the wishlist
func (w *Wishlist) Clear() {
	w.Items = []Item{}
	w.recompute()
}

func (w *Wishlist) findIndexByProduct(productID uint) int {
	for i := range w.Items {
		if w.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func (w *Wishlist) recompute() {
	w.TotalItemCount = len(w.Items)
	w.LastModifiedAt = time.Now().UTC()
}
