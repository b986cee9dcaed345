// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/google/uuid"
)

// Cart is the per-owner shopping aggregate. Items carry a price snapshot
// taken when they were added; TotalItemCount and TotalAmount are derived
// from Items and recomputed synchronously after every mutation.
type Cart struct {
	OwnerID        uint       `json:"owner_id"`
	Items          []LineItem `json:"items"`
	TotalItemCount int        `json:"total_item_count"`
	TotalAmount    int64      `json:"total_amount"` // In cents
	Version        int64      `json:"version"`
	CreatedAt      time.Time  `json:"created_at"`
	LastModifiedAt time.Time  `json:"last_modified_at"`
}

// LineItem represents one product selection within a cart. A line item is
// identified by a stable ID assigned at creation; two selections are the
// same line when product, size and color all match (empty matches empty).
type LineItem struct {
	ID        string    `json:"id"`
	ProductID uint      `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Size      string    `json:"size,omitempty"`
	Color     string    `json:"color,omitempty"`
	UnitPrice int64     `json:"unit_price"` // Price in cents at time of adding
	AddedAt   time.Time `json:"added_at"`
}

// NewCart creates an empty cart for the given owner
func NewCart(ownerID uint) *Cart {
	now := time.Now().UTC()
	return &Cart{
		OwnerID:        ownerID,
		Items:          []LineItem{},
		CreatedAt:      now,
		LastModifiedAt: now,
	}
}

// Find returns the line item matching the (product, size, color) key, or
// nil if no line matches
func (c *Cart) Find(productID uint, size, color string) *LineItem {
	if idx := c.findIndex(productID, size, color); idx >= 0 {
		return &c.Items[idx]
	}
	return nil
}

// FindByID returns the line item with the given ID, or nil
func (c *Cart) FindByID(lineItemID string) *LineItem {
	if idx := c.findIndexByID(lineItemID); idx >= 0 {
		return &c.Items[idx]
	}
	return nil
}

// AddItem adds a product selection to the cart. If a line item with the
// same (product, size, color) key exists its quantity is incremented,
// otherwise a new line item is appended. Returns the affected line item.
func (c *Cart) AddItem(productID uint, quantity int, size, color string, unitPrice int64) *LineItem {
	defer c.recompute()

	if idx := c.findIndex(productID, size, color); idx >= 0 {
		c.Items[idx].Quantity += quantity
		return &c.Items[idx]
	}

	c.Items = append(c.Items, LineItem{
		ID:        uuid.New().String(),
		ProductID: productID,
		Quantity:  quantity,
		Size:      size,
		Color:     color,
		UnitPrice: unitPrice,
		AddedAt:   time.Now().UTC(),
	})
	return &c.Items[len(c.Items)-1]
}

// UpdateItemQuantity sets the quantity of an existing line item. A quantity
// of zero or less removes the line item. Returns ErrItemNotFound if no line
// item has the given ID.
func (c *Cart) UpdateItemQuantity(lineItemID string, quantity int) error {
	idx := c.findIndexByID(lineItemID)
	if idx < 0 {
		return ErrItemNotFound
	}

	if quantity <= 0 {
		c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	} else {
		c.Items[idx].Quantity = quantity
	}

	c.recompute()
	return nil
}

// RemoveItem deletes a line item by ID. Removing an absent item is a no-op;
// the return value reports whether anything changed.
func (c *Cart) RemoveItem(lineItemID string) bool {
	idx := c.findIndexByID(lineItemID)
	if idx < 0 {
		return false
	}

	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	c.recompute()
	return true
}

// Clear removes all items from the cart
func (c *Cart) Clear() {
	c.Items = []LineItem{}
	c.recompute()
}

// IsEmpty reports whether the cart has no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// findIndex resolves the (product, size, color) identity key to an item
// index, or -1. Both sides empty counts as a match; empty never matches a
// defined value.
func (c *Cart) findIndex(productID uint, size, color string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID &&
			c.Items[i].Size == size &&
			c.Items[i].Color == color {
			return i
		}
	}
	return -1
}

func (c *Cart) findIndexByID(lineItemID string) int {
	for i := range c.Items {
		if c.Items[i].ID == lineItemID {
			return i
		}
	}
	return -1
}

// recompute re-derives the totals by folding over Items. Full recomputation
// keeps the totals consistent with the item list after every mutation path.
func (c *Cart) recompute() {
	count := 0
	var amount int64
	for i := range c.Items {
		count += c.Items[i].Quantity
		amount += c.Items[i].UnitPrice * int64(c.Items[i].Quantity)
	}

	c.TotalItemCount = count
	c.TotalAmount = amount
	c.LastModifiedAt = time.Now().UTC()
}
