// internal/domain/cart/ports.go
package cart

import (
	"context"

	"github.com/colorsense/colorsense-backend/internal/domain/product"
)

// Repository persists one cart aggregate per owner. Save performs a
// compare-and-swap on the aggregate version and must return ErrConflict
// when the stored version no longer matches the loaded one.
type Repository interface {
	// Load returns the owner's cart, or nil if none has been saved yet
	Load(ctx context.Context, ownerID uint) (*Cart, error)

	// Save persists the aggregate and bumps its version
	Save(ctx context.Context, c *Cart) error
}

// ProductCatalog supplies point-in-time product snapshots for validation
// at the mutation boundary
type ProductCatalog interface {
	ProductSnapshot(ctx context.Context, productID uint) (*product.Snapshot, error)
}

// Cache is an optional read-through cache for cart aggregates. A miss is
// signalled by the implementation's miss sentinel; every save invalidates.
type Cache interface {
	Get(ctx context.Context, ownerID uint) (*Cart, error)
	Set(ctx context.Context, c *Cart) error
	Invalidate(ctx context.Context, ownerID uint) error
}
