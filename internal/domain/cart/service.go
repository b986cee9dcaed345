// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/colorsense/colorsense-backend/internal/config"
	"github.com/colorsense/colorsense-backend/internal/domain/product"
)

// maxSaveAttempts bounds the load-mutate-save retry loop on version conflicts
const maxSaveAttempts = 3

// Service handles cart business logic. Product validation happens against
// a catalog snapshot before the aggregate is touched; persistence conflicts
// are resolved by reloading and reapplying the mutation.
type Service struct {
	repo    Repository
	catalog ProductCatalog
	cache   Cache
	config  *config.Config
}

// NewService creates a new cart service. cache may be nil to disable caching.
func NewService(repo Repository, catalog ProductCatalog, cache Cache, cfg *config.Config) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		cache:   cache,
		config:  cfg,
	}
}

// AddItemRequest represents an add-to-cart request
type AddItemRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// UpdateItemRequest represents a quantity update. Zero or negative
// quantities remove the line item.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the owner's cart, creating an empty one lazily if the
// owner has never saved a cart
func (s *Service) GetCart(ctx context.Context, ownerID uint) (*Cart, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, ownerID); err == nil {
			return cached, nil
		}
	}

	c, err := s.loadOrCreate(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		// Cache errors never fail the read path
		_ = s.cache.Set(ctx, c)
	}

	return c, nil
}

// GetItemCount returns the total quantity across all line items
func (s *Service) GetItemCount(ctx context.Context, ownerID uint) (int, error) {
	c, err := s.GetCart(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	return c.TotalItemCount, nil
}

// AddItem validates the product selection against a catalog snapshot and
// adds it to the owner's cart, merging with an existing line item when the
// (product, size, color) key matches
func (s *Service) AddItem(ctx context.Context, ownerID uint, req *AddItemRequest) (*Cart, error) {
	snap, err := s.productSnapshot(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	size := strings.TrimSpace(req.Size)
	color := strings.TrimSpace(req.Color)
	if err := validateSelection(snap, size, color); err != nil {
		return nil, err
	}

	return s.mutate(ctx, ownerID, func(c *Cart) error {
		quantity := req.Quantity
		if existing := c.Find(req.ProductID, size, color); existing != nil {
			quantity += existing.Quantity
		}
		if snap.TrackStock && snap.Stock < quantity {
			return fmt.Errorf("%w: available %d, requested %d", ErrInsufficientStock, snap.Stock, quantity)
		}

		c.AddItem(req.ProductID, req.Quantity, size, color, snap.Price)
		return nil
	})
}

// UpdateItemQuantity sets the quantity of a line item; zero or negative
// removes it. Returns ErrItemNotFound if the line item does not exist.
func (s *Service) UpdateItemQuantity(ctx context.Context, ownerID uint, lineItemID string, req *UpdateItemRequest) (*Cart, error) {
	return s.mutate(ctx, ownerID, func(c *Cart) error {
		item := c.FindByID(lineItemID)
		if item == nil {
			return ErrItemNotFound
		}

		if req.Quantity > 0 {
			snap, err := s.catalog.ProductSnapshot(ctx, item.ProductID)
			if err == nil {
				if snap.TrackStock && snap.Stock < req.Quantity {
					return fmt.Errorf("%w: available %d, requested %d", ErrInsufficientStock, snap.Stock, req.Quantity)
				}
				if s.config.Pricing.RefreshOnQuantityUpdate {
					item.UnitPrice = snap.Price
				}
			} else if !errors.Is(err, product.ErrNotFound) {
				return fmt.Errorf("failed to load product snapshot: %w", err)
			}
		}

		return c.UpdateItemQuantity(lineItemID, req.Quantity)
	})
}

// RemoveItem deletes a line item by ID. Removing an absent item leaves the
// cart untouched and is not an error.
func (s *Service) RemoveItem(ctx context.Context, ownerID uint, lineItemID string) (*Cart, error) {
	return s.mutate(ctx, ownerID, func(c *Cart) error {
		c.RemoveItem(lineItemID)
		return nil
	})
}

// ClearCart empties the owner's cart. The aggregate itself stays alive.
func (s *Service) ClearCart(ctx context.Context, ownerID uint) (*Cart, error) {
	return s.mutate(ctx, ownerID, func(c *Cart) error {
		c.Clear()
		return nil
	})
}

// mutate runs a load-mutate-save cycle with bounded retries on version
// conflicts. Two concurrent writers for the same owner serialize through
// the repository's compare-and-swap.
func (s *Service) mutate(ctx context.Context, ownerID uint, fn func(c *Cart) error) (*Cart, error) {
	var lastErr error

	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		c, err := s.loadOrCreate(ctx, ownerID)
		if err != nil {
			return nil, err
		}

		if err := fn(c); err != nil {
			return nil, err
		}

		err = s.repo.Save(ctx, c)
		if err == nil {
			if s.cache != nil {
				_ = s.cache.Invalidate(ctx, ownerID)
				_ = s.cache.Set(ctx, c)
			}
			return c, nil
		}
		if !errors.Is(err, ErrConflict) {
			return nil, fmt.Errorf("failed to save cart: %w", err)
		}
		lastErr = err
	}

	return nil, lastErr
}

func (s *Service) loadOrCreate(ctx context.Context, ownerID uint) (*Cart, error) {
	c, err := s.repo.Load(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if c == nil {
		return NewCart(ownerID), nil
	}
	return c, nil
}

func (s *Service) productSnapshot(ctx context.Context, productID uint) (*product.Snapshot, error) {
	snap, err := s.catalog.ProductSnapshot(ctx, productID)
	if errors.Is(err, product.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load product snapshot: %w", err)
	}
	if !snap.IsActive {
		return nil, ErrProductNotFound
	}
	return snap, nil
}

// validateSelection enforces the product's declared variant dimensions:
// a declared dimension makes the selection required and restricts it to
// the declared values; selecting a dimension the product does not declare
// is rejected as well.
func validateSelection(snap *product.Snapshot, size, color string) error {
	switch {
	case snap.RequiresSize() && size == "":
		return fmt.Errorf("%w: size is required for this product", ErrInvalidVariant)
	case !snap.RequiresSize() && size != "":
		return fmt.Errorf("%w: product has no size options", ErrInvalidVariant)
	case size != "" && !snap.AllowsSize(size):
		return fmt.Errorf("%w: size %q is not available", ErrInvalidVariant, size)
	}

	switch {
	case snap.RequiresColor() && color == "":
		return fmt.Errorf("%w: color is required for this product", ErrInvalidVariant)
	case !snap.RequiresColor() && color != "":
		return fmt.Errorf("%w: product has no color options", ErrInvalidVariant)
	case color != "" && !snap.AllowsColor(color):
		return fmt.Errorf("%w: color %q is not available", ErrInvalidVariant, color)
	}

	return nil
}
