// internal/domain/wishlist/service.go
package wishlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/colorsense/colorsense-backend/internal/domain/cart"
	"github.com/colorsense/colorsense-backend/internal/domain/product"
)

// maxSaveAttempts bounds the load-mutate-save retry loop on version conflicts
const maxSaveAttempts = 3

// Repository persists one wishlist aggregate per owner. Save performs a
// compare-and-swap on the aggregate version and must return ErrConflict
// when the stored version no longer matches the loaded one.
type Repository interface {
	Load(ctx context.Context, ownerID uint) (*Wishlist, error)
	Save(ctx context.Context, w *Wishlist) error
}

// ProductCatalog supplies point-in-time product snapshots
type ProductCatalog interface {
	ProductSnapshot(ctx context.Context, productID uint) (*product.Snapshot, error)
}

// CartAdder is the slice of the cart service used by move-to-cart
type CartAdder interface {
	AddItem(ctx context.Context, ownerID uint, req *cart.AddItemRequest) (*cart.Cart, error)
}

// Service handles wishlist business logic
type Service struct {
	repo    Repository
	catalog ProductCatalog
	carts   CartAdder
}

// NewService creates a new wishlist service
func NewService(repo Repository, catalog ProductCatalog, carts CartAdder) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		carts:   carts,
	}
}

// AddItemRequest represents an add-to-wishlist request
type AddItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// MoveToCartRequest represents a move-to-cart request. Size and color are
// needed here because the wishlist has no variant dimension but the cart
// requires one when the product declares it.
type MoveToCartRequest struct {
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Size     string `json:"size"`
	Color    string `json:"color"`
}

// GetWishlist returns the owner's wishlist, creating an empty one lazily
func (s *Service) GetWishlist(ctx context.Context, ownerID uint) (*Wishlist, error) {
	return s.loadOrCreate(ctx, ownerID)
}

// HasProduct reports whether the product is on the owner's wishlist
func (s *Service) HasProduct(ctx context.Context, ownerID, productID uint) (bool, error) {
	w, err := s.loadOrCreate(ctx, ownerID)
	if err != nil {
		return false, err
	}
	return w.HasProduct(productID), nil
}

// AddItem adds a product to the owner's wishlist. The product must exist
// and be active; a duplicate add fails with ErrDuplicateItem.
func (s *Service) AddItem(ctx context.Context, ownerID uint, req *AddItemRequest) (*Wishlist, error) {
	snap, err := s.catalog.ProductSnapshot(ctx, req.ProductID)
	if errors.Is(err, product.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load product snapshot: %w", err)
	}
	if !snap.IsActive {
		return nil, ErrProductNotFound
	}

	return s.mutate(ctx, ownerID, func(w *Wishlist) error {
		_, err := w.AddItem(req.ProductID)
		return err
	})
}

// RemoveItem deletes an item by ID; removing an absent item is a no-op
func (s *Service) RemoveItem(ctx context.Context, ownerID uint, itemID string) (*Wishlist, error) {
	return s.mutate(ctx, ownerID, func(w *Wishlist) error {
		w.RemoveItem(itemID)
		return nil
	})
}

// RemoveByProduct deletes the item referencing the given product; removing
// an absent product is a no-op
func (s *Service) RemoveByProduct(ctx context.Context, ownerID, productID uint) (*Wishlist, error) {
	return s.mutate(ctx, ownerID, func(w *Wishlist) error {
		w.RemoveByProduct(productID)
		return nil
	})
}

// ClearWishlist empties the owner's wishlist
func (s *Service) ClearWishlist(ctx context.Context, ownerID uint) (*Wishlist, error) {
	return s.mutate(ctx, ownerID, func(w *Wishlist) error {
		w.Clear()
		return nil
	})
}

// MoveToCart adds a wishlisted product to the owner's cart and removes it
// from the wishlist. The wishlist row is only removed after the cart add
// succeeded, so a failed add leaves the wishlist untouched.
func (s *Service) MoveToCart(ctx context.Context, ownerID, productID uint, req *MoveToCartRequest) (*Wishlist, error) {
	w, err := s.loadOrCreate(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !w.HasProduct(productID) {
		return nil, ErrItemNotFound
	}

	_, err = s.carts.AddItem(ctx, ownerID, &cart.AddItemRequest{
		ProductID: productID,
		Quantity:  req.Quantity,
		Size:      req.Size,
		Color:     req.Color,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add item to cart: %w", err)
	}

	return s.RemoveByProduct(ctx, ownerID, productID)
}

// mutate runs a load-mutate-save cycle with bounded retries on version
// conflicts
func (s *Service) mutate(ctx context.Context, ownerID uint, fn func(w *Wishlist) error) (*Wishlist, error) {
	var lastErr error

	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		w, err := s.loadOrCreate(ctx, ownerID)
		if err != nil {
			return nil, err
		}

		if err := fn(w); err != nil {
			return nil, err
		}

		err = s.repo.Save(ctx, w)
		if err == nil {
			return w, nil
		}
		if !errors.Is(err, ErrConflict) {
			return nil, fmt.Errorf("failed to save wishlist: %w", err)
		}
		lastErr = err
	}

	return nil, lastErr
}

func (s *Service) loadOrCreate(ctx context.Context, ownerID uint) (*Wishlist, error) {
	w, err := s.repo.Load(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wishlist: %w", err)
	}
	if w == nil {
		return NewWishlist(ownerID), nil
	}
	return w, nil
}
