// internal/infrastructure/database/postgres/cart_repository.go
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/colorsense/colorsense-backend/internal/domain/cart"
	"gorm.io/gorm"
)

// cartRecord is the storage shape of a cart aggregate: one row per owner,
// line items serialized as JSONB, version column for compare-and-swap saves.
type cartRecord struct {
	OwnerID        uint   `gorm:"primaryKey"`
	Items          []byte `gorm:"type:jsonb;not null"`
	TotalItemCount int    `gorm:"not null;default:0"`
	TotalAmount    int64  `gorm:"not null;default:0"`
	Version        int64  `gorm:"not null;default:1"`
	CreatedAt      time.Time
	LastModifiedAt time.Time
}

// TableName overrides the table name
func (cartRecord) TableName() string {
	return "carts"
}

// CartRepository persists cart aggregates in PostgreSQL
type CartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// Load returns the owner's cart, or nil if none has been saved yet
func (r *CartRepository) Load(ctx context.Context, ownerID uint) (*cart.Cart, error) {
	var rec cartRecord
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart record: %w", err)
	}

	var items []cart.LineItem
	if err := json.Unmarshal(rec.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart items: %w", err)
	}

	return &cart.Cart{
		OwnerID:        rec.OwnerID,
		Items:          items,
		TotalItemCount: rec.TotalItemCount,
		TotalAmount:    rec.TotalAmount,
		Version:        rec.Version,
		CreatedAt:      rec.CreatedAt,
		LastModifiedAt: rec.LastModifiedAt,
	}, nil
}

// Save persists the aggregate. A version of zero inserts a fresh row; any
// other version is compare-and-swapped against the stored one. Stale saves
// fail with cart.ErrConflict and never overwrite newer state.
func (r *CartRepository) Save(ctx context.Context, c *cart.Cart) error {
	items, err := json.Marshal(c.Items)
	if err != nil {
		return fmt.Errorf("failed to encode cart items: %w", err)
	}

	if c.Version == 0 {
		rec := cartRecord{
			OwnerID:        c.OwnerID,
			Items:          items,
			TotalItemCount: c.TotalItemCount,
			TotalAmount:    c.TotalAmount,
			Version:        1,
			CreatedAt:      c.CreatedAt,
			LastModifiedAt: c.LastModifiedAt,
		}
		err := r.db.WithContext(ctx).Create(&rec).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Another request created the aggregate first
			return cart.ErrConflict
		}
		if err != nil {
			return fmt.Errorf("failed to create cart record: %w", err)
		}
		c.Version = 1
		return nil
	}

	result := r.db.WithContext(ctx).Model(&cartRecord{}).
		Where("owner_id = ? AND version = ?", c.OwnerID, c.Version).
		Updates(map[string]interface{}{
			"items":            items,
			"total_item_count": c.TotalItemCount,
			"total_amount":     c.TotalAmount,
			"version":          c.Version + 1,
			"last_modified_at": c.LastModifiedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update cart record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return cart.ErrConflict
	}

	c.Version++
	return nil
}
