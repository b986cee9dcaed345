// internal/infrastructure/database/postgres/wishlist_repository.go
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/colorsense/colorsense-backend/internal/domain/wishlist"
	"gorm.io/gorm"
)

// wishlistRecord is the storage shape of a wishlist aggregate, mirroring
// cartRecord: one row per owner, items as JSONB, versioned saves.
type wishlistRecord struct {
	OwnerID        uint   `gorm:"primaryKey"`
	Items          []byte `gorm:"type:jsonb;not null"`
	TotalItemCount int    `gorm:"not null;default:0"`
	Version        int64  `gorm:"not null;default:1"`
	CreatedAt      time.Time
	LastModifiedAt time.Time
}

// TableName overrides the table name
func (wishlistRecord) TableName() string {
	return "wishlists"
}

// WishlistRepository persists wishlist aggregates in PostgreSQL
type WishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository creates a new wishlist repository
func NewWishlistRepository(db *gorm.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// Load returns the owner's wishlist, or nil if none has been saved yet
func (r *WishlistRepository) Load(ctx context.Context, ownerID uint) (*wishlist.Wishlist, error) {
	var rec wishlistRecord
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wishlist record: %w", err)
	}

	var items []wishlist.Item
	if err := json.Unmarshal(rec.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to decode wishlist items: %w", err)
	}

	return &wishlist.Wishlist{
		OwnerID:        rec.OwnerID,
		Items:          items,
		TotalItemCount: rec.TotalItemCount,
		Version:        rec.Version,
		CreatedAt:      rec.CreatedAt,
		LastModifiedAt: rec.LastModifiedAt,
	}, nil
}

// Save persists the aggregate with the same compare-and-swap scheme as the
// cart repository
func (r *WishlistRepository) Save(ctx context.Context, w *wishlist.Wishlist) error {
	items, err := json.Marshal(w.Items)
	if err != nil {
		return fmt.Errorf("failed to encode wishlist items: %w", err)
	}

	if w.Version == 0 {
		rec := wishlistRecord{
			OwnerID:        w.OwnerID,
			Items:          items,
			TotalItemCount: w.TotalItemCount,
			Version:        1,
			CreatedAt:      w.CreatedAt,
			LastModifiedAt: w.LastModifiedAt,
		}
		err := r.db.WithContext(ctx).Create(&rec).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return wishlist.ErrConflict
		}
		if err != nil {
			return fmt.Errorf("failed to create wishlist record: %w", err)
		}
		w.Version = 1
		return nil
	}

	result := r.db.WithContext(ctx).Model(&wishlistRecord{}).
		Where("owner_id = ? AND version = ?", w.OwnerID, w.Version).
		Updates(map[string]interface{}{
			"items":            items,
			"total_item_count": w.TotalItemCount,
			"version":          w.Version + 1,
			"last_modified_at": w.LastModifiedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update wishlist record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return wishlist.ErrConflict
	}

	w.Version++
	return nil
}
