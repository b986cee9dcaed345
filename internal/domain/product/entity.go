// internal/domain/product/entity.go
package product

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Product represents the product entity
type Product struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	SKU         string         `gorm:"uniqueIndex;not null;size:100" json:"sku"`
	Name        string         `gorm:"not null;size:255" json:"name"`
	Slug        string         `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Description string         `gorm:"type:text" json:"description"`
	Price       int64          `gorm:"not null" json:"price"` // Price in cents
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`
	Sizes       string         `gorm:"size:500" json:"sizes"`  // Comma-separated allowed sizes
	Colors      string         `gorm:"size:500" json:"colors"` // Comma-separated allowed colors
	ImageURL    string         `gorm:"size:500" json:"image_url"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	IsFeatured  bool           `gorm:"default:false" json:"is_featured"`
	TrackStock  bool           `gorm:"default:true" json:"track_stock"`
	Stock       int            `gorm:"default:0" json:"stock"`
	Tags        string         `gorm:"size:500" json:"tags"` // Comma-separated tags
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category"`
}

// Category represents product categories
type Category struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null;size:255" json:"name"`
	Slug        string         `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Description string         `gorm:"size:500" json:"description"`
	ParentID    *uint          `gorm:"index" json:"parent_id"`
	SortOrder   int            `gorm:"default:0" json:"sort_order"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Parent   *Category `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Children []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Products []Product  `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

// TableName overrides
func (Product) TableName() string  { return "products" }
func (Category) TableName() string { return "categories" }

// SizeList returns the allowed sizes as a slice
func (p *Product) SizeList() []string {
	return splitCSV(p.Sizes)
}

// ColorList returns the allowed colors as a slice
func (p *Product) ColorList() []string {
	return splitCSV(p.Colors)
}

// Snapshot captures the catalog state of a product at a point in time.
// The shopping aggregates validate variant selections and stock against a
// snapshot taken at the call boundary, never against live rows mid-mutation.
type Snapshot struct {
	ProductID  uint     `json:"product_id"`
	Name       string   `json:"name"`
	Price      int64    `json:"price"`
	Sizes      []string `json:"sizes"`
	Colors     []string `json:"colors"`
	Stock      int      `json:"stock"`
	TrackStock bool     `json:"track_stock"`
	IsActive   bool     `json:"is_active"`
}

// Snapshot builds a point-in-time snapshot of the product
func (p *Product) Snapshot() Snapshot {
	return Snapshot{
		ProductID:  p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Sizes:      p.SizeList(),
		Colors:     p.ColorList(),
		Stock:      p.Stock,
		TrackStock: p.TrackStock,
		IsActive:   p.IsActive,
	}
}

// RequiresSize reports whether the product declares allowed sizes
func (s *Snapshot) RequiresSize() bool {
	return len(s.Sizes) > 0
}

// RequiresColor reports whether the product declares allowed colors
func (s *Snapshot) RequiresColor() bool {
	return len(s.Colors) > 0
}

// AllowsSize reports whether the given size is one of the declared sizes
func (s *Snapshot) AllowsSize(size string) bool {
	return containsFold(s.Sizes, size)
}

// AllowsColor reports whether the given color is one of the declared colors
func (s *Snapshot) AllowsColor(color string) bool {
	return containsFold(s.Colors, color)
}

func splitCSV(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
