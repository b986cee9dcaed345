package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeAndColorLists(t *testing.T) {
	p := Product{Sizes: "S, M ,L", Colors: ""}

	assert.Equal(t, []string{"S", "M", "L"}, p.SizeList())
	assert.Nil(t, p.ColorList())
}

func TestSnapshotCapturesCatalogState(t *testing.T) {
	p := Product{
		ID:         10,
		Name:       "Classic Crew Tee",
		Price:      1999,
		Sizes:      "S,M,L",
		Colors:     "Black,White",
		Stock:      12,
		TrackStock: true,
		IsActive:   true,
	}

	snap := p.Snapshot()

	assert.Equal(t, uint(10), snap.ProductID)
	assert.Equal(t, int64(1999), snap.Price)
	assert.Equal(t, []string{"S", "M", "L"}, snap.Sizes)
	assert.Equal(t, 12, snap.Stock)
	assert.True(t, snap.TrackStock)
	assert.True(t, snap.IsActive)
}

func TestSnapshotVariantRequirements(t *testing.T) {
	withVariants := Snapshot{Sizes: []string{"S", "M"}, Colors: []string{"Red"}}
	plain := Snapshot{}

	assert.True(t, withVariants.RequiresSize())
	assert.True(t, withVariants.RequiresColor())
	assert.False(t, plain.RequiresSize())
	assert.False(t, plain.RequiresColor())
}

func TestSnapshotAllowsVariantCaseInsensitive(t *testing.T) {
	snap := Snapshot{Sizes: []string{"S", "M"}, Colors: []string{"Red", "Blue"}}

	assert.True(t, snap.AllowsSize("m"))
	assert.True(t, snap.AllowsColor("RED"))
	assert.False(t, snap.AllowsSize("XL"))
	assert.False(t, snap.AllowsColor("Green"))
}

func TestBuildOrderClauseWhitelistsFields(t *testing.T) {
	assert.Equal(t, "price asc", buildOrderClause("price", "asc"))
	assert.Equal(t, "created_at desc", buildOrderClause("created_at", "desc"))

	// Unknown fields and orders fall back to safe defaults
	assert.Equal(t, "created_at desc", buildOrderClause("sku; DROP TABLE products", "asc; --"))
}

func TestGenerateSlug(t *testing.T) {
	slug := generateSlug("Classic Crew Tee!")

	assert.Regexp(t, `^classic-crew-tee-\d+$`, slug)
}
