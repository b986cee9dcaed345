package wishlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWishlistIsEmpty(t *testing.T) {
	w := NewWishlist(42)

	assert.Equal(t, uint(42), w.OwnerID)
	assert.Empty(t, w.Items)
	assert.Zero(t, w.TotalItemCount)
}

func TestAddItem(t *testing.T) {
	w := NewWishlist(1)

	item, err := w.AddItem(10)

	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, uint(10), item.ProductID)
	assert.False(t, item.AddedAt.IsZero())
	assert.Equal(t, 1, w.TotalItemCount)
}

func TestAddItemRejectsDuplicate(t *testing.T) {
	w := NewWishlist(1)

	_, err := w.AddItem(10)
	require.NoError(t, err)

	_, err = w.AddItem(10)

	assert.ErrorIs(t, err, ErrDuplicateItem)
	assert.Len(t, w.Items, 1, "failed add leaves the wishlist unchanged")
	assert.Equal(t, 1, w.TotalItemCount)
}

func TestHasProduct(t *testing.T) {
	w := NewWishlist(1)
	_, err := w.AddItem(10)
	require.NoError(t, err)

	assert.True(t, w.HasProduct(10))
	assert.False(t, w.HasProduct(20))
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	w := NewWishlist(1)
	item, err := w.AddItem(10)
	require.NoError(t, err)

	assert.True(t, w.RemoveItem(item.ID))
	assert.Empty(t, w.Items)
	assert.Zero(t, w.TotalItemCount)

	assert.False(t, w.RemoveItem(item.ID))
	assert.Empty(t, w.Items)
}

func TestRemoveByProductIsIdempotent(t *testing.T) {
	w := NewWishlist(1)
	_, err := w.AddItem(10)
	require.NoError(t, err)

	assert.True(t, w.RemoveByProduct(10))
	assert.Empty(t, w.Items)

	assert.False(t, w.RemoveByProduct(10))
	assert.Empty(t, w.Items)
}

func TestClearEmptiesWishlist(t *testing.T) {
	w := NewWishlist(1)
	for _, id := range []uint{10, 20, 30} {
		_, err := w.AddItem(id)
		require.NoError(t, err)
	}

	w.Clear()

	assert.Empty(t, w.Items)
	assert.Zero(t, w.TotalItemCount)
}

func TestTotalItemCountTracksLength(t *testing.T) {
	w := NewWishlist(1)

	for _, id := range []uint{10, 20, 30} {
		_, err := w.AddItem(id)
		require.NoError(t, err)
		assert.Equal(t, len(w.Items), w.TotalItemCount)
	}

	w.RemoveByProduct(20)
	assert.Equal(t, len(w.Items), w.TotalItemCount)
}
