package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recomputedTotals independently folds over the items so the assertions do
// not trust the aggregate's own bookkeeping
func recomputedTotals(c *Cart) (int, int64) {
	count := 0
	var amount int64
	for _, item := range c.Items {
		count += item.Quantity
		amount += item.UnitPrice * int64(item.Quantity)
	}
	return count, amount
}

func assertTotalsConsistent(t *testing.T, c *Cart) {
	t.Helper()
	count, amount := recomputedTotals(c)
	assert.Equal(t, count, c.TotalItemCount)
	assert.Equal(t, amount, c.TotalAmount)
}

func TestNewCartIsEmpty(t *testing.T) {
	c := NewCart(42)

	assert.Equal(t, uint(42), c.OwnerID)
	assert.Empty(t, c.Items)
	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.TotalItemCount)
	assert.Zero(t, c.TotalAmount)
}

func TestAddItemAppendsNewLine(t *testing.T) {
	c := NewCart(1)

	item := c.AddItem(10, 2, "M", "Red", 500)

	require.Len(t, c.Items, 1)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, uint(10), item.ProductID)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, "M", item.Size)
	assert.Equal(t, "Red", item.Color)
	assert.Equal(t, int64(500), item.UnitPrice)
	assert.False(t, item.AddedAt.IsZero())

	assert.Equal(t, 2, c.TotalItemCount)
	assert.Equal(t, int64(1000), c.TotalAmount)
	assertTotalsConsistent(t, c)
}

func TestAddItemMergesMatchingSelection(t *testing.T) {
	c := NewCart(1)

	first := c.AddItem(10, 2, "M", "Red", 500)
	second := c.AddItem(10, 3, "M", "Red", 500)

	require.Len(t, c.Items, 1, "same selection must merge, not duplicate")
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.Equal(t, 5, c.TotalItemCount)
	assert.Equal(t, int64(2500), c.TotalAmount)
	assertTotalsConsistent(t, c)
}

func TestAddItemDistinguishesVariants(t *testing.T) {
	c := NewCart(1)

	c.AddItem(10, 1, "M", "Red", 500)
	c.AddItem(10, 1, "L", "Red", 500)
	c.AddItem(10, 1, "M", "Blue", 500)
	c.AddItem(10, 1, "", "", 500)

	assert.Len(t, c.Items, 4, "differing size or color means a distinct line item")
	assertTotalsConsistent(t, c)
}

func TestFindMatchesEmptyVariantOnlyWithEmpty(t *testing.T) {
	c := NewCart(1)
	c.AddItem(10, 1, "", "", 500)

	assert.NotNil(t, c.Find(10, "", ""))
	assert.Nil(t, c.Find(10, "M", ""))
	assert.Nil(t, c.Find(10, "", "Red"))
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	c := NewCart(1)

	c.AddItem(10, 1, "", "", 100)
	c.AddItem(20, 1, "", "", 200)
	c.AddItem(30, 1, "", "", 300)
	c.AddItem(20, 2, "", "", 200) // merge must not reorder

	require.Len(t, c.Items, 3)
	assert.Equal(t, uint(10), c.Items[0].ProductID)
	assert.Equal(t, uint(20), c.Items[1].ProductID)
	assert.Equal(t, uint(30), c.Items[2].ProductID)
}

func TestUpdateItemQuantitySetsQuantity(t *testing.T) {
	c := NewCart(1)
	item := c.AddItem(10, 2, "M", "Red", 500)

	err := c.UpdateItemQuantity(item.ID, 7)

	require.NoError(t, err)
	assert.Equal(t, 7, c.Items[0].Quantity)
	assert.Equal(t, 7, c.TotalItemCount)
	assert.Equal(t, int64(3500), c.TotalAmount)
	assertTotalsConsistent(t, c)
}

func TestUpdateItemQuantityZeroOrNegativeRemoves(t *testing.T) {
	for _, quantity := range []int{0, -5} {
		c := NewCart(1)
		item := c.AddItem(10, 2, "M", "Red", 500)

		err := c.UpdateItemQuantity(item.ID, quantity)

		require.NoError(t, err)
		assert.Empty(t, c.Items)
		assert.Zero(t, c.TotalItemCount)
		assert.Zero(t, c.TotalAmount)
	}
}

func TestUpdateItemQuantityUnknownID(t *testing.T) {
	c := NewCart(1)
	c.AddItem(10, 2, "M", "Red", 500)

	err := c.UpdateItemQuantity("no-such-item", 3)

	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Equal(t, 2, c.TotalItemCount)
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	c := NewCart(1)
	item := c.AddItem(10, 2, "M", "Red", 500)
	c.AddItem(20, 1, "", "", 300)

	assert.True(t, c.RemoveItem(item.ID))
	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.TotalItemCount)

	// Second remove is a no-op, not an error
	assert.False(t, c.RemoveItem(item.ID))
	assert.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.TotalItemCount)
	assertTotalsConsistent(t, c)
}

func TestClearEmptiesCart(t *testing.T) {
	c := NewCart(1)
	c.AddItem(10, 2, "M", "Red", 500)
	c.AddItem(20, 1, "", "", 300)

	c.Clear()

	assert.Empty(t, c.Items)
	assert.Zero(t, c.TotalItemCount)
	assert.Zero(t, c.TotalAmount)
}

func TestTotalsConsistentAcrossMutationSequence(t *testing.T) {
	c := NewCart(1)

	first := c.AddItem(10, 2, "M", "Red", 500)
	assertTotalsConsistent(t, c)

	c.AddItem(20, 1, "", "", 1250)
	assertTotalsConsistent(t, c)

	c.AddItem(10, 3, "M", "Red", 500)
	assertTotalsConsistent(t, c)

	require.NoError(t, c.UpdateItemQuantity(first.ID, 1))
	assertTotalsConsistent(t, c)

	c.RemoveItem(first.ID)
	assertTotalsConsistent(t, c)

	c.Clear()
	assertTotalsConsistent(t, c)
}

func TestMutationsTouchLastModifiedAt(t *testing.T) {
	c := NewCart(1)
	before := c.LastModifiedAt

	c.AddItem(10, 1, "", "", 100)

	assert.False(t, c.LastModifiedAt.Before(before))
}
