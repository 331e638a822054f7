package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_IncrementDecrement(t *testing.T) {
	c := New("1")
	assert.Equal(t, "1", c.VendorID())
	assert.Equal(t, 0, c.TotalCount())

	c.Increment("101")
	c.Increment("101")
	c.Increment("104")
	assert.Equal(t, 2, c.Quantity("101"))
	assert.Equal(t, 1, c.Quantity("104"))
	assert.Equal(t, 3, c.TotalCount())

	c.Decrement("101")
	assert.Equal(t, 1, c.Quantity("101"))
}

func TestCart_DecrementRemovesZeroEntries(t *testing.T) {
	c := New("1")
	c.Increment("101")
	c.Decrement("101")

	assert.Equal(t, 0, c.Quantity("101"))
	assert.NotContains(t, c.Items(), "101", "quantities never drop to a stored zero")

	// Decrementing an absent item is a no-op.
	c.Decrement("999")
	assert.Equal(t, 0, c.TotalCount())
}

func TestCart_Clear(t *testing.T) {
	c := New("1")
	c.Increment("101")
	c.Increment("104")

	c.Clear()
	assert.Equal(t, 0, c.TotalCount())
	assert.Empty(t, c.Items())
}

func TestCart_ItemsReturnsCopy(t *testing.T) {
	c := New("1")
	c.Increment("101")

	items := c.Items()
	items["101"] = 99
	assert.Equal(t, 1, c.Quantity("101"))
}
