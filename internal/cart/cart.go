// Package cart tracks item quantities for the vendor currently being
// browsed. A cart belongs to exactly one vendor; switching vendors means a
// fresh cart, never a merge.
package cart

// Cart maps menu item id to a positive quantity. Entries never hold zero or
// negative counts; decrementing to zero deletes the entry.
type Cart struct {
	vendorID string
	items    map[string]int
}

func New(vendorID string) *Cart {
	return &Cart{vendorID: vendorID, items: make(map[string]int)}
}

func (c *Cart) VendorID() string { return c.vendorID }

func (c *Cart) Increment(itemID string) {
	c.items[itemID]++
}

func (c *Cart) Decrement(itemID string) {
	if c.items[itemID] <= 1 {
		delete(c.items, itemID)
		return
	}
	c.items[itemID]--
}

func (c *Cart) Clear() {
	c.items = make(map[string]int)
}

// TotalCount is the badge figure; the checkout affordance is hidden when
// this is zero.
func (c *Cart) TotalCount() int {
	total := 0
	for _, qty := range c.items {
		total += qty
	}
	return total
}

func (c *Cart) Quantity(itemID string) int { return c.items[itemID] }

// Items returns a copy so callers cannot mutate the cart out of band.
func (c *Cart) Items() map[string]int {
	out := make(map[string]int, len(c.items))
	for id, qty := range c.items {
		out[id] = qty
	}
	return out
}
