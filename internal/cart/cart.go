package cart

import (
	"sync"

	"bazaar-kart/internal/model"

	"github.com/shopspring/decimal"
)

// Cart holds the product selections of a single session in insertion order.
// Every operation is a total function over the current state: unknown ids are
// no-ops and quantities are clamped to a floor of 1. A mutex guards the items
// because HTTP handlers for the same session may run concurrently.
type Cart struct {
	mu    sync.Mutex
	items []model.CartItem
	index map[int64]int // product id -> position in items
}

func newCart() *Cart {
	return &Cart{
		index: make(map[int64]int),
	}
}

// Add inserts the item, or increments the stored quantity when the product id
// is already present. Quantities below 1 count as 1.
func (c *Cart) Add(item model.CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if item.Quantity < 1 {
		item.Quantity = 1
	}

	if pos, ok := c.index[item.ProductID]; ok {
		c.items[pos].Quantity += item.Quantity
		return
	}

	c.index[item.ProductID] = len(c.items)
	c.items = append(c.items, item)
}

// UpdateQty sets the stored quantity for the product, clamping values below 1
// to 1. Unknown product ids are ignored.
func (c *Cart) UpdateQty(productID int64, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[productID]
	if !ok {
		return
	}
	if qty < 1 {
		qty = 1
	}
	c.items[pos].Quantity = qty
}

// Remove deletes the entry for the product id. Unknown ids are ignored.
func (c *Cart) Remove(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[productID]
	if !ok {
		return
	}

	c.items = append(c.items[:pos], c.items[pos+1:]...)
	delete(c.index, productID)
	for i := pos; i < len(c.items); i++ {
		c.index[c.items[i].ProductID] = i
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.index = make(map[int64]int)
}

// Items returns a copy of the cart contents in insertion order.
func (c *Cart) Items() []model.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]model.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Subtotal is the sum of price*quantity over all items. Items whose price is
// absent or not a valid decimal contribute 0.
func (c *Cart) Subtotal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	subtotal := decimal.Zero
	for _, item := range c.items {
		if total, ok := item.LineTotal(); ok {
			subtotal = subtotal.Add(total)
		}
	}
	return subtotal
}
