package webclient

import (
	"encoding/json"

	"github.com/google/uuid"
)

const cartKey = "cart"

// CartItem is one cart line. Lines are keyed by product name: adding a
// product that is already present bumps its quantity instead of inserting a
// duplicate row.
type CartItem struct {
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	ID          string  `json:"id"`
}

// Cart is the purely client-local cart. It is mutated only by local UI
// events and persisted through the storage port; it never reaches the server.
type Cart struct {
	storage Storage
	items   []CartItem
}

// NewCart loads any persisted cart from storage. A corrupt or missing entry
// starts an empty cart.
func NewCart(storage Storage) *Cart {
	c := &Cart{storage: storage}
	if raw, ok := storage.Get(cartKey); ok {
		_ = json.Unmarshal([]byte(raw), &c.items)
	}
	return c
}

// Add inserts a new line or increments the quantity of an existing one.
func (c *Cart) Add(productName string, unitPrice float64) {
	for i := range c.items {
		if c.items[i].ProductName == productName {
			c.items[i].Quantity++
			c.persist()
			return
		}
	}
	c.items = append(c.items, CartItem{
		ProductName: productName,
		UnitPrice:   unitPrice,
		Quantity:    1,
		ID:          uuid.NewString(),
	})
	c.persist()
}

// Remove deletes the line with the given id, if present.
func (c *Cart) Remove(id string) {
	kept := c.items[:0]
	for _, it := range c.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	c.items = kept
	c.persist()
}

// SetQuantity updates a line's quantity; zero or less removes the line.
func (c *Cart) SetQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.Remove(id)
		return
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			c.persist()
			return
		}
	}
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems sums the quantities across all lines.
func (c *Cart) TotalItems() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// TotalPrice sums unit price times quantity across all lines.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, it := range c.items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
	c.storage.Remove(cartKey)
}

func (c *Cart) persist() {
	b, err := json.Marshal(c.items)
	if err != nil {
		return
	}
	c.storage.Set(cartKey, string(b))
}
