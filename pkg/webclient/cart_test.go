package webclient

import (
	"math"
	"testing"
)

func TestCartAddMergesByName(t *testing.T) {
	cart := NewCart(NewMemoryStorage())

	cart.Add("Green Tea", 4.50)
	cart.Add("Chamomile", 3.25)
	cart.Add("Green Tea", 4.50)

	items := cart.Items()
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	var green CartItem
	for _, it := range items {
		if it.ProductName == "Green Tea" {
			green = it
		}
	}
	if green.Quantity != 2 {
		t.Fatalf("Green Tea quantity = %d, want 2", green.Quantity)
	}
	if cart.TotalItems() != 3 {
		t.Fatalf("TotalItems = %d, want 3", cart.TotalItems())
	}
	want := 2*4.50 + 3.25
	if math.Abs(cart.TotalPrice()-want) > 1e-9 {
		t.Fatalf("TotalPrice = %v, want %v", cart.TotalPrice(), want)
	}
}

func TestCartSetQuantity(t *testing.T) {
	cart := NewCart(NewMemoryStorage())
	cart.Add("Green Tea", 4.50)
	id := cart.Items()[0].ID

	cart.SetQuantity(id, 5)
	if got := cart.Items()[0].Quantity; got != 5 {
		t.Fatalf("quantity = %d, want 5", got)
	}

	cart.SetQuantity(id, 0)
	if len(cart.Items()) != 0 {
		t.Fatalf("zero quantity should remove the line, got %v", cart.Items())
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	cart := NewCart(NewMemoryStorage())
	cart.Add("Green Tea", 4.50)
	cart.Add("Chamomile", 3.25)

	cart.Remove(cart.Items()[0].ID)
	if len(cart.Items()) != 1 {
		t.Fatalf("items after remove = %d, want 1", len(cart.Items()))
	}

	cart.Clear()
	if len(cart.Items()) != 0 || cart.TotalItems() != 0 {
		t.Fatalf("cart not empty after Clear: %v", cart.Items())
	}
}

func TestCartPersistsAcrossLoads(t *testing.T) {
	store := NewMemoryStorage()

	cart := NewCart(store)
	cart.Add("Green Tea", 4.50)
	cart.Add("Green Tea", 4.50)

	reloaded := NewCart(store)
	items := reloaded.Items()
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("reloaded cart = %v, want one line with quantity 2", items)
	}
}

func TestCartItemsReturnsCopy(t *testing.T) {
	cart := NewCart(NewMemoryStorage())
	cart.Add("Green Tea", 4.50)

	cart.Items()[0].Quantity = 99
	if got := cart.Items()[0].Quantity; got != 1 {
		t.Fatalf("internal quantity mutated through Items copy: %d", got)
	}
}
