package types

import "testing"

func TestCartItemMatches(t *testing.T) {
	item := CartItem{ProductID: "p1", SelectedSize: "M", SelectedColor: "Black"}

	t.Run("same identity", func(t *testing.T) {
		if !item.Matches("p1", "M", "Black") {
			t.Fatal("expected identity match")
		}
	})

	t.Run("different size", func(t *testing.T) {
		if item.Matches("p1", "L", "Black") {
			t.Fatal("size is part of the identity")
		}
	})

	t.Run("different color", func(t *testing.T) {
		if item.Matches("p1", "M", "White") {
			t.Fatal("color is part of the identity")
		}
	})

	t.Run("different product", func(t *testing.T) {
		if item.Matches("p2", "M", "Black") {
			t.Fatal("product is part of the identity")
		}
	})
}

func TestCartItemSubtotal(t *testing.T) {
	item := CartItem{Quantity: 3, Product: Product{Price: 29.99}}
	want := 89.97
	if got := item.Subtotal(); got < want-1e-9 || got > want+1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestProductOnSale(t *testing.T) {
	t.Run("discounted", func(t *testing.T) {
		p := Product{Price: 50, CompareAtPrice: 80}
		if !p.OnSale() {
			t.Fatal("expected on sale")
		}
	})

	t.Run("no compare-at price", func(t *testing.T) {
		p := Product{Price: 50}
		if p.OnSale() {
			t.Fatal("expected not on sale")
		}
	})
}
