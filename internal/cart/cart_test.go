package cart_test

import (
	"reflect"
	"testing"

	"hanmart/internal/cart"
	"hanmart/internal/domain"
)

func TestRemainingStock(t *testing.T) {
	p := product("p1", 10000, 7)
	if got := cart.RemainingStock(p, nil); got != 7 {
		t.Fatalf("empty cart: want 7, got %d", got)
	}
	items := []domain.CartItem{{Product: p, Quantity: 5}}
	if got := cart.RemainingStock(p, items); got != 2 {
		t.Fatalf("want 2, got %d", got)
	}
	other := product("p2", 5000, 3)
	if got := cart.RemainingStock(other, items); got != 3 {
		t.Fatalf("unrelated product: want 3, got %d", got)
	}
}

func TestAddItem_NewAndIncrement(t *testing.T) {
	p := product("p1", 10000, 2)

	items, res := cart.AddItem(nil, p)
	if !res.Success || res.Message != "장바구니에 담았습니다" {
		t.Fatalf("bad add result: %+v", res)
	}
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("bad cart after first add: %+v", items)
	}

	items, res = cart.AddItem(items, p)
	if !res.Success {
		t.Fatalf("second add should succeed: %+v", res)
	}
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("want single line qty 2, got %+v", items)
	}
}

func TestAddItem_StockGate(t *testing.T) {
	p := product("p1", 10000, 2)
	items := []domain.CartItem{{Product: p, Quantity: 2}}

	next, res := cart.AddItem(items, p)
	if res.Success {
		t.Fatal("add past stock must fail")
	}
	if res.Message != "재고가 부족합니다" || res.Severity != domain.SeverityError {
		t.Fatalf("bad failure result: %+v", res)
	}
	if !reflect.DeepEqual(next, items) {
		t.Fatalf("cart must be unchanged on failure: %+v", next)
	}

	// Sold-out product never enters the cart at all.
	gone := product("p2", 5000, 0)
	next, res = cart.AddItem(nil, gone)
	if res.Success || len(next) != 0 {
		t.Fatalf("sold-out add must fail with empty cart, got %+v %+v", next, res)
	}
}

func TestAddItem_DoesNotMutateInput(t *testing.T) {
	p := product("p1", 10000, 9)
	items := []domain.CartItem{{Product: p, Quantity: 3}}
	cart.AddItem(items, p)
	if items[0].Quantity != 3 {
		t.Fatalf("input cart mutated: %+v", items)
	}
}

func TestRemoveItem(t *testing.T) {
	p1 := product("p1", 10000, 5)
	p2 := product("p2", 5000, 5)
	items := []domain.CartItem{{Product: p1, Quantity: 1}, {Product: p2, Quantity: 2}}

	next := cart.RemoveItem(items, "p1")
	if len(next) != 1 || next[0].Product.ID != "p2" {
		t.Fatalf("bad cart after remove: %+v", next)
	}

	// Removing something that is not there is a quiet no-op.
	next = cart.RemoveItem(next, "nope")
	if len(next) != 1 {
		t.Fatalf("no-op remove changed the cart: %+v", next)
	}
}

func TestUpdateQuantity(t *testing.T) {
	p := product("p1", 10000, 10)
	catalog := []domain.Product{p}
	items := []domain.CartItem{{Product: p, Quantity: 2}}

	next, res := cart.UpdateQuantity(items, "p1", 7, catalog)
	if !res.Success || next[0].Quantity != 7 {
		t.Fatalf("bad update: %+v %+v", next, res)
	}

	// Exceeding stock fails and leaves the cart alone.
	next, res = cart.UpdateQuantity(items, "p1", 11, catalog)
	if res.Success {
		t.Fatal("update past stock must fail")
	}
	if res.Message != "재고는 10개까지만 있습니다." {
		t.Fatalf("bad message: %q", res.Message)
	}
	if !reflect.DeepEqual(next, items) {
		t.Fatalf("cart changed on failed update: %+v", next)
	}
}

func TestUpdateQuantity_ReadsRefreshedStock(t *testing.T) {
	// Item was added when stock was 10; admin has since cut stock to 3.
	snapshot := product("p1", 10000, 10)
	items := []domain.CartItem{{Product: snapshot, Quantity: 2}}
	catalog := []domain.Product{product("p1", 10000, 3)}

	_, res := cart.UpdateQuantity(items, "p1", 5, catalog)
	if res.Success {
		t.Fatal("update must honor current catalog stock, not the snapshot")
	}
	if res.Message != "재고는 3개까지만 있습니다." {
		t.Fatalf("bad message: %q", res.Message)
	}
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	p := product("p1", 10000, 10)
	catalog := []domain.Product{p}
	items := []domain.CartItem{{Product: p, Quantity: 2}}

	next, res := cart.UpdateQuantity(items, "p1", 0, catalog)
	if !res.Success || len(next) != 0 {
		t.Fatalf("qty 0 should remove the line: %+v %+v", next, res)
	}

	// And the removed line no longer counts toward totals.
	totals := cart.CalculateCartTotal(next, nil)
	if totals.TotalBeforeDiscount != 0 || totals.TotalAfterDiscount != 0 {
		t.Fatalf("want zero totals, got %+v", totals)
	}
}

func TestUpdateQuantity_UnknownProductIsNoop(t *testing.T) {
	p := product("p1", 10000, 10)
	items := []domain.CartItem{{Product: p, Quantity: 2}}

	next, res := cart.UpdateQuantity(items, "ghost", 5, []domain.Product{p})
	if !res.Success {
		t.Fatalf("unknown id is tolerated, not an error: %+v", res)
	}
	if !reflect.DeepEqual(next, items) {
		t.Fatalf("cart changed for unknown id: %+v", next)
	}
}
