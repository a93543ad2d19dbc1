package cart

import (
	"fmt"

	"hanmart/internal/domain"
)

// AddItem puts one unit of p into the cart. A product already in the cart has
// its quantity bumped by one; the snapshot taken at first add is kept. The
// input slice is never mutated.
func AddItem(items []domain.CartItem, p domain.Product) ([]domain.CartItem, domain.Result) {
	if RemainingStock(p, items) <= 0 {
		return items, domain.Fail("재고가 부족합니다")
	}
	next := make([]domain.CartItem, len(items))
	copy(next, items)
	for i, it := range next {
		if it.Product.ID == p.ID {
			q := it.Quantity + 1
			if q > it.Product.Stock {
				return items, domain.Fail(fmt.Sprintf("재고는 %d개까지만 있습니다.", it.Product.Stock))
			}
			next[i].Quantity = q
			return next, domain.OK("장바구니에 담았습니다")
		}
	}
	next = append(next, domain.CartItem{Product: p, Quantity: 1})
	return next, domain.OK("장바구니에 담았습니다")
}

// RemoveItem deletes the line for productID. Removing a line that is not
// there is a no-op, not an error.
func RemoveItem(items []domain.CartItem, productID string) []domain.CartItem {
	next := make([]domain.CartItem, 0, len(items))
	for _, it := range items {
		if it.Product.ID != productID {
			next = append(next, it)
		}
	}
	return next
}

// UpdateQuantity sets a line to quantity. Zero or less removes the line.
// Unlike AddItem this checks the product's CURRENT catalog stock, so a stock
// level lowered after the item was added is honored. An unknown product id
// (in catalog or cart) leaves the cart untouched.
func UpdateQuantity(items []domain.CartItem, productID string, quantity int, catalog []domain.Product) ([]domain.CartItem, domain.Result) {
	if quantity <= 0 {
		return RemoveItem(items, productID), domain.Result{Success: true}
	}
	var current *domain.Product
	for i := range catalog {
		if catalog[i].ID == productID {
			current = &catalog[i]
			break
		}
	}
	if current == nil {
		return items, domain.Result{Success: true}
	}
	if quantity > current.Stock {
		return items, domain.Fail(fmt.Sprintf("재고는 %d개까지만 있습니다.", current.Stock))
	}
	next := make([]domain.CartItem, len(items))
	copy(next, items)
	for i, it := range next {
		if it.Product.ID == productID {
			next[i].Quantity = quantity
			return next, domain.Result{Success: true}
		}
	}
	return items, domain.Result{Success: true}
}
