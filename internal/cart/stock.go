// Package cart is the pricing engine: pure functions over immutable cart
// snapshots. Nothing here touches storage or HTTP; callers pass value copies
// in and persist whatever comes back.
package cart

import "hanmart/internal/domain"

// RemainingStock is catalog stock minus whatever the cart already holds of
// this product. Zero or below means the product cannot be added.
func RemainingStock(p domain.Product, items []domain.CartItem) int {
	return p.Stock - QuantityOf(p.ID, items)
}

// QuantityOf returns the quantity of productID in the cart, 0 if absent.
func QuantityOf(productID string, items []domain.CartItem) int {
	for _, it := range items {
		if it.Product.ID == productID {
			return it.Quantity
		}
	}
	return 0
}
