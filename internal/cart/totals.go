package cart

import (
	"math"

	"hanmart/internal/domain"
)

// ItemTotal is one line's price after its effective discount, rounded
// half-up to a whole currency unit.
func ItemTotal(item domain.CartItem, items []domain.CartItem) int {
	rate := ItemDiscountRate(item, items)
	return roundHalfUp(float64(item.Product.Price) * float64(item.Quantity) * (1 - rate))
}

// CalculateCartTotal recomputes totals from scratch: item-level discounts
// first, then the selected coupon (nil for none). The cart is small, so a
// full recompute on every call is cheaper than getting caching wrong.
// TotalAfterDiscount never exceeds TotalBeforeDiscount and never goes
// negative.
func CalculateCartTotal(items []domain.CartItem, selected *domain.Coupon) domain.CartTotals {
	before := 0
	after := 0
	for _, it := range items {
		before += it.Product.Price * it.Quantity
		after += ItemTotal(it, items)
	}
	if selected != nil {
		switch selected.DiscountType {
		case domain.DiscountAmount:
			after -= selected.DiscountValue
		case domain.DiscountPercentage:
			after = roundHalfUp(float64(after) * (1 - float64(selected.DiscountValue)/100))
		}
	}
	if after < 0 {
		after = 0
	}
	return domain.CartTotals{TotalBeforeDiscount: before, TotalAfterDiscount: after}
}

func roundHalfUp(v float64) int {
	return int(math.Round(v))
}
