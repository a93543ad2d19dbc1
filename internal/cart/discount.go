package cart

import "hanmart/internal/domain"

const (
	// A single line of this size or more unlocks the cart-wide bulk bonus.
	bulkPurchaseQty = 10
	bulkBonusRate   = 0.05
	// Hard ceiling on any combined rate; guards against misconfigured tiers.
	maxDiscountRate = 0.5
)

// EffectiveDiscountRate resolves the discount for one line: the qualifying
// tier with the highest threshold sets the base rate, a cart-wide bulk bonus
// adds a flat 5 points, and the combined rate is capped at 50%.
func EffectiveDiscountRate(p domain.Product, quantity int, bulkBonus bool) float64 {
	rate := baseTierRate(p.Discounts, quantity)
	if bulkBonus {
		rate += bulkBonusRate
	}
	if rate > maxDiscountRate {
		rate = maxDiscountRate
	}
	return rate
}

// ItemDiscountRate is EffectiveDiscountRate for a line sitting in a cart,
// deriving the bulk-bonus signal from the cart itself.
func ItemDiscountRate(item domain.CartItem, items []domain.CartItem) float64 {
	return EffectiveDiscountRate(item.Product, item.Quantity, HasBulkPurchase(items))
}

// HasBulkPurchase reports whether any line in the cart reaches the bulk
// threshold. The bonus then applies to every line, not just the big one.
func HasBulkPurchase(items []domain.CartItem) bool {
	for _, it := range items {
		if it.Quantity >= bulkPurchaseQty {
			return true
		}
	}
	return false
}

// baseTierRate scans all tiers (they are not guaranteed sorted) and picks the
// one with the largest threshold not exceeding quantity.
func baseTierRate(tiers []domain.DiscountTier, quantity int) float64 {
	best := -1
	rate := 0.0
	for _, t := range tiers {
		if t.Quantity <= quantity && t.Quantity > best {
			best = t.Quantity
			rate = t.Rate
		}
	}
	return rate
}
