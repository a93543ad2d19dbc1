package cart

import "hanmart/internal/domain"

// ApplyCoupon validates c against the current cart and returns the next
// selection plus a result. On rejection the previous selection is returned
// unchanged.
func ApplyCoupon(c domain.Coupon, items []domain.CartItem, selected *domain.Coupon) (*domain.Coupon, domain.Result) {
	if c.DiscountType == domain.DiscountPercentage && percentageCouponBlocked(items) {
		return selected, domain.Fail("percentage 쿠폰은 최대 할인 상품에는 적용할 수 없습니다.")
	}
	next := c
	return &next, domain.OK("쿠폰이 적용되었습니다.")
}

// ClearCoupon drops the selection. Always succeeds.
func ClearCoupon() (*domain.Coupon, domain.Result) {
	return nil, domain.Result{Success: true}
}

// percentageCouponBlocked holds the stacking rule in one place: a percentage
// coupon may not land on a cart whose item-level discounts already take half
// the pre-discount total off. Isolated so the rule can be swapped without
// touching the total calculator.
func percentageCouponBlocked(items []domain.CartItem) bool {
	t := CalculateCartTotal(items, nil)
	if t.TotalBeforeDiscount == 0 {
		return false
	}
	discounted := float64(t.TotalBeforeDiscount-t.TotalAfterDiscount) / float64(t.TotalBeforeDiscount)
	return discounted >= maxDiscountRate
}
