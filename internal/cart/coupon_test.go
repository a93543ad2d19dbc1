package cart_test

import (
	"testing"

	"hanmart/internal/cart"
	"hanmart/internal/domain"
)

func TestApplyCoupon_ReplacesSelection(t *testing.T) {
	p := product("p1", 10000, 20)
	items := []domain.CartItem{{Product: p, Quantity: 2}}
	old := &domain.Coupon{Name: "old", Code: "AMOUNT5000", DiscountType: domain.DiscountAmount, DiscountValue: 5000}
	next := domain.Coupon{Name: "new", Code: "AMOUNT1000", DiscountType: domain.DiscountAmount, DiscountValue: 1000}

	got, res := cart.ApplyCoupon(next, items, old)
	if !res.Success || res.Message != "쿠폰이 적용되었습니다." {
		t.Fatalf("bad result: %+v", res)
	}
	if got == nil || got.Code != "AMOUNT1000" {
		t.Fatalf("selection not replaced: %+v", got)
	}
}

func TestApplyCoupon_PercentageBlockedOnMaxDiscountedCart(t *testing.T) {
	// Item already carries the capped 50% rate, so a percentage coupon may
	// not stack on top. The previous selection stays.
	p := product("p1", 10000, 50, domain.DiscountTier{Quantity: 1, Rate: 0.8})
	items := []domain.CartItem{{Product: p, Quantity: 2}}
	prev := &domain.Coupon{Name: "prev", Code: "AMOUNT5000", DiscountType: domain.DiscountAmount, DiscountValue: 5000}
	pct := domain.Coupon{Name: "10%", Code: "PERCENT10", DiscountType: domain.DiscountPercentage, DiscountValue: 10}

	got, res := cart.ApplyCoupon(pct, items, prev)
	if res.Success {
		t.Fatal("percentage coupon must be rejected on a half-discounted cart")
	}
	if res.Message != "percentage 쿠폰은 최대 할인 상품에는 적용할 수 없습니다." {
		t.Fatalf("bad message: %q", res.Message)
	}
	if got != prev {
		t.Fatalf("selection must stay unchanged, got %+v", got)
	}
}

func TestApplyCoupon_PercentageAllowedBelowCap(t *testing.T) {
	p := product("p1", 10000, 50, domain.DiscountTier{Quantity: 10, Rate: 0.1})
	items := []domain.CartItem{{Product: p, Quantity: 10}}
	pct := domain.Coupon{Name: "10%", Code: "PERCENT10", DiscountType: domain.DiscountPercentage, DiscountValue: 10}

	got, res := cart.ApplyCoupon(pct, items, nil)
	if !res.Success || got == nil || got.Code != "PERCENT10" {
		t.Fatalf("percentage coupon should apply: %+v %+v", got, res)
	}
}

func TestApplyCoupon_AmountNeverBlocked(t *testing.T) {
	p := product("p1", 10000, 50, domain.DiscountTier{Quantity: 1, Rate: 0.8})
	items := []domain.CartItem{{Product: p, Quantity: 2}}
	amt := domain.Coupon{Name: "5000", Code: "AMOUNT5000", DiscountType: domain.DiscountAmount, DiscountValue: 5000}

	got, res := cart.ApplyCoupon(amt, items, nil)
	if !res.Success || got == nil {
		t.Fatalf("amount coupon should always apply: %+v", res)
	}
}

func TestApplyCoupon_EmptyCartTakesPercentage(t *testing.T) {
	pct := domain.Coupon{Name: "10%", Code: "PERCENT10", DiscountType: domain.DiscountPercentage, DiscountValue: 10}
	got, res := cart.ApplyCoupon(pct, nil, nil)
	if !res.Success || got == nil {
		t.Fatalf("empty cart carries no item discount, coupon should apply: %+v", res)
	}
}

func TestClearCoupon(t *testing.T) {
	got, res := cart.ClearCoupon()
	if got != nil || !res.Success {
		t.Fatalf("clear must always succeed with nil selection: %+v %+v", got, res)
	}
}
