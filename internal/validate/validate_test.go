package validate_test

import (
	"testing"

	"hanmart/internal/validate"
)

func TestCouponCode(t *testing.T) {
	good := []string{"SAVE", "AMOUNT5000", "PERCENT10", "ABCD1234EFGH"}
	for _, s := range good {
		if _, ok := validate.CouponCode(s); !ok {
			t.Fatalf("%q should be valid", s)
		}
	}
	bad := []string{"", "ABC", "abcd", "SAVE-10", "TOOLONGCOUPONCODE", "한글코드"}
	for _, s := range bad {
		if _, ok := validate.CouponCode(s); ok {
			t.Fatalf("%q should be rejected", s)
		}
	}
	// Surrounding whitespace is trimmed before the format check.
	if code, ok := validate.CouponCode("  SAVE10  "); !ok || code != "SAVE10" {
		t.Fatalf("trim failed: %q %v", code, ok)
	}
}

func TestPriceStockRate(t *testing.T) {
	if validate.Price(0) || validate.Price(-100) {
		t.Fatal("non-positive price must be rejected")
	}
	if !validate.Price(1) {
		t.Fatal("positive price must pass")
	}
	if !validate.Stock(0) || !validate.Stock(9999) {
		t.Fatal("stock bounds are inclusive")
	}
	if validate.Stock(-1) || validate.Stock(10000) {
		t.Fatal("stock outside 0..9999 must be rejected")
	}
	if !validate.Rate(0) || !validate.Rate(1) || validate.Rate(1.01) || validate.Rate(-0.1) {
		t.Fatal("rate must stay within [0,1]")
	}
}

func TestDiscountValue(t *testing.T) {
	if !validate.DiscountValue("percentage", 100) || validate.DiscountValue("percentage", 101) {
		t.Fatal("percentage capped at 100")
	}
	if !validate.DiscountValue("amount", 100000) || validate.DiscountValue("amount", 100001) {
		t.Fatal("amount capped at 100000")
	}
	if validate.DiscountValue("unknown", 10) {
		t.Fatal("unknown type must be rejected")
	}
}

func TestQ(t *testing.T) {
	if _, ok := validate.Q("상품1"); !ok {
		t.Fatal("hangul queries are allowed")
	}
	if _, ok := validate.Q("  "); ok {
		t.Fatal("blank query rejected")
	}
	if _, ok := validate.Q("<script>"); ok {
		t.Fatal("markup rejected")
	}
}
