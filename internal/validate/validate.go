package validate

import (
	"regexp"
	"strings"
)

var (
	reCouponCode = regexp.MustCompile(`^[A-Z0-9]{4,12}$`)
	reID         = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reQ          = regexp.MustCompile(`^[\pL\pN ._'\-]{1,50}$`)
)

const maxStock = 9999

// CouponCode checks the 4-12 character uppercase alphanumeric format.
func CouponCode(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reCouponCode.MatchString(s)
}

// Price must be a positive whole currency amount.
func Price(n int) bool { return n > 0 }

// Stock allows 0 but caps at 9999 to catch fat-fingered entry.
func Stock(n int) bool { return n >= 0 && n <= maxStock }

// Rate is a discount fraction within [0, 1].
func Rate(r float64) bool { return r >= 0 && r <= 1 }

// DiscountValue bounds a coupon's value by its type.
func DiscountValue(discountType string, v int) bool {
	switch discountType {
	case "percentage":
		return v >= 0 && v <= 100
	case "amount":
		return v >= 0 && v <= 100000
	}
	return false
}

// ID validates a simple resource identifier (product ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Q validates a search query: trims, enforces allowed characters and length.
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, reQ.MatchString(s)
}
