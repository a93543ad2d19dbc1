package cart

import (
	"strconv"
	"time"
)

// NewOrderNumber derives an order token from the clock. Orders are ephemeral
// (no history is kept), so millisecond resolution is unique enough; the
// caller is expected to clear the cart and coupon selection afterwards.
func NewOrderNumber(now time.Time) string {
	return "ORD-" + strconv.FormatInt(now.UnixMilli(), 10)
}
