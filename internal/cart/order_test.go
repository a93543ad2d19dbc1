package cart_test

import (
	"testing"
	"time"

	"hanmart/internal/cart"
)

func TestNewOrderNumber(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	if got := cart.NewOrderNumber(at); got != "ORD-1700000000000" {
		t.Fatalf("bad order number: %q", got)
	}
	// Distinct timestamps give distinct numbers.
	if cart.NewOrderNumber(at) == cart.NewOrderNumber(at.Add(time.Millisecond)) {
		t.Fatal("order numbers should differ across milliseconds")
	}
}
