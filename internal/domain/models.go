package domain

// DiscountTier is a step discount on a product: buying at least Quantity
// units earns Rate off the unit price. Tiers are kept in insertion order and
// need not be sorted by threshold.
type DiscountTier struct {
	Quantity int     `json:"quantity"`
	Rate     float64 `json:"rate"`
}

type Product struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Price         int            `json:"price"` // KRW, no minor unit
	Stock         int            `json:"stock"`
	Discounts     []DiscountTier `json:"discounts"`
	Description   string         `json:"description,omitempty"`
	IsRecommended bool           `json:"isRecommended,omitempty"`
}

// CartItem holds a snapshot of the product as it was when added. The pricing
// engine never re-reads the catalog for lines already in the cart; only a
// quantity update consults current catalog stock.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

const (
	DiscountAmount     = "amount"
	DiscountPercentage = "percentage"
)

type Coupon struct {
	Name          string `json:"name"`
	Code          string `json:"code"`         // uppercase alphanumeric, 4-12 chars
	DiscountType  string `json:"discountType"` // amount | percentage
	DiscountValue int    `json:"discountValue"`
}

type CartTotals struct {
	TotalBeforeDiscount int `json:"totalBeforeDiscount"`
	TotalAfterDiscount  int `json:"totalAfterDiscount"`
}

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Result is what every mutating cart/coupon operation returns instead of an
// error: expected business failures (out of stock, coupon rejected) are data,
// not exceptions. Message is user-facing, ready for the notification sink.
type Result struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message,omitempty"`
	Severity Severity `json:"severity,omitempty"`
}

func OK(msg string) Result {
	return Result{Success: true, Message: msg, Severity: SeveritySuccess}
}

func Fail(msg string) Result {
	return Result{Success: false, Message: msg, Severity: SeverityError}
}

type Availability struct {
	Status string `json:"status"` // IN_STOCK | LOW_STOCK | SOLD_OUT
	Qty    int    `json:"qty"`
}
