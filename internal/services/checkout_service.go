package services

import (
	"fmt"
	"time"

	"hanmart/internal/cart"
	"hanmart/internal/domain"
	"hanmart/internal/repos"
)

// CheckoutService freezes the cart into an order number and resets cart and
// coupon selection. No order entity is kept; the number goes back to the
// caller and that's the whole paper trail.
type CheckoutService struct {
	Cart *repos.CartStore
}

func NewCheckoutService(cartStore *repos.CartStore) *CheckoutService {
	return &CheckoutService{Cart: cartStore}
}

type Receipt struct {
	OrderNumber string            `json:"orderNumber"`
	Totals      domain.CartTotals `json:"totals"`
}

func (s *CheckoutService) Place() (Receipt, domain.Result, error) {
	items, err := s.Cart.Items()
	if err != nil {
		return Receipt{}, domain.Result{}, err
	}
	if len(items) == 0 {
		return Receipt{}, domain.Fail("장바구니가 비어있습니다"), nil
	}
	selected, err := s.Cart.Selected()
	if err != nil {
		return Receipt{}, domain.Result{}, err
	}

	receipt := Receipt{
		OrderNumber: cart.NewOrderNumber(time.Now()),
		Totals:      cart.CalculateCartTotal(items, selected),
	}

	if err := s.Cart.Save(nil); err != nil {
		return Receipt{}, domain.Result{}, err
	}
	if err := s.Cart.SaveSelected(nil); err != nil {
		return Receipt{}, domain.Result{}, err
	}

	msg := fmt.Sprintf("주문이 완료되었습니다. 주문번호: %s", receipt.OrderNumber)
	return receipt, domain.OK(msg), nil
}
