package services

import (
	"hanmart/internal/cart"
	"hanmart/internal/domain"
	"hanmart/internal/repos"
)

// CartService loads the persisted cart, runs the pure engine functions on it
// and persists whatever comes back. Business failures pass through as the
// engine's Result; only storage trouble surfaces as an error.
type CartService struct {
	Cart    *repos.CartStore
	Catalog *CatalogService
	Coupons *CouponService
}

func NewCartService(cartStore *repos.CartStore, catalog *CatalogService, coupons *CouponService) *CartService {
	return &CartService{Cart: cartStore, Catalog: catalog, Coupons: coupons}
}

// View is everything the cart page needs in one call.
type CartView struct {
	Items          []domain.CartItem `json:"items"`
	SelectedCoupon *domain.Coupon    `json:"selectedCoupon,omitempty"`
	Totals         domain.CartTotals `json:"totals"`
}

func (s *CartService) View() (CartView, error) {
	items, err := s.Cart.Items()
	if err != nil {
		return CartView{}, err
	}
	selected, err := s.Cart.Selected()
	if err != nil {
		return CartView{}, err
	}
	return CartView{
		Items:          items,
		SelectedCoupon: selected,
		Totals:         cart.CalculateCartTotal(items, selected),
	}, nil
}

func (s *CartService) Add(productID string) (domain.Result, error) {
	p, ok, err := s.Catalog.Get(productID)
	if err != nil {
		return domain.Result{}, err
	}
	if !ok {
		return domain.Fail("오류가 발생했습니다"), nil
	}
	items, err := s.Cart.Items()
	if err != nil {
		return domain.Result{}, err
	}
	next, res := cart.AddItem(items, p)
	if res.Success {
		if err := s.Cart.Save(next); err != nil {
			return domain.Result{}, err
		}
	}
	return res, nil
}

func (s *CartService) Remove(productID string) error {
	items, err := s.Cart.Items()
	if err != nil {
		return err
	}
	return s.Cart.Save(cart.RemoveItem(items, productID))
}

func (s *CartService) UpdateQuantity(productID string, quantity int) (domain.Result, error) {
	items, err := s.Cart.Items()
	if err != nil {
		return domain.Result{}, err
	}
	catalog, err := s.Catalog.List()
	if err != nil {
		return domain.Result{}, err
	}
	next, res := cart.UpdateQuantity(items, productID, quantity, catalog)
	if res.Success {
		if err := s.Cart.Save(next); err != nil {
			return domain.Result{}, err
		}
	}
	return res, nil
}

func (s *CartService) ApplyCoupon(code string) (domain.Result, error) {
	c, ok, err := s.Coupons.Get(code)
	if err != nil {
		return domain.Result{}, err
	}
	if !ok {
		return domain.Fail("쿠폰 적용 실패"), nil
	}
	items, err := s.Cart.Items()
	if err != nil {
		return domain.Result{}, err
	}
	selected, err := s.Cart.Selected()
	if err != nil {
		return domain.Result{}, err
	}
	next, res := cart.ApplyCoupon(c, items, selected)
	if res.Success {
		if err := s.Cart.SaveSelected(next); err != nil {
			return domain.Result{}, err
		}
	}
	return res, nil
}

func (s *CartService) ClearCoupon() error {
	next, _ := cart.ClearCoupon()
	return s.Cart.SaveSelected(next)
}

// RemainingStock exposes the engine's stock calculation for availability
// display.
func (s *CartService) RemainingStock(p domain.Product) (int, error) {
	items, err := s.Cart.Items()
	if err != nil {
		return 0, err
	}
	return cart.RemainingStock(p, items), nil
}
