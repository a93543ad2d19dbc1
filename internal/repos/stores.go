package repos

import "hanmart/internal/domain"

// Typed views over StateRepo. Each store owns one key and hands out decoded
// slices; order is insertion order, which is what the discount tiers and
// catalog listing rely on.

type ProductStore struct{ state *StateRepo }

func NewProductStore(state *StateRepo) *ProductStore { return &ProductStore{state: state} }

func (s *ProductStore) List() ([]domain.Product, error) {
	var out []domain.Product
	if _, err := s.state.Get(KeyProducts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ProductStore) Save(products []domain.Product) error {
	return s.state.Set(KeyProducts, products)
}

type CouponStore struct{ state *StateRepo }

func NewCouponStore(state *StateRepo) *CouponStore { return &CouponStore{state: state} }

func (s *CouponStore) List() ([]domain.Coupon, error) {
	var out []domain.Coupon
	if _, err := s.state.Get(KeyCoupons, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CouponStore) Save(coupons []domain.Coupon) error {
	return s.state.Set(KeyCoupons, coupons)
}

// CartStore persists the cart and the coupon selection so both survive a
// restart. The selection is weak: CouponService clears it when the underlying
// coupon is deleted.
type CartStore struct{ state *StateRepo }

func NewCartStore(state *StateRepo) *CartStore { return &CartStore{state: state} }

func (s *CartStore) Items() ([]domain.CartItem, error) {
	var out []domain.CartItem
	if _, err := s.state.Get(KeyCart, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CartStore) Save(items []domain.CartItem) error {
	return s.state.Set(KeyCart, items)
}

func (s *CartStore) Selected() (*domain.Coupon, error) {
	var c domain.Coupon
	ok, err := s.state.Get(KeySelectedCoupon, &c)
	if err != nil || !ok {
		return nil, err
	}
	return &c, nil
}

func (s *CartStore) SaveSelected(c *domain.Coupon) error {
	if c == nil {
		return s.state.Delete(KeySelectedCoupon)
	}
	return s.state.Set(KeySelectedCoupon, c)
}
