package services

import (
	"hanmart/internal/domain"
	"hanmart/internal/repos"
	"hanmart/internal/validate"
)

// CouponService owns the coupon catalog. Deleting a coupon also reconciles
// the cart's weak selection reference so it never dangles.
type CouponService struct {
	Coupons *repos.CouponStore
	Cart    *repos.CartStore
}

func NewCouponService(coupons *repos.CouponStore, cart *repos.CartStore) *CouponService {
	return &CouponService{Coupons: coupons, Cart: cart}
}

func (s *CouponService) List() ([]domain.Coupon, error) {
	return s.Coupons.List()
}

func (s *CouponService) Get(code string) (domain.Coupon, bool, error) {
	coupons, err := s.Coupons.List()
	if err != nil {
		return domain.Coupon{}, false, err
	}
	for _, c := range coupons {
		if c.Code == code {
			return c, true, nil
		}
	}
	return domain.Coupon{}, false, nil
}

func (s *CouponService) Add(c domain.Coupon) (domain.Result, error) {
	code, ok := validate.CouponCode(c.Code)
	if !ok {
		return domain.Fail("쿠폰 코드는 4~12자 영문 대문자와 숫자만 사용할 수 있습니다."), nil
	}
	c.Code = code
	if !validate.DiscountValue(c.DiscountType, c.DiscountValue) {
		return domain.Fail("할인 값이 올바르지 않습니다."), nil
	}
	coupons, err := s.Coupons.List()
	if err != nil {
		return domain.Result{}, err
	}
	for _, existing := range coupons {
		if existing.Code == c.Code {
			return domain.Fail("이미 존재하는 쿠폰 코드입니다."), nil
		}
	}
	if err := s.Coupons.Save(append(coupons, c)); err != nil {
		return domain.Result{}, err
	}
	return domain.OK("쿠폰이 추가되었습니다."), nil
}

// Delete removes the coupon and, if it was the selected one, clears the
// selection.
func (s *CouponService) Delete(code string) (domain.Result, error) {
	coupons, err := s.Coupons.List()
	if err != nil {
		return domain.Result{}, err
	}
	next := make([]domain.Coupon, 0, len(coupons))
	for _, c := range coupons {
		if c.Code != code {
			next = append(next, c)
		}
	}
	if err := s.Coupons.Save(next); err != nil {
		return domain.Result{}, err
	}
	selected, err := s.Cart.Selected()
	if err != nil {
		return domain.Result{}, err
	}
	if selected != nil && selected.Code == code {
		if err := s.Cart.SaveSelected(nil); err != nil {
			return domain.Result{}, err
		}
	}
	return domain.OK("쿠폰이 삭제되었습니다."), nil
}
