package services

import "hanmart/internal/domain"

type AvailabilityService struct {
	Catalog *CatalogService
	Cart    *CartService
}

func NewAvailabilityService(catalog *CatalogService, cartSvc *CartService) *AvailabilityService {
	return &AvailabilityService{Catalog: catalog, Cart: cartSvc}
}

// Check converts remaining stock into IN_STOCK / LOW_STOCK / SOLD_OUT.
// Remaining counts what is already committed to the cart, so a product can be
// sold out for display while catalog stock is still positive.
func (s *AvailabilityService) Check(productID string) (domain.Availability, bool, error) {
	p, ok, err := s.Catalog.Get(productID)
	if err != nil || !ok {
		return domain.Availability{}, ok, err
	}
	remaining, err := s.Cart.RemainingStock(p)
	if err != nil {
		return domain.Availability{}, true, err
	}

	status := "SOLD_OUT"
	switch {
	case remaining > 5:
		status = "IN_STOCK"
	case remaining > 0:
		status = "LOW_STOCK"
	}
	if remaining < 0 {
		remaining = 0
	}
	return domain.Availability{Status: status, Qty: remaining}, true, nil
}
