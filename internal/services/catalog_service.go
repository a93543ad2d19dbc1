package services

import (
	"strconv"
	"strings"
	"time"

	"hanmart/internal/domain"
	"hanmart/internal/repos"
	"hanmart/internal/validate"
)

// CatalogService owns the product list: storefront reads plus the admin
// add/edit/delete operations. The pricing engine only ever reads from here.
type CatalogService struct {
	Prods *repos.ProductStore
}

func NewCatalogService(prods *repos.ProductStore) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) List() ([]domain.Product, error) {
	return s.Prods.List()
}

func (s *CatalogService) Get(id string) (domain.Product, bool, error) {
	products, err := s.Prods.List()
	if err != nil {
		return domain.Product{}, false, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, true, nil
		}
	}
	return domain.Product{}, false, nil
}

// Search filters by case-insensitive substring over name and description.
// Debouncing the query is the client's concern.
func (s *CatalogService) Search(q string) ([]domain.Product, error) {
	products, err := s.Prods.List()
	if err != nil {
		return nil, err
	}
	if q == "" {
		return products, nil
	}
	q = strings.ToLower(q)
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func validateProduct(p domain.Product) (domain.Result, bool) {
	if !validate.Price(p.Price) {
		return domain.Fail("가격은 0보다 커야 합니다"), false
	}
	if p.Stock < 0 {
		return domain.Fail("재고는 0보다 커야 합니다"), false
	}
	if !validate.Stock(p.Stock) {
		return domain.Fail("재고는 9999개를 초과할 수 없습니다"), false
	}
	for _, t := range p.Discounts {
		if !validate.Rate(t.Rate) {
			return domain.Fail("할인율은 100%를 초과할 수 없습니다"), false
		}
	}
	return domain.Result{}, true
}

// Add inserts a new product with a timestamp-derived id.
func (s *CatalogService) Add(p domain.Product) (domain.Result, error) {
	if res, ok := validateProduct(p); !ok {
		return res, nil
	}
	products, err := s.Prods.List()
	if err != nil {
		return domain.Result{}, err
	}
	p.ID = "p" + strconv.FormatInt(time.Now().UnixMilli(), 10)
	if err := s.Prods.Save(append(products, p)); err != nil {
		return domain.Result{}, err
	}
	return domain.OK("상품이 추가되었습니다."), nil
}

func (s *CatalogService) Update(id string, p domain.Product) (domain.Result, error) {
	if res, ok := validateProduct(p); !ok {
		return res, nil
	}
	products, err := s.Prods.List()
	if err != nil {
		return domain.Result{}, err
	}
	for i := range products {
		if products[i].ID == id {
			p.ID = id
			products[i] = p
			if err := s.Prods.Save(products); err != nil {
				return domain.Result{}, err
			}
			return domain.OK("상품이 수정되었습니다."), nil
		}
	}
	return domain.Fail("오류가 발생했습니다"), nil
}

func (s *CatalogService) Delete(id string) (domain.Result, error) {
	products, err := s.Prods.List()
	if err != nil {
		return domain.Result{}, err
	}
	next := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			next = append(next, p)
		}
	}
	if err := s.Prods.Save(next); err != nil {
		return domain.Result{}, err
	}
	return domain.OK("상품이 삭제되었습니다."), nil
}
