package handlers

import (
	"github.com/jmoiron/sqlx"

	"hanmart/internal/config"
	"hanmart/internal/repos"
	"hanmart/internal/services"
)

type Deps struct {
	ProductHandler      *ProductHandler
	CouponHandler       *CouponHandler
	CartHandler         *CartHandler
	OrderHandler        *OrderHandler
	AvailabilityHandler *AvailabilityHandler
	AuthHandler         *AuthHandler
	Auth                *services.AuthService
}

func NewDeps(db *sqlx.DB, cfg config.Config) (*Deps, error) {
	state := repos.NewStateRepo(db)
	prodStore := repos.NewProductStore(state)
	couponStore := repos.NewCouponStore(state)
	cartStore := repos.NewCartStore(state)
	sessions := repos.NewSessionRepo(db)

	catalogSvc := services.NewCatalogService(prodStore)
	couponSvc := services.NewCouponService(couponStore, cartStore)
	cartSvc := services.NewCartService(cartStore, catalogSvc, couponSvc)
	checkoutSvc := services.NewCheckoutService(cartStore)
	availSvc := services.NewAvailabilityService(catalogSvc, cartSvc)
	authSvc, err := services.NewAuthService(sessions, cfg.AdminPassword)
	if err != nil {
		return nil, err
	}

	return &Deps{
		ProductHandler:      &ProductHandler{Catalog: catalogSvc},
		CouponHandler:       &CouponHandler{Coupons: couponSvc},
		CartHandler:         &CartHandler{Cart: cartSvc},
		OrderHandler:        &OrderHandler{Checkout: checkoutSvc},
		AvailabilityHandler: &AvailabilityHandler{Avail: availSvc},
		AuthHandler:         &AuthHandler{Auth: authSvc},
		Auth:                authSvc,
	}, nil
}
