package repos_test

import (
	"testing"

	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"hanmart/internal/domain"
	"hanmart/internal/repos"
)

func TestOpenDB_SeedsCatalogAndCoupons(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	state := repos.NewStateRepo(db)

	var products []domain.Product
	ok, err := state.Get(repos.KeyProducts, &products)
	if err != nil || !ok {
		t.Fatalf("products not seeded: ok=%v err=%v", ok, err)
	}
	if len(products) != 3 || products[0].ID != "p1" || products[0].Price != 10000 {
		t.Fatalf("bad seed: %+v", products)
	}

	var coupons []domain.Coupon
	ok, err = state.Get(repos.KeyCoupons, &coupons)
	if err != nil || !ok {
		t.Fatalf("coupons not seeded: ok=%v err=%v", ok, err)
	}
	if len(coupons) != 2 || coupons[0].Code != "AMOUNT5000" {
		t.Fatalf("bad seed: %+v", coupons)
	}
}

func TestStateRepo_RoundTripAndDelete(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	state := repos.NewStateRepo(db)

	in := []domain.CartItem{{
		Product:  domain.Product{ID: "p1", Name: "상품1", Price: 10000, Stock: 20},
		Quantity: 2,
	}}
	if err := state.Set(repos.KeyCart, in); err != nil {
		t.Fatal(err)
	}

	var out []domain.CartItem
	ok, err := state.Get(repos.KeyCart, &out)
	if err != nil || !ok {
		t.Fatalf("get failed: ok=%v err=%v", ok, err)
	}
	if len(out) != 1 || out[0].Product.ID != "p1" || out[0].Quantity != 2 {
		t.Fatalf("round trip mismatch: %+v", out)
	}

	if err := state.Delete(repos.KeyCart); err != nil {
		t.Fatal(err)
	}
	ok, err = state.Get(repos.KeyCart, &out)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("deleted key should be gone")
	}
}

func TestCartStore_SelectedCoupon(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	store := repos.NewCartStore(repos.NewStateRepo(db))

	sel, err := store.Selected()
	if err != nil || sel != nil {
		t.Fatalf("fresh store should have no selection: %+v %v", sel, err)
	}

	c := &domain.Coupon{Name: "10% 할인", Code: "PERCENT10", DiscountType: domain.DiscountPercentage, DiscountValue: 10}
	if err := store.SaveSelected(c); err != nil {
		t.Fatal(err)
	}
	sel, err = store.Selected()
	if err != nil || sel == nil || sel.Code != "PERCENT10" {
		t.Fatalf("bad selection after save: %+v %v", sel, err)
	}

	if err := store.SaveSelected(nil); err != nil {
		t.Fatal(err)
	}
	sel, err = store.Selected()
	if err != nil || sel != nil {
		t.Fatalf("selection should be cleared: %+v %v", sel, err)
	}
}
