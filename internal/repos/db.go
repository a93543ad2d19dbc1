package repos

import (
	"encoding/json"
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"hanmart/internal/domain"
)

// Fixed keys in the state table. The whole storefront state is a handful of
// JSON documents; products and coupons are seeded on first start.
const (
	KeyProducts       = "products"
	KeyCoupons        = "coupons"
	KeyCart           = "cart"
	KeySelectedCoupon = "selected_coupon"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the canonical catalog/coupon list if absent (idempotent).
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Key-value state: JSON document per fixed key
CREATE TABLE IF NOT EXISTS state(
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Admin sessions (value of the 'sid' cookie)
CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
`
	_, err := db.Exec(schema)
	return err
}

// initialProducts and initialCoupons are the demo storefront fixtures a fresh
// database starts with.
func initialProducts() []domain.Product {
	return []domain.Product{
		{
			ID: "p1", Name: "상품1", Price: 10000, Stock: 20,
			Discounts: []domain.DiscountTier{
				{Quantity: 10, Rate: 0.1},
				{Quantity: 20, Rate: 0.2},
			},
			Description:   "최고급 품질의 프리미엄 상품입니다.",
			IsRecommended: true,
		},
		{
			ID: "p2", Name: "상품2", Price: 20000, Stock: 20,
			Discounts: []domain.DiscountTier{
				{Quantity: 10, Rate: 0.15},
			},
			Description: "다양한 용도로 활용 가능한 상품입니다.",
		},
		{
			ID: "p3", Name: "상품3", Price: 30000, Stock: 20,
			Discounts: []domain.DiscountTier{
				{Quantity: 10, Rate: 0.2},
				{Quantity: 30, Rate: 0.25},
			},
			Description: "대용량 구매 시 할인 폭이 큰 상품입니다.",
		},
	}
}

func initialCoupons() []domain.Coupon {
	return []domain.Coupon{
		{Name: "5000원 할인", Code: "AMOUNT5000", DiscountType: domain.DiscountAmount, DiscountValue: 5000},
		{Name: "10% 할인", Code: "PERCENT10", DiscountType: domain.DiscountPercentage, DiscountValue: 10},
	}
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM state WHERE key IN (?, ?)`, KeyProducts, KeyCoupons); err != nil {
		return err
	}
	if n >= 2 {
		return nil
	}

	log.Println("[seed] inserting demo products/coupons")

	seed := func(key string, v any) error {
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		_, err = db.Exec(`
			INSERT INTO state(key, value) VALUES(?, ?)
			ON CONFLICT(key) DO NOTHING
		`, key, string(b))
		return err
	}

	if err := seed(KeyProducts, initialProducts()); err != nil {
		return err
	}
	return seed(KeyCoupons, initialCoupons())
}
