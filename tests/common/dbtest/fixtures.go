//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Catalog seeded by SeedReferenceData. A retailer pricing SeedProductID with no
// codes gets metal 63000, diamond 25000, making 5000, discount 500, tax 2775, total 95275.
const (
	SeedProductID        int64 = 1
	SeedVariantID        int64 = 1
	SeedNoRateProductID  int64 = 2
	SeedStockedProductID int64 = 3
	SeedDiscountCode           = "FESTIVE10"
)

// DBLike is satisfied by both the pool and an open transaction, so
// fixtures can run inside a test's own tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db DBLike, email, role string, customerType *string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, role, customer_type) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, email, role, customerType)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func AddCartItem(t *testing.T, db DBLike, customerID uuid.UUID, productID int64, variantID *int64, quantity int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO cart_items (customer_id, product_id, variant_id, quantity) VALUES ($1, $2, $3, $4) RETURNING id",
		customerID, productID, variantID, quantity).Scan(&id)
	require.NoError(t, err)
	return id
}

func SetStock(t *testing.T, db DBLike, productID int64, quantity int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE products SET track_stock = TRUE, stock_quantity = $2 WHERE id = $1", productID, quantity)
	require.NoError(t, err)
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	var n int
	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

// inserts the order statuses and a small priced catalog needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	statements := []string{
		`INSERT INTO order_statuses (code, name, sort_order, is_default) VALUES
		    ('pending_payment', 'Pending Payment', 10, TRUE),
		    ('pending',         'Pending',         20, FALSE),
		    ('in_production',   'In Production',   30, FALSE),
		    ('quality_check',   'Quality Check',   40, FALSE),
		    ('ready_to_ship',   'Ready to Ship',   50, FALSE),
		    ('shipped',         'Shipped',         60, FALSE),
		    ('delivered',       'Delivered',       70, FALSE),
		    ('cancelled',       'Cancelled',       80, FALSE),
		    ('refunded',        'Refunded',        90, FALSE)
		ON CONFLICT (code) DO NOTHING`,
		`INSERT INTO tax_groups (id, name) VALUES (1, 'GST Jewelry') ON CONFLICT DO NOTHING`,
		`INSERT INTO tax_rates (tax_group_id, name, rate, is_active) VALUES
		    (1, 'CGST', 1.5, TRUE),
		    (1, 'SGST', 1.5, TRUE),
		    (1, 'Legacy cess', 2.0, FALSE)`,
		`INSERT INTO products (id, name, sku, tax_group_id, metals, diamonds) VALUES
		    (1, 'Solitaire Ring', 'RING-001', 1,
		     '[{"metal":"gold","purity":"22K","tone":"yellow","weight_grams":"10"}]',
		     '[{"type":"natural","shape":"round","color":"G","clarity":"VS1","carat":"0.5"}]'),
		    (2, 'Platinum Band', 'BAND-PT-001', 1,
		     '[{"metal":"platinum","purity":"950","weight_grams":"8"}]', '[]'),
		    (3, 'Gold Stud', 'STUD-001', 1,
		     '[{"metal":"gold","purity":"22K","tone":"yellow","weight_grams":"2"}]', '[]')
		ON CONFLICT DO NOTHING`,
		`INSERT INTO product_variants (id, product_id, sku) VALUES (1, 1, 'RING-001-S7') ON CONFLICT DO NOTHING`,
		`INSERT INTO metal_rates (metal, purity, tone, currency, rate_per_gram) VALUES
		    ('gold', '22K', 'yellow', 'INR', 6300)
		ON CONFLICT DO NOTHING`,
		`INSERT INTO diamond_rates (type, shape, color, clarity, rate_per_carat) VALUES
		    ('natural', 'round', 'G', 'VS1', 50000)
		ON CONFLICT DO NOTHING`,
		`INSERT INTO making_charges (product_id, charge_types, amount, percentage) VALUES
		    (1, '{fixed}', 5000, NULL),
		    (2, '{fixed}', 3000, NULL),
		    (3, '{percentage}', NULL, 10)
		ON CONFLICT DO NOTHING`,
		`INSERT INTO discount_rules (name, code, kind, value, customer_types, product_ids) VALUES
		    ('Retail making offer', NULL, 'fixed', 500, '{retailer}', '{}'),
		    ('Festive making offer', 'FESTIVE10', 'percentage', 40, '{retailer,wholesaler}', '{1}')`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	// explicit ids above do not advance the sequences
	_, err := pool.Exec(ctx, `
		SELECT setval('products_id_seq', (SELECT max(id) FROM products)),
		       setval('product_variants_id_seq', (SELECT max(id) FROM product_variants)),
		       setval('tax_groups_id_seq', (SELECT max(id) FROM tax_groups))`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
