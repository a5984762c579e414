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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestCustomer(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO customers (id, email, password_hash, full_name, phone) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (email) DO NOTHING",
		customerID, email, testPasswordHash, "Ada Obi", "+2348012345678")
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM customers WHERE email = $1", email).Scan(&customerID)
		require.NoError(t, err)
	}

	return customerID
}

func FindServiceID(t *testing.T, db DBLike, slug string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM services WHERE slug = $1", slug).Scan(&id)
	require.NoError(t, err)
	return id
}

func FindRegionWithSuburb(t *testing.T, db DBLike) (uuid.UUID, uuid.UUID) {
	t.Helper()

	var regionID, suburbID uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT s.region_id, s.id FROM suburbs s ORDER BY s.name LIMIT 1").Scan(&regionID, &suburbID)
	require.NoError(t, err)
	return regionID, suburbID
}

func FindServiceExtraID(t *testing.T, db DBLike, serviceID uuid.UUID) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT id FROM service_extras WHERE service_id = $1 ORDER BY name LIMIT 1", serviceID).Scan(&id)
	require.NoError(t, err)
	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates everything except the seeded catalog tables, so tests
// reuse one database without bleeding bookings into each other.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'services', 'service_extras', 'regions', 'suburbs', 'cleaners')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, name)
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
	return nil
}
