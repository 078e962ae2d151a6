package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Transporte-api/internal/domain/entity"
	"github.com/jhoicas/Transporte-api/pkg/config"
)

// seedCustomerCodes abre una transacción con una tabla temporal customers que oculta la real.
// Todo se descarta con el rollback al terminar el test.
func seedCustomerCodes(t *testing.T, codes ...string) pgx.Tx {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL no definido")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: url, MaxConns: 2})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })

	_, err = tx.Exec(ctx, `CREATE TEMP TABLE customers (code TEXT NOT NULL, CONSTRAINT customers_code_key UNIQUE (code)) ON COMMIT DROP`)
	require.NoError(t, err)
	for _, c := range codes {
		_, err = tx.Exec(ctx, `INSERT INTO customers (code) VALUES ($1)`, c)
		require.NoError(t, err)
	}
	return tx
}

func TestCodeRegistry_DB_FindMaxSuffix(t *testing.T) {
	tx := seedCustomerCodes(t,
		"ABC010", "ABC9", "ABCXYZ", "ABC", "ABC01X", "AB999", "XABC500",
		"TES99999999999999999999", "TES001",
		"ZER000", "LEN0000000000000000000000042",
	)
	reg, err := NewCodeRegistry(tx, entity.EntityCustomer)
	require.NoError(t, err)

	cases := []struct {
		prefix string
		want   int
		found  bool
	}{
		{"ABC", 10, true},
		{"TES", 1, true},
		{"ZER", 0, true},
		{"LEN", 42, true},
		{"XYZ", 0, false},
		{"AB", 999, true},
	}
	for _, tc := range cases {
		max, found, err := reg.FindMaxSuffix(context.Background(), tc.prefix)
		require.NoError(t, err, tc.prefix)
		assert.Equal(t, tc.found, found, tc.prefix)
		assert.Equal(t, tc.want, max, tc.prefix)
	}
}

func TestCodeRegistry_DB_PrefijoConComodines(t *testing.T) {
	tx := seedCustomerCodes(t, "A_B001", "AXB007")
	reg, err := NewCodeRegistry(tx, entity.EntityCustomer)
	require.NoError(t, err)

	max, found, err := reg.FindMaxSuffix(context.Background(), "A_B")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, max, "el prefijo no se interpreta como patrón LIKE")
}
