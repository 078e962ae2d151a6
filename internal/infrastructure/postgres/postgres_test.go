package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Transporte-api/internal/domain"
	"github.com/jhoicas/Transporte-api/internal/domain/entity"
)

// fakeRow devuelve un valor fijo o un error en Scan.
type fakeRow struct {
	value string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*string)) = r.value
	return nil
}

// fakeQuerier solo implementa QueryRow; registra la última consulta.
type fakeQuerier struct {
	row      fakeRow
	lastSQL  string
	lastArgs []any
}

func (q *fakeQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("no implementado")
}

func (q *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("no implementado")
}

func (q *fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	q.lastSQL, q.lastArgs = sql, args
	return q.row
}

func TestNewCodeRegistry_SoloTablasConocidas(t *testing.T) {
	_, err := NewCodeRegistry(&fakeQuerier{}, entity.EntityType("customers; DROP TABLE x"))
	assert.Error(t, err)

	reg, err := NewCodeRegistry(&fakeQuerier{}, entity.EntityVehicle)
	require.NoError(t, err)
	assert.Contains(t, reg.query, `FROM "vehicles"`)
}

func TestCodeRegistry_FindMaxSuffix(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{value: "0042"}}
	reg, err := NewCodeRegistry(q, entity.EntityCustomer)
	require.NoError(t, err)

	max, found, err := reg.FindMaxSuffix(context.Background(), "TES")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 42, max)
	assert.Equal(t, []any{"TES"}, q.lastArgs, "el prefijo viaja como parámetro, no interpolado")
	assert.False(t, strings.Contains(q.lastSQL, "TES"))
}

func TestCodeRegistry_FiltraSufijosFueraDeRango(t *testing.T) {
	reg, err := NewCodeRegistry(&fakeQuerier{}, entity.EntityCustomer)
	require.NoError(t, err)
	assert.Contains(t, reg.query, "char_length(ltrim(suffix, '0')) <= 18")

	cases := []struct {
		suffix string
		want   int
		found  bool
	}{
		{"999999999999999999", 999999999999999999, true},
		{"0000000000000000000000042", 42, true},
		{"99999999999999999999", 0, false},
		{"9223372036854775807", 0, false},
	}
	for _, tc := range cases {
		reg, err := NewCodeRegistry(&fakeQuerier{row: fakeRow{value: tc.suffix}}, entity.EntityCustomer)
		require.NoError(t, err)

		max, found, err := reg.FindMaxSuffix(context.Background(), "TES")
		require.NoError(t, err, tc.suffix)
		assert.Equal(t, tc.found, found, tc.suffix)
		assert.Equal(t, tc.want, max, tc.suffix)
	}
}

func TestCodeRegistry_FindMaxSuffix_SinFilas(t *testing.T) {
	reg, err := NewCodeRegistry(&fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}, entity.EntityCustomer)
	require.NoError(t, err)

	_, found, err := reg.FindMaxSuffix(context.Background(), "TES")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCodeRegistry_FindMaxSuffix_ErrorDeConexion(t *testing.T) {
	reg, err := NewCodeRegistry(&fakeQuerier{row: fakeRow{err: errors.New("connection reset")}}, entity.EntityCustomer)
	require.NoError(t, err)

	_, _, err = reg.FindMaxSuffix(context.Background(), "TES")
	assert.ErrorIs(t, err, domain.ErrRegistryUnavailable)
}

func TestMapInsertError(t *testing.T) {
	codeErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "customers_code_key"}
	taxErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "customers_tax_id_key"}
	fkErr := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}

	assert.ErrorIs(t, mapInsertError(codeErr, "customers", "insert customer"), domain.ErrCodeConflict)
	assert.ErrorIs(t, mapInsertError(taxErr, "customers", "insert customer"), domain.ErrDuplicate)

	err := mapInsertError(fkErr, "customers", "insert customer")
	assert.NotErrorIs(t, err, domain.ErrCodeConflict)
	assert.NotErrorIs(t, err, domain.ErrDuplicate)
}

func TestToPgx5URL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@h:5432/db?sslmode=disable", toPgx5URL("postgres://u:p@h:5432/db?sslmode=disable"))
	assert.Equal(t, "pgx5://u@h/db", toPgx5URL("postgresql://u@h/db"))
	assert.Equal(t, "host=h user=u", toPgx5URL("host=h user=u"))
}
