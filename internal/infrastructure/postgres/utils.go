package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Transporte-api/internal/domain"
)

// Querier abstrae pool y tx para que los repositorios funcionen con ambos.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505)
// y devuelve el nombre del constraint.
func isUniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// mapInsertError traduce errores de INSERT: violación del constraint UNIQUE del código →
// ErrCodeConflict (el generador reintenta); otra violación única → ErrDuplicate.
func mapInsertError(err error, table string, op string) error {
	if constraint, ok := isUniqueViolation(err); ok {
		if constraint == codeConstraint(table) {
			return fmt.Errorf("%s: %w", op, domain.ErrCodeConflict)
		}
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// codeConstraint nombre del constraint UNIQUE(code) de la tabla (ver migrations).
func codeConstraint(table string) string {
	return table + "_code_key"
}
