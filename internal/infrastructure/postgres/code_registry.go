package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Transporte-api/internal/domain"
	"github.com/jhoicas/Transporte-api/internal/domain/codegen"
	"github.com/jhoicas/Transporte-api/internal/domain/entity"
	"github.com/jhoicas/Transporte-api/internal/domain/repository"
)

var _ repository.CodeRegistry = (*CodeRegistry)(nil)

// CodeRegistry consulta los códigos asignados en la tabla de un tipo de entidad.
type CodeRegistry struct {
	q     Querier
	query string
}

// NewCodeRegistry construye el registro para la tabla de kind. Solo se aceptan tipos conocidos:
// el nombre de la tabla se interpola en el SQL y nunca proviene de la entrada del usuario.
func NewCodeRegistry(q Querier, kind entity.EntityType) (*CodeRegistry, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("tipo de entidad desconocido: %q", kind)
	}
	query := fmt.Sprintf(`
		WITH matches AS (
			SELECT substr(code, char_length($1::text) + 1) AS suffix
			FROM %s
			WHERE starts_with(code, $1::text)
		)
		SELECT suffix FROM matches
		WHERE suffix ~ '^[0-9]+$'
		  AND char_length(ltrim(suffix, '0')) <= %d
		ORDER BY char_length(ltrim(suffix, '0')) DESC, ltrim(suffix, '0') DESC
		LIMIT 1`, pgx.Identifier{string(kind)}.Sanitize(), codegen.MaxSuffixDigits)
	return &CodeRegistry{q: q, query: query}, nil
}

// FindMaxSuffix devuelve el mayor sufijo numérico para prefix.
// Se ordena por longitud sin ceros a la izquierda y luego lexicográficamente, sin castear en SQL.
// Los sufijos de más de codegen.MaxSuffixDigits dígitos significativos se ignoran, igual que en memoria.
func (r *CodeRegistry) FindMaxSuffix(ctx context.Context, prefix string) (int, bool, error) {
	var suffix string
	err := r.q.QueryRow(ctx, r.query, prefix).Scan(&suffix)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("%w: buscar sufijo de %s: %v", domain.ErrRegistryUnavailable, prefix, err)
	}
	n, ok := codegen.NumericSuffix(prefix+suffix, prefix)
	if !ok {
		return 0, false, nil
	}
	return n, true, nil
}
