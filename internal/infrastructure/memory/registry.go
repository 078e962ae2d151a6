// Package memory implementa registros de códigos y repositorios en memoria.
// Se usa con STORE_DRIVER=memory (desarrollo local sin PostgreSQL) y en tests.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/Transporte-api/internal/domain"
	"github.com/jhoicas/Transporte-api/internal/domain/codegen"
	"github.com/jhoicas/Transporte-api/internal/domain/repository"
)

var _ repository.CodeRegistry = (*CodeIndex)(nil)

// CodeIndex conjunto de códigos asignados a un tipo de entidad con unicidad garantizada.
// Es el equivalente al constraint UNIQUE de la columna code.
type CodeIndex struct {
	mu    sync.RWMutex
	codes map[string]struct{}
}

// NewCodeIndex construye un índice vacío.
func NewCodeIndex() *CodeIndex {
	return &CodeIndex{codes: make(map[string]struct{})}
}

// FindMaxSuffix recorre los códigos con el prefijo y sufijo numérico y devuelve el mayor.
func (x *CodeIndex) FindMaxSuffix(ctx context.Context, prefix string) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, fmt.Errorf("%w: %v", domain.ErrRegistryUnavailable, err)
	}
	x.mu.RLock()
	defer x.mu.RUnlock()
	max, found := 0, false
	for code := range x.codes {
		if !strings.HasPrefix(code, prefix) {
			continue
		}
		n, ok := codegen.NumericSuffix(code, prefix)
		if !ok {
			continue
		}
		if !found || n > max {
			max, found = n, true
		}
	}
	return max, found, nil
}

// claim registra code; falla con ErrCodeConflict si ya estaba.
// El llamador debe tener tomado el lock de su repositorio para que claim + insert sean atómicos.
func (x *CodeIndex) claim(code string) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if _, ok := x.codes[code]; ok {
		return fmt.Errorf("código %s: %w", code, domain.ErrCodeConflict)
	}
	x.codes[code] = struct{}{}
	return nil
}

// Add registra un código existente (semillas de datos y tests).
func (x *CodeIndex) Add(codes ...string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	for _, c := range codes {
		x.codes[c] = struct{}{}
	}
}

// Len cantidad de códigos registrados.
func (x *CodeIndex) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.codes)
}

// paginate aplica limit/offset sobre un slice ya ordenado.
func paginate[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return []T{}
	}
	end := offset + limit
	if limit <= 0 || end > len(list) {
		end = len(list)
	}
	return list[offset:end]
}
