package codes_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Transporte-api/internal/application/codes"
	"github.com/jhoicas/Transporte-api/internal/domain"
	"github.com/jhoicas/Transporte-api/internal/domain/entity"
	"github.com/jhoicas/Transporte-api/internal/infrastructure/memory"
)

// fakeRegistry registro en memoria controlable desde el test.
type fakeRegistry struct {
	mu    sync.Mutex
	codes map[string]bool
	err   error
	calls int
	// stale hace que las primeras N consultas ignoren los códigos ya guardados (simula una carrera).
	stale int
}

func newFakeRegistry(codes ...string) *fakeRegistry {
	r := &fakeRegistry{codes: map[string]bool{}}
	for _, c := range codes {
		r.codes[c] = true
	}
	return r
}

func (r *fakeRegistry) FindMaxSuffix(ctx context.Context, prefix string) (int, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return 0, false, r.err
	}
	if r.stale > 0 {
		r.stale--
		return 0, false, nil
	}
	idx := memory.NewCodeIndex()
	for c := range r.codes {
		idx.Add(c)
	}
	return idx.FindMaxSuffix(ctx, prefix)
}

// insert simula el INSERT con constraint UNIQUE sobre code.
func (r *fakeRegistry) insert(ctx context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.codes[code] {
		return fmt.Errorf("insert: %w", domain.ErrCodeConflict)
	}
	r.codes[code] = true
	return nil
}

// fixedRegistry devuelve siempre el mismo máximo.
type fixedRegistry struct{ max int }

func (r fixedRegistry) FindMaxSuffix(ctx context.Context, prefix string) (int, bool, error) {
	return r.max, true, nil
}

func newGenerator(reg *fakeRegistry, opts codes.Options) *codes.Generator {
	return codes.NewGenerator(reg, opts, zerolog.Nop())
}

func TestGenerate_RegistroVacio(t *testing.T) {
	g := newGenerator(newFakeRegistry(), codes.Options{FallbackPrefix: "CUS"})

	code, err := g.Generate(context.Background(), "Test Company")
	require.NoError(t, err)
	assert.Equal(t, "TES001", code)
}

func TestGenerate_NombreVacioUsaFallback(t *testing.T) {
	g := newGenerator(newFakeRegistry("CUS001"), codes.Options{FallbackPrefix: "CUS"})

	code, err := g.Generate(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, "CUS002", code)
}

func TestGenerate_IgnoraSufijosNoNumericos(t *testing.T) {
	g := newGenerator(newFakeRegistry("ABC001", "ABCXYZ", "ABC"), codes.Options{})

	code, err := g.Generate(context.Background(), "ABC")
	require.NoError(t, err)
	assert.Equal(t, "ABC002", code)
}

func TestGenerateWithOptions(t *testing.T) {
	g := newGenerator(newFakeRegistry(), codes.Options{})

	code, err := g.GenerateWithOptions(context.Background(), "Safe Express Cargo", codes.Options{MaxLength: 2, PadWidth: 5})
	require.NoError(t, err)
	assert.Equal(t, "SE00001", code)

	code, err = g.GenerateWithOptions(context.Background(), "", codes.Options{FallbackPrefix: "VEH"})
	require.NoError(t, err)
	assert.Equal(t, "VEH001", code)
}

func TestGenerate_SufijosFueraDeRango(t *testing.T) {
	cases := []struct {
		name     string
		existing []string
		want     string
	}{
		{"se ignora un sufijo gigante", []string{"TES99999999999999999999", "TES001"}, "TES002"},
		{"se ignora math.MaxInt", []string{"TES9223372036854775807"}, "TES001"},
		{"18 dígitos siguen contando", []string{"TES999999999999999998"}, "TES999999999999999999"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newGenerator(newFakeRegistry(tc.existing...), codes.Options{})
			code, err := g.Generate(context.Background(), "Test Company")
			require.NoError(t, err)
			assert.Equal(t, tc.want, code)
		})
	}
}

func TestGenerate_SecuenciaAgotada(t *testing.T) {
	g := codes.NewGenerator(fixedRegistry{max: math.MaxInt}, codes.Options{}, zerolog.Nop())

	_, err := g.Generate(context.Background(), "Test Company")
	assert.ErrorIs(t, err, domain.ErrCodeGenerationExhausted)

	inserts := 0
	_, err = g.Create(context.Background(), "Test Company", func(ctx context.Context, code string) error {
		inserts++
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrCodeGenerationExhausted)
	assert.Zero(t, inserts)
}

func TestGenerate_RegistroNoDisponible(t *testing.T) {
	reg := newFakeRegistry()
	reg.err = errors.New("connection refused")
	g := newGenerator(reg, codes.Options{})

	_, err := g.Generate(context.Background(), "Test Company")
	assert.ErrorIs(t, err, domain.ErrRegistryUnavailable)
}

func TestCreate_Secuencial(t *testing.T) {
	reg := newFakeRegistry()
	g := newGenerator(reg, codes.Options{})
	ctx := context.Background()

	first, err := g.Create(ctx, "Test Company", reg.insert)
	require.NoError(t, err)
	second, err := g.Create(ctx, "Test Company", reg.insert)
	require.NoError(t, err)
	third, err := g.Create(ctx, "Testing Ltd", reg.insert)
	require.NoError(t, err)

	assert.Equal(t, "TES001", first)
	assert.Equal(t, "TES002", second)
	assert.Equal(t, "TES003", third)
}

func TestCreate_ReintentaEnConflicto(t *testing.T) {
	// TES001 ya fue insertado por otra petición pero la primera lectura no lo ve.
	reg := newFakeRegistry("TES001")
	reg.stale = 1
	g := newGenerator(reg, codes.Options{})

	code, err := g.Create(context.Background(), "Test Company", reg.insert)
	require.NoError(t, err)
	assert.Equal(t, "TES002", code)
	assert.Equal(t, 2, reg.calls, "debe volver a consultar el registro tras el conflicto")
}

func TestCreate_AgotaIntentos(t *testing.T) {
	reg := newFakeRegistry()
	g := newGenerator(reg, codes.Options{MaxAttempts: 3})
	inserts := 0
	alwaysConflict := func(ctx context.Context, code string) error {
		inserts++
		return domain.ErrCodeConflict
	}

	_, err := g.Create(context.Background(), "Test Company", alwaysConflict)
	assert.ErrorIs(t, err, domain.ErrCodeGenerationExhausted)
	assert.Equal(t, 3, inserts)
}

func TestCreate_RegistroNoDisponibleNoInserta(t *testing.T) {
	reg := newFakeRegistry()
	reg.err = errors.New("timeout")
	g := newGenerator(reg, codes.Options{})
	called := false

	_, err := g.Create(context.Background(), "Test Company", func(ctx context.Context, code string) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrRegistryUnavailable)
	assert.False(t, called)
}

func TestCreate_OtroErrorNoReintenta(t *testing.T) {
	reg := newFakeRegistry()
	g := newGenerator(reg, codes.Options{})
	inserts := 0

	_, err := g.Create(context.Background(), "Test Company", func(ctx context.Context, code string) error {
		inserts++
		return domain.ErrDuplicate
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 1, inserts)
}

func TestCreate_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := newGenerator(newFakeRegistry(), codes.Options{})

	_, err := g.Create(ctx, "Test Company", func(ctx context.Context, code string) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCreate_ConcurrenteSinDuplicados(t *testing.T) {
	const workers = 8
	idx := memory.NewCodeIndex()
	repo := memory.NewCustomerRepository(idx)
	g := codes.NewGenerator(idx, codes.Options{MaxAttempts: workers + 1}, zerolog.Nop())

	var wg sync.WaitGroup
	results := make(chan string, workers)
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			code, err := g.Create(context.Background(), "Test Company", func(ctx context.Context, code string) error {
				return repo.Create(ctx, &entity.Customer{ID: fmt.Sprint(i), Code: code, TaxID: fmt.Sprint(i)})
			})
			if err != nil {
				errs <- err
				return
			}
			results <- code
		}(i)
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		t.Fatalf("creación concurrente falló: %v", err)
	}
	seen := map[string]bool{}
	for code := range results {
		assert.False(t, seen[code], "código duplicado %s", code)
		seen[code] = true
	}
	assert.Len(t, seen, workers)
	for i := 1; i <= workers; i++ {
		assert.True(t, seen[fmt.Sprintf("TES%03d", i)], "falta TES%03d", i)
	}
}
