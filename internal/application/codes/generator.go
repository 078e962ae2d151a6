// Package codes genera códigos únicos de entidad (prefijo + secuencia) contra un CodeRegistry.
//
// El sufijo sale de una lectura puntual del registro, así que dos creaciones simultáneas con el
// mismo prefijo pueden calcular el mismo código. La unicidad la garantiza la persistencia
// (constraint UNIQUE); Create reintenta resolución + armado cuando el INSERT choca.
package codes

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Transporte-api/internal/domain"
	"github.com/jhoicas/Transporte-api/internal/domain/codegen"
	"github.com/jhoicas/Transporte-api/internal/domain/repository"
)

// DefaultMaxAttempts intentos de INSERT antes de rendirse ante conflictos de código.
const DefaultMaxAttempts = 5

// Options parámetros de generación. Los campos en cero toman el valor por defecto.
type Options struct {
	MaxLength      int    // longitud máxima del prefijo (3)
	PadWidth       int    // ancho del sufijo numérico (3)
	FallbackPrefix string // prefijo cuando el nombre está vacío ("UNK")
	MaxAttempts    int    // intentos ante conflicto (5)
}

func (o Options) withDefaults() Options {
	if o.MaxLength < 1 {
		o.MaxLength = codegen.DefaultMaxLength
	}
	if o.PadWidth < 1 {
		o.PadWidth = codegen.DefaultPadWidth
	}
	if o.FallbackPrefix == "" {
		o.FallbackPrefix = codegen.DefaultFallbackPrefix
	}
	if o.MaxAttempts < 1 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	return o
}

// merge aplica sobre o los campos no vacíos de override.
func (o Options) merge(override Options) Options {
	if override.MaxLength > 0 {
		o.MaxLength = override.MaxLength
	}
	if override.PadWidth > 0 {
		o.PadWidth = override.PadWidth
	}
	if override.FallbackPrefix != "" {
		o.FallbackPrefix = override.FallbackPrefix
	}
	if override.MaxAttempts > 0 {
		o.MaxAttempts = override.MaxAttempts
	}
	return o
}

// InsertFunc persiste la entidad con el código dado en una sola operación atómica.
// Debe devolver un error que cumpla errors.Is(err, domain.ErrCodeConflict) si el código ya existe.
type InsertFunc func(ctx context.Context, code string) error

// Generator genera códigos para un tipo de entidad.
type Generator struct {
	registry repository.CodeRegistry
	opts     Options
	log      zerolog.Logger
}

// NewGenerator construye el generador sobre el registro del tipo de entidad.
func NewGenerator(registry repository.CodeRegistry, opts Options, log zerolog.Logger) *Generator {
	return &Generator{registry: registry, opts: opts.withDefaults(), log: log}
}

// Generate calcula el próximo código libre para name (Abbreviate → FindMaxSuffix → Assemble).
// No reserva nada: otro proceso puede tomar el mismo código antes de que se persista.
func (g *Generator) Generate(ctx context.Context, name string) (string, error) {
	return g.generate(ctx, name, g.opts)
}

// GenerateWithOptions igual que Generate con parámetros propios de la llamada.
func (g *Generator) GenerateWithOptions(ctx context.Context, name string, opts Options) (string, error) {
	return g.generate(ctx, name, g.opts.merge(opts))
}

func (g *Generator) generate(ctx context.Context, name string, opts Options) (string, error) {
	prefix := codegen.Abbreviate(name, opts.MaxLength, opts.FallbackPrefix)
	max, found, err := g.registry.FindMaxSuffix(ctx, prefix)
	if err != nil {
		if errors.Is(err, domain.ErrRegistryUnavailable) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", domain.ErrRegistryUnavailable, err)
	}
	n, err := codegen.NextNumber(max, found)
	if err != nil {
		return "", err
	}
	return codegen.Assemble(prefix, n, opts.PadWidth), nil
}

// Create genera un código y llama insert con él. Si insert reporta conflicto de código se vuelve
// a consultar el registro y se reintenta, hasta MaxAttempts. Cualquier otro error corta el ciclo.
func (g *Generator) Create(ctx context.Context, name string, insert InsertFunc) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= g.opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		code, err := g.Generate(ctx, name)
		if err != nil {
			return "", err
		}
		err = insert(ctx, code)
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, domain.ErrCodeConflict) {
			return "", err
		}
		lastErr = err
		g.log.Warn().
			Str("code", code).
			Int("attempt", attempt).
			Int("max_attempts", g.opts.MaxAttempts).
			Msg("conflicto de código, reintentando")
	}
	g.log.Error().
		Str("name", name).
		Int("attempts", g.opts.MaxAttempts).
		Msg("intentos de generación de código agotados")
	return "", fmt.Errorf("%w: %d intentos: %v", domain.ErrCodeGenerationExhausted, g.opts.MaxAttempts, lastErr)
}
