package codegen

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jhoicas/Transporte-api/internal/domain"
)

const (
	// DefaultPadWidth ancho por defecto del sufijo numérico.
	DefaultPadWidth = 3
	// MaxSuffixDigits dígitos significativos que cuenta un sufijo; los más largos se ignoran.
	// Debe coincidir con el filtro SQL del registro de PostgreSQL.
	MaxSuffixDigits = 18
)

// Assemble arma el código: prefijo + número con ceros a la izquierda.
// Si el número tiene más dígitos que padWidth no se trunca ("ABC1000").
func Assemble(prefix string, n, padWidth int) string {
	if padWidth < 1 {
		padWidth = DefaultPadWidth
	}
	return fmt.Sprintf("%s%0*d", prefix, padWidth, n)
}

// NextNumber siguiente sufijo libre a partir del máximo existente.
// Si max ya es math.MaxInt la secuencia del prefijo está agotada.
func NextNumber(max int, found bool) (int, error) {
	if !found || max < 0 {
		return 1, nil
	}
	if max == math.MaxInt {
		return 0, fmt.Errorf("%w: secuencia agotada en %d", domain.ErrCodeGenerationExhausted, max)
	}
	return max + 1, nil
}

// NumericSuffix devuelve el sufijo numérico de code si empieza con prefix y el resto son solo dígitos.
// "ABC001" → 1; "ABCXYZ", "ABC" o "XYZ001" → false.
// Sufijos con más de MaxSuffixDigits dígitos significativos se ignoran.
func NumericSuffix(code, prefix string) (int, bool) {
	if len(code) <= len(prefix) || code[:len(prefix)] != prefix {
		return 0, false
	}
	rest := code[len(prefix):]
	if !IsDigits(rest) || len(strings.TrimLeft(rest, "0")) > MaxSuffixDigits {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsDigits indica si s es no vacío y contiene solo 0-9.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
