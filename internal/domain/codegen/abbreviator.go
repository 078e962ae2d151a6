// Package codegen contiene la lógica pura de los códigos de entidad
// (prefijo alfabético + sufijo numérico con ceros a la izquierda, ej. "ABC001").
package codegen

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultMaxLength longitud máxima por defecto del prefijo.
	DefaultMaxLength = 3
	// DefaultFallbackPrefix prefijo genérico cuando el nombre no aporta letras.
	DefaultFallbackPrefix = "UNK"
)

// stopWords sufijos societarios y palabras funcionales que no aportan al prefijo.
var stopWords = map[string]struct{}{
	"LTD": {}, "LIMITED": {}, "PVT": {}, "PRIVATE": {}, "COMPANY": {}, "CORP": {},
	"CORPORATION": {}, "INC": {}, "INCORPORATED": {}, "LLC": {}, "LLP": {},
	"THE": {}, "AND": {}, "OF": {}, "FOR": {}, "IN": {}, "ON": {}, "AT": {}, "BY": {}, "WITH": {},
}

// Abbreviate deriva el prefijo de un nombre:
//   - nombre vacío o solo espacios → fallback
//   - se eliminan stop words (comparación sin mayúsculas, palabra completa)
//   - una palabra → sus primeros maxLength caracteres
//   - varias palabras → iniciales de las primeras maxLength palabras
//
// Si todas las palabras eran stop words se aplica la misma regla al nombre original.
// El resultado siempre es no vacío y contiene solo letras A–Z.
func Abbreviate(name string, maxLength int, fallback string) string {
	if maxLength < 1 {
		maxLength = DefaultMaxLength
	}
	if fallback == "" {
		fallback = DefaultFallbackPrefix
	}
	if strings.TrimSpace(name) == "" {
		return fallback
	}

	words := tokenize(name)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if _, stop := stopWords[w]; !stop {
			kept = append(kept, w)
		}
	}
	if len(kept) == 0 {
		kept = words
	}
	if len(kept) == 0 {
		return fallback
	}
	return prefixOf(kept, maxLength)
}

func prefixOf(words []string, maxLength int) string {
	if len(words) == 1 {
		w := words[0]
		if len(w) > maxLength {
			w = w[:maxLength]
		}
		return w
	}
	if len(words) > maxLength {
		words = words[:maxLength]
	}
	var b strings.Builder
	for _, w := range words {
		b.WriteByte(w[0])
	}
	return b.String()
}

// tokenize separa por espacios y reduce cada palabra a A–Z en mayúsculas.
// Las tildes se eliminan antes ("Éxito" → "EXITO"); los tokens sin letras se descartan.
func tokenize(name string) []string {
	fields := strings.Fields(foldAccents(name))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		var b strings.Builder
		for _, r := range f {
			r = unicode.ToUpper(r)
			if r >= 'A' && r <= 'Z' {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			out = append(out, b.String())
		}
	}
	return out
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
