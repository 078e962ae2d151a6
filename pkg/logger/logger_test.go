package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Transporte-api/pkg/logger"
)

func TestNew_JSONConComponente(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "debug", Out: &buf})

	comp := l.Component("codes.customers")
	comp.Warn().Str("code", "TES001").Msg("conflicto")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "codes.customers", entry["component"])
	assert.Equal(t, "TES001", entry["code"])
}

func TestNew_NivelInvalidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "ruido", Out: &buf})

	l.Debug().Msg("oculto")
	assert.Empty(t, buf.String())
	l.Info().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}
