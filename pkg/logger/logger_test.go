package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellanos/terralote-api/pkg/logger"
)

func TestNew_JSONEnProduccion(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Writer: &buf})

	log.Info().Str("evento", "arranque").Msg("iniciando")

	out := buf.String()
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"evento":"arranque"`)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "{"),
		"fuera de development la salida debe ser JSON")
}

func TestNew_NivelFiltraMensajes(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Writer: &buf})

	log.Debug().Msg("no debe salir")
	log.Info().Msg("tampoco")
	log.Warn().Msg("esto sí")

	out := buf.String()
	assert.NotContains(t, out, "no debe salir")
	assert.NotContains(t, out, "tampoco")
	assert.Contains(t, out, "esto sí")
}

func TestNew_NivelDesconocidoCaeEnInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "verboso", Writer: &buf})

	log.Debug().Msg("filtrado")
	log.Info().Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "filtrado")
	assert.Contains(t, out, "visible")
}

func TestComponent_EtiquetaCadaLinea(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Writer: &buf})

	log.Component("seed").Info().Msg("datos demo cargados")
	require.NotEmpty(t, buf.String())
	assert.Contains(t, buf.String(), `"component":"seed"`)

	// El sublogger no contamina al raíz.
	buf.Reset()
	log.Info().Msg("sin componente")
	assert.NotContains(t, buf.String(), `"component"`)
}
