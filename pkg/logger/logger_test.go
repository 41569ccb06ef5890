package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func capturado() (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Logger{zl: zerolog.New(&buf)}, &buf
}

func TestWithRequestIDCorrelacionaLasEntradas(t *testing.T) {
	l, buf := capturado()

	l.WithRequestID("abc-123").Info().Msg("procesando")

	assert.Contains(t, buf.String(), `"request_id":"abc-123"`)
	assert.Contains(t, buf.String(), `"procesando"`)
}

func TestComponentEtiquetaElSublogger(t *testing.T) {
	l, buf := capturado()

	l.Component("http").Warn().Msg("lento")

	assert.Contains(t, buf.String(), `"component":"http"`)
}

func TestElSubloggerNoContaminaAlPadre(t *testing.T) {
	l, buf := capturado()

	_ = l.WithRequestID("abc-123")
	l.Info().Msg("sin correlación")

	assert.NotContains(t, buf.String(), "request_id")
}

func TestParseLevel(t *testing.T) {
	casos := map[string]zerolog.Level{
		"trace":       zerolog.TraceLevel,
		"debug":       zerolog.DebugLevel,
		"info":        zerolog.InfoLevel,
		"warn":        zerolog.WarnLevel,
		"error":       zerolog.ErrorLevel,
		"":            zerolog.InfoLevel,
		"desconocido": zerolog.InfoLevel,
	}
	for entrada, esperado := range casos {
		assert.Equal(t, esperado, parseLevel(entrada), "nivel %q", entrada)
	}
}
