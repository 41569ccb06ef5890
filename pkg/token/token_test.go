package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "secret-de-pruebas-unitarias"
	testIssuer = "restaurante-api-test"
)

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := NewCodec(testSecret, testIssuer)
	require.NoError(t, err)
	return c
}

func TestNewCodec_SecretVacio_Falla(t *testing.T) {
	_, err := NewCodec("", testIssuer)
	assert.Error(t, err, "un secret vacío es error de configuración")
}

// Propiedad: verify(issue(subject, ttl)) == subject inmediatamente tras emitir.
func TestIssueVerify_RoundTrip(t *testing.T) {
	c := newTestCodec(t)

	tok, err := c.Issue("cliente42", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	subject, err := c.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "cliente42", subject)
}

func TestVerify_TokenExpirado(t *testing.T) {
	c := newTestCodec(t)

	tok, err := c.Issue("cliente42", -time.Minute)
	require.NoError(t, err)

	_, err = c.Verify(tok)
	assert.ErrorIs(t, err, ErrExpired)
}

// Un flip de un bit en la firma nunca puede producir un subject válido.
func TestVerify_FirmaAlterada(t *testing.T) {
	c := newTestCodec(t)

	tok, err := c.Issue("cliente42", time.Hour)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	sig[0] ^= 0x01
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	subject, err := c.Verify(tampered)
	assert.Error(t, err)
	assert.Empty(t, subject)
}

func TestVerify_SecretDistinto(t *testing.T) {
	c := newTestCodec(t)
	otro, err := NewCodec("otro-secret-completamente-distinto", testIssuer)
	require.NoError(t, err)

	tok, err := c.Issue("cliente42", time.Hour)
	require.NoError(t, err)

	_, err = otro.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerify_TokenMalformado(t *testing.T) {
	c := newTestCodec(t)

	_, err := c.Verify("esto.no-es.un-jwt")
	assert.ErrorIs(t, err, ErrMalformed)
}

// Un token "alg:none" (sin firma) debe rechazarse como formato no soportado.
func TestVerify_AlgoritmoNoSoportado(t *testing.T) {
	c := newTestCodec(t)

	// header {"alg":"none","typ":"JWT"} + claims {"sub":"x"} sin firma
	unsigned := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiJ4In0."
	_, err := c.Verify(unsigned)
	assert.Error(t, err)
}
